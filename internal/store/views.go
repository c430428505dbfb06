package store

import (
	"slices"
	"strings"
	"time"

	"kanban/internal/api"
	"kanban/internal/position"
)

const (
	unknownListTitle = "Unknown List"
	defaultListColor = "#f1f5f9"
	// FilterAll matches every priority or member in FilterCards.
	FilterAll = "all"
)

// CardsInList returns the list's cards in display order.
func (s *Store) CardsInList(listID string) []api.Card {
	var cards []api.Card
	s.read(func(st *State) {
		for _, c := range st.Cards {
			if c.ListID == listID {
				cards = append(cards, c.Clone())
			}
		}
	})
	position.Sort(cards, func(c api.Card) int { return c.Position })
	return nonNil(cards)
}

type CalendarEvent struct {
	CardID    string
	Title     string
	Start     time.Time
	End       time.Time
	Priority  string
	Status    string
	ListTitle string
	ListColor string
	Overdue   bool
}

// Calendar groups the current board's dated cards.
type Calendar struct {
	Events     []CalendarEvent
	Overdue    []CalendarEvent
	Upcoming   []CalendarEvent
	Completed  []CalendarEvent
	ByPriority map[string]int
}

// CalendarEvents turns every card with a due date into an hour long event.
// A card is overdue when due before now and not completed, upcoming when due
// at or after now and not completed.
func (s *Store) CalendarEvents(now time.Time) Calendar {
	cal := Calendar{Events: []CalendarEvent{}, ByPriority: map[string]int{}}

	s.read(func(st *State) {
		for _, c := range st.Cards {
			if c.DueDate == nil {
				continue
			}
			ev := CalendarEvent{
				CardID:    c.ID,
				Title:     c.Title,
				Start:     *c.DueDate,
				End:       c.DueDate.Add(time.Hour),
				Priority:  c.Priority,
				Status:    c.Status,
				ListTitle: unknownListTitle,
				ListColor: defaultListColor,
			}
			if ev.Priority == "" {
				ev.Priority = "medium"
			}
			if i := indexList(st, c.ListID); i >= 0 {
				ev.ListTitle = st.Lists[i].Title
				if st.Lists[i].Color != nil {
					ev.ListColor = *st.Lists[i].Color
				}
			}
			ev.Overdue = ev.Start.Before(now) && ev.Status != "completed"
			cal.Events = append(cal.Events, ev)
		}
	})

	slices.SortStableFunc(cal.Events, func(a, b CalendarEvent) int { return a.Start.Compare(b.Start) })
	for _, ev := range cal.Events {
		cal.ByPriority[ev.Priority]++
		switch {
		case ev.Status == "completed":
			cal.Completed = append(cal.Completed, ev)
		case ev.Overdue:
			cal.Overdue = append(cal.Overdue, ev)
		default:
			cal.Upcoming = append(cal.Upcoming, ev)
		}
	}
	return cal
}

// FilterCards returns the current board's cards whose title or description
// contains query (case-insensitive), with the given priority and assigned to
// memberID. Empty or FilterAll priority and member match everything.
func (s *Store) FilterCards(query, priority, memberID string) []api.Card {
	query = strings.ToLower(query)
	var out []api.Card
	s.read(func(st *State) {
		for _, c := range st.Cards {
			if query != "" {
				desc := ""
				if c.Description != nil {
					desc = *c.Description
				}
				if !strings.Contains(strings.ToLower(c.Title), query) &&
					!strings.Contains(strings.ToLower(desc), query) {
					continue
				}
			}
			if priority != "" && priority != FilterAll && c.Priority != priority {
				continue
			}
			if memberID != "" && memberID != FilterAll &&
				!slices.ContainsFunc(c.Assignees, func(a api.CardAssignment) bool { return a.TeamMemberID == memberID }) {
				continue
			}
			out = append(out, c.Clone())
		}
	})
	return nonNil(out)
}
