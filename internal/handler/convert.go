package handler

import (
	"kanban/internal/api"
	"kanban/internal/model"
)

func toBoard(b model.Board, withAccessCode bool) api.Board {
	out := api.Board{
		ID:          b.ID.String(),
		Title:       b.Title,
		Description: b.Description,
		Background:  b.Background,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		Lists:       make([]api.List, 0, len(b.Lists)),
		Members:     make([]api.TeamMember, 0, len(b.Members)),
		Labels:      make([]api.Label, 0, len(b.Labels)),
	}
	if withAccessCode {
		out.AccessCode = b.AccessCode
	}
	for _, l := range b.Lists {
		out.Lists = append(out.Lists, toList(l))
	}
	for _, m := range b.Members {
		out.Members = append(out.Members, toTeamMember(m))
	}
	for _, l := range b.Labels {
		out.Labels = append(out.Labels, toLabel(l))
	}
	return out
}

func toList(l model.List) api.List {
	out := api.List{
		ID:        l.ID.String(),
		Title:     l.Title,
		Position:  l.Position,
		Color:     l.Color,
		BoardID:   l.BoardID.String(),
		CreatedAt: l.CreatedAt,
	}
	if len(l.Cards) > 0 {
		out.Cards = toCards(l.Cards)
	}
	return out
}

func toLists(lists []model.List) []api.List {
	out := make([]api.List, 0, len(lists))
	for _, l := range lists {
		out = append(out, toList(l))
	}
	return out
}

func toCard(c model.Card) api.Card {
	out := api.Card{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		Position:    c.Position,
		DueDate:     c.DueDate,
		Priority:    c.Priority,
		Status:      c.Status,
		ListID:      c.ListID.String(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Assignees:   make([]api.CardAssignment, 0, len(c.Assignees)),
		Labels:      make([]api.CardLabel, 0, len(c.Labels)),
		Checklist:   make([]api.ChecklistItem, 0, len(c.Checklist)),
	}
	for _, a := range c.Assignees {
		out.Assignees = append(out.Assignees, toAssignment(a))
	}
	for _, l := range c.Labels {
		out.Labels = append(out.Labels, api.CardLabel{
			CardID:  l.CardID.String(),
			LabelID: l.LabelID.String(),
			Label:   toLabel(l.Label),
		})
	}
	for _, i := range c.Checklist {
		out.Checklist = append(out.Checklist, toChecklistItem(i))
	}
	return out
}

func toCards(cards []model.Card) []api.Card {
	out := make([]api.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCard(c))
	}
	return out
}

func toAssignment(a model.CardAssignment) api.CardAssignment {
	return api.CardAssignment{
		CardID:       a.CardID.String(),
		TeamMemberID: a.TeamMemberID.String(),
		AssignedAt:   a.AssignedAt,
		TeamMember:   toTeamMember(a.TeamMember),
	}
}

func toTeamMember(m model.TeamMember) api.TeamMember {
	return api.TeamMember{
		ID:        m.ID.String(),
		Name:      m.Name,
		Color:     m.Color,
		BoardID:   m.BoardID.String(),
		CreatedAt: m.CreatedAt,
	}
}

func toLabel(l model.Label) api.Label {
	return api.Label{
		ID:      l.ID.String(),
		Name:    l.Name,
		Color:   l.Color,
		BoardID: l.BoardID.String(),
	}
}

func toChecklistItem(i model.ChecklistItem) api.ChecklistItem {
	return api.ChecklistItem{
		ID:        i.ID.String(),
		Content:   i.Content,
		Completed: i.Completed,
		CardID:    i.CardID.String(),
		Position:  i.Position,
		CreatedAt: i.CreatedAt,
	}
}
