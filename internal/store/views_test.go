package store_test

import (
	"testing"
	"time"

	"kanban/internal/api"
	"kanban/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(cards []api.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestCardsInList(t *testing.T) {
	s, _, _ := loaded(t)

	assert.Equal(t, []string{"c1", "c2"}, ids(s.CardsInList("l1")))
	assert.Equal(t, []string{"c3"}, ids(s.CardsInList("l2")))
	assert.Empty(t, s.CardsInList("missing"))
}

func TestCalendarEvents(t *testing.T) {
	s, _, _ := loaded(t)

	cal := s.CalendarEvents(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	require.Len(t, cal.Events, 2)
	assert.Equal(t, "c3", cal.Events[0].CardID)
	assert.Equal(t, "Doing", cal.Events[0].ListTitle)
	assert.Equal(t, "#f1f5f9", cal.Events[0].ListColor)
	assert.True(t, cal.Events[0].Overdue)

	first := cal.Events[1]
	assert.Equal(t, "Todo", first.ListTitle)
	assert.Equal(t, "#fef2f2", first.ListColor)
	assert.Equal(t, time.Hour, first.End.Sub(first.Start))

	require.Len(t, cal.Overdue, 1)
	require.Len(t, cal.Upcoming, 1)
	assert.Empty(t, cal.Completed)
	assert.Equal(t, map[string]int{"low": 1, "high": 1}, cal.ByPriority)
}

func TestFilterCards(t *testing.T) {
	s, _, _ := loaded(t)

	assert.Equal(t, []string{"c1"}, ids(s.FilterCards("DOCS", "", "")))
	assert.Equal(t, []string{"c1"}, ids(s.FilterCards("reference", store.FilterAll, store.FilterAll)))
	assert.Equal(t, []string{"c2"}, ids(s.FilterCards("", "medium", "")))
	assert.Equal(t, []string{"c1"}, ids(s.FilterCards("", "", "m1")))
	assert.Empty(t, s.FilterCards("nothing matches", "", ""))
	assert.Len(t, s.FilterCards("", "", ""), 3)
}
