package store

import (
	"context"
	"slices"

	"kanban/internal/api"
)

func (s *Store) CreateList(ctx context.Context, req api.CreateListRequest) (api.List, error) {
	list, err := s.backend.CreateList(ctx, req)
	if err != nil {
		return api.List{}, s.fail(err, "Failed to create list")
	}
	list.Cards = nil
	s.update(func(st *State) {
		st.Lists = append(st.Lists, list.Clone())
	})
	return list, nil
}

func (s *Store) UpdateList(ctx context.Context, id string, req api.UpdateListRequest) error {
	list, err := s.backend.UpdateList(ctx, id, req)
	if err != nil {
		return s.fail(err, "Failed to update list")
	}
	list.Cards = nil
	s.update(func(st *State) {
		if i := indexList(st, id); i >= 0 {
			st.Lists[i] = list.Clone()
		}
	})
	return nil
}

// DeleteList deletes a list and drops its cards locally.
func (s *Store) DeleteList(ctx context.Context, id string) error {
	if err := s.backend.DeleteList(ctx, id); err != nil {
		return s.fail(err, "Failed to delete list")
	}
	s.update(func(st *State) {
		st.Lists = slices.DeleteFunc(st.Lists, func(l api.List) bool { return l.ID == id })
		st.Cards = slices.DeleteFunc(st.Cards, func(c api.Card) bool { return c.ListID == id })
	})
	return nil
}

func indexList(st *State, id string) int {
	return slices.IndexFunc(st.Lists, func(l api.List) bool { return l.ID == id })
}
