package store

import (
	"context"
	"errors"
	"net/http"

	"kanban/internal/api"
	"kanban/internal/position"
)

// FetchBoards replaces the loaded boards with the server's.
func (s *Store) FetchBoards(ctx context.Context) error {
	s.SetLoading(true)
	defer s.SetLoading(false)

	boards, err := s.backend.ListBoards(ctx)
	if err != nil {
		return s.fail(err, "Failed to fetch boards")
	}
	s.update(func(st *State) {
		st.Boards = nonNil(boards)
		st.Error = ""
	})
	return nil
}

// FetchBoard loads one board and makes it the current board.
func (s *Store) FetchBoard(ctx context.Context, id string) error {
	s.SetLoading(true)
	defer s.SetLoading(false)

	board, err := s.backend.GetBoard(ctx, id)
	if err != nil {
		return s.fail(err, "Failed to fetch board")
	}
	s.update(func(st *State) {
		selectBoard(st, board)
		st.Error = ""
	})
	s.persistSelection(id)
	return nil
}

// SetCurrentBoard selects one of the loaded boards without a request. It
// reports whether the board was found.
func (s *Store) SetCurrentBoard(id string) bool {
	found := false
	s.update(func(st *State) {
		for _, b := range st.Boards {
			if b.ID == id {
				selectBoard(st, b.Clone())
				found = true
				return
			}
		}
	})
	if found {
		s.persistSelection(id)
	}
	return found
}

// RestoreSelection selects the persisted board when canView allows it,
// otherwise the first viewable loaded board. A persisted id that no longer
// names a viewable board is forgotten, and a board the server no longer has
// is skipped. It returns the selected id, empty when nothing could be selected.
func (s *Store) RestoreSelection(ctx context.Context, canView func(boardID string) bool) (string, error) {
	var viewable []string
	s.read(func(st *State) {
		for _, b := range st.Boards {
			if canView == nil || canView(b.ID) {
				viewable = append(viewable, b.ID)
			}
		}
	})

	persisted := s.persistedSelection()
	candidates := make([]string, 0, len(viewable))
	for _, id := range viewable {
		if id == persisted {
			candidates = append([]string{id}, candidates...)
		} else {
			candidates = append(candidates, id)
		}
	}
	if persisted != "" && (len(candidates) == 0 || candidates[0] != persisted) {
		s.persistSelection("")
	}

	for _, id := range candidates {
		err := s.FetchBoard(ctx, id)
		if err == nil {
			return id, nil
		}
		if !isNotFound(err) {
			return "", err
		}
		s.forgetBoard(id)
	}

	s.update(clearSelection)
	s.persistSelection("")
	return "", nil
}

// forgetBoard drops a board the server reported missing and clears the
// error that report left behind.
func (s *Store) forgetBoard(id string) {
	s.update(func(st *State) {
		boards := st.Boards[:0]
		for _, b := range st.Boards {
			if b.ID != id {
				boards = append(boards, b)
			}
		}
		st.Boards = boards
		st.Error = ""
	})
	if s.persistedSelection() == id {
		s.persistSelection("")
	}
}

func isNotFound(err error) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// selectBoard makes board current and flattens its nested collections.
func selectBoard(st *State, board api.Board) {
	lists := api.CloneAll(board.Lists)
	position.Sort(lists, func(l api.List) int { return l.Position })

	cards := []api.Card{}
	for i := range lists {
		cards = append(cards, lists[i].Cards...)
		lists[i].Cards = nil
	}

	current := board.Clone()
	st.CurrentBoard = &current
	st.Lists = nonNil(lists)
	st.Cards = cards
	st.TeamMembers = nonNil(api.CloneAll(board.Members))
	st.Labels = nonNil(api.CloneAll(board.Labels))
}

func clearSelection(st *State) {
	st.CurrentBoard = nil
	st.Lists = []api.List{}
	st.Cards = []api.Card{}
	st.TeamMembers = []api.TeamMember{}
	st.Labels = []api.Label{}
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
