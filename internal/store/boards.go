package store

import (
	"context"
	"slices"

	"kanban/internal/api"
	"kanban/internal/position"
)

// CreateBoard creates a board and puts it first in the loaded boards.
func (s *Store) CreateBoard(ctx context.Context, req api.CreateBoardRequest) (api.Board, error) {
	s.SetLoading(true)
	defer s.SetLoading(false)

	board, err := s.backend.CreateBoard(ctx, req)
	if err != nil {
		return api.Board{}, s.fail(err, "Failed to create board")
	}
	s.update(func(st *State) {
		st.Boards = append([]api.Board{board.Clone()}, st.Boards...)
		st.Error = ""
	})
	return board, nil
}

func (s *Store) UpdateBoard(ctx context.Context, id string, req api.UpdateBoardRequest) error {
	board, err := s.backend.UpdateBoard(ctx, id, req)
	if err != nil {
		return s.fail(err, "Failed to update board")
	}
	s.update(func(st *State) {
		if i := slices.IndexFunc(st.Boards, func(b api.Board) bool { return b.ID == id }); i >= 0 {
			st.Boards[i] = board.Clone()
		}
		if st.CurrentBoard != nil && st.CurrentBoard.ID == id {
			current := board.Clone()
			st.CurrentBoard = &current
		}
	})
	return nil
}

// DeleteBoard deletes a board. Deleting the current board clears the
// selection and the persisted board id.
func (s *Store) DeleteBoard(ctx context.Context, id string) error {
	if err := s.backend.DeleteBoard(ctx, id); err != nil {
		return s.fail(err, "Failed to delete board")
	}

	wasCurrent := false
	s.update(func(st *State) {
		st.Boards = slices.DeleteFunc(st.Boards, func(b api.Board) bool { return b.ID == id })
		if st.CurrentBoard != nil && st.CurrentBoard.ID == id {
			clearSelection(st)
			wasCurrent = true
		}
	})
	if wasCurrent {
		s.persistSelection("")
	}
	return nil
}

// ReorderLists puts the current board's lists in the order of listIDs and
// renumbers them densely. Unknown ids are skipped. On failure the previous
// lists are restored.
func (s *Store) ReorderLists(ctx context.Context, listIDs []string) error {
	boardID := s.currentBoardID()
	if boardID == "" {
		return s.fail(ErrNoBoardSelected, "Failed to reorder lists")
	}

	var confirmed []api.List
	return s.optimistic(mutation{
		failMsg: "Failed to reorder lists",
		apply: func(st *State) func(*State) {
			original := api.CloneAll(st.Lists)

			reordered := make([]api.List, 0, len(listIDs))
			for _, id := range listIDs {
				i := slices.IndexFunc(st.Lists, func(l api.List) bool { return l.ID == id })
				if i < 0 {
					continue
				}
				list := st.Lists[i]
				list.Position = position.Dense(len(reordered))
				reordered = append(reordered, list)
			}
			st.Lists = reordered

			return func(st *State) { st.Lists = original }
		},
		call: func() error {
			lists, err := s.backend.ReorderLists(ctx, boardID, listIDs)
			confirmed = lists
			return err
		},
		confirm: func(st *State) {
			if len(confirmed) == 0 {
				return
			}
			lists := api.CloneAll(confirmed)
			for i := range lists {
				lists[i].Cards = nil
			}
			position.Sort(lists, func(l api.List) int { return l.Position })
			st.Lists = lists
		},
	})
}
