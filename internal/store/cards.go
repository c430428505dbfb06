package store

import (
	"context"
	"slices"
	"time"

	"kanban/internal/api"
	"kanban/internal/position"
)

func (s *Store) CreateCard(ctx context.Context, req api.CreateCardRequest) (api.Card, error) {
	card, err := s.backend.CreateCard(ctx, req)
	if err != nil {
		return api.Card{}, s.fail(err, "Failed to create card")
	}
	s.update(func(st *State) {
		st.Cards = append(st.Cards, card.Clone())
	})
	return card, nil
}

// UpdateCard applies req to the card at once, then adopts the server's card.
// On failure the card is restored to its state before the call.
func (s *Store) UpdateCard(ctx context.Context, id string, req api.UpdateCardRequest) error {
	var confirmed api.Card
	return s.optimistic(mutation{
		failMsg: "Failed to update card",
		apply: func(st *State) func(*State) {
			i := indexCard(st, id)
			if i < 0 {
				return nil
			}
			original := st.Cards[i].Clone()
			applyCardUpdate(&st.Cards[i], req)
			return func(st *State) { replaceCard(st, original) }
		},
		call: func() error {
			card, err := s.backend.UpdateCard(ctx, id, req)
			confirmed = card
			return err
		},
		confirm: func(st *State) { replaceCard(st, confirmed.Clone()) },
	})
}

func (s *Store) DeleteCard(ctx context.Context, id string) error {
	if err := s.backend.DeleteCard(ctx, id); err != nil {
		return s.fail(err, "Failed to delete card")
	}
	s.update(func(st *State) {
		st.Cards = slices.DeleteFunc(st.Cards, func(c api.Card) bool { return c.ID == id })
	})
	return nil
}

// MoveCard places the card in listID at pos. A failed move re-fetches the
// current board instead of restoring a snapshot.
func (s *Store) MoveCard(ctx context.Context, cardID, listID string, pos int) error {
	s.update(func(st *State) {
		if i := indexCard(st, cardID); i >= 0 {
			st.Cards[i].ListID = listID
			st.Cards[i].Position = pos
		}
	})

	card, err := s.backend.UpdateCard(ctx, cardID, api.UpdateCardRequest{ListID: &listID, Position: &pos})
	if err != nil {
		if boardID := s.currentBoardID(); boardID != "" {
			_ = s.FetchBoard(ctx, boardID)
		}
		return s.fail(err, "Failed to move card")
	}

	s.update(func(st *State) { replaceCard(st, card) })
	return nil
}

// MoveCardToList moves the card to the end of listID.
func (s *Store) MoveCardToList(ctx context.Context, cardID, listID string) error {
	var positions []int
	s.read(func(st *State) {
		for _, c := range st.Cards {
			if c.ListID == listID && c.ID != cardID {
				positions = append(positions, c.Position)
			}
		}
	})
	return s.MoveCard(ctx, cardID, listID, position.Append(positions))
}

// AssignMember adds the member to the card at once and adopts the server's
// assignment. Nothing happens when the member is not loaded.
func (s *Store) AssignMember(ctx context.Context, cardID, memberID string) error {
	var member *api.TeamMember
	s.read(func(st *State) {
		if i := indexMember(st, memberID); i >= 0 {
			m := st.TeamMembers[i]
			member = &m
		}
	})
	if member == nil {
		return nil
	}

	var confirmed api.CardAssignment
	return s.optimistic(mutation{
		failMsg: "Failed to assign member",
		apply: func(st *State) func(*State) {
			i := indexCard(st, cardID)
			if i < 0 {
				return nil
			}
			original := api.CloneAll(st.Cards[i].Assignees)
			st.Cards[i].Assignees = append(st.Cards[i].Assignees, api.CardAssignment{
				CardID:       cardID,
				TeamMemberID: memberID,
				AssignedAt:   time.Now(),
				TeamMember:   *member,
			})
			return func(st *State) { setAssignees(st, cardID, original) }
		},
		call: func() error {
			a, err := s.backend.AssignMember(ctx, cardID, memberID)
			confirmed = a
			return err
		},
		confirm: func(st *State) {
			i := indexCard(st, cardID)
			if i < 0 {
				return
			}
			for j, a := range st.Cards[i].Assignees {
				if a.TeamMemberID == memberID {
					st.Cards[i].Assignees[j] = confirmed
					return
				}
			}
		},
	})
}

// UnassignMember removes the member from the card at once. On failure the
// card's previous assignees are restored.
func (s *Store) UnassignMember(ctx context.Context, cardID, memberID string) error {
	return s.optimistic(mutation{
		failMsg: "Failed to unassign member",
		apply: func(st *State) func(*State) {
			i := indexCard(st, cardID)
			if i < 0 {
				return nil
			}
			original := api.CloneAll(st.Cards[i].Assignees)
			st.Cards[i].Assignees = slices.DeleteFunc(st.Cards[i].Assignees, func(a api.CardAssignment) bool {
				return a.TeamMemberID == memberID
			})
			return func(st *State) { setAssignees(st, cardID, original) }
		},
		call: func() error { return s.backend.UnassignMember(ctx, cardID, memberID) },
	})
}

func applyCardUpdate(c *api.Card, req api.UpdateCardRequest) {
	if req.Title != nil {
		c.Title = *req.Title
	}
	if req.Description.Set {
		c.Description = req.Description.Value
	}
	if req.Position != nil {
		c.Position = *req.Position
	}
	if req.DueDate.Set {
		c.DueDate = req.DueDate.Value
	}
	if req.Priority != nil {
		c.Priority = *req.Priority
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.ListID != nil {
		c.ListID = *req.ListID
	}
}

func indexCard(st *State, id string) int {
	return slices.IndexFunc(st.Cards, func(c api.Card) bool { return c.ID == id })
}

func replaceCard(st *State, card api.Card) {
	if i := indexCard(st, card.ID); i >= 0 {
		st.Cards[i] = card
	}
}

func setAssignees(st *State, cardID string, assignees []api.CardAssignment) {
	if i := indexCard(st, cardID); i >= 0 {
		st.Cards[i].Assignees = assignees
	}
}
