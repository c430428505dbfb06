package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"kanban/internal/api"
	"kanban/internal/position"
)

// CreateChecklistItem shows the item at once under a temporary id and swaps
// in the server's item on success. On failure the temporary item is removed.
func (s *Store) CreateChecklistItem(ctx context.Context, req api.CreateChecklistItemRequest) error {
	s.mu.Lock()
	s.tempID++
	tempID := fmt.Sprintf("temp-%d", s.tempID)
	s.mu.Unlock()

	var confirmed api.ChecklistItem
	return s.optimistic(mutation{
		failMsg: "Failed to create checklist item",
		apply: func(st *State) func(*State) {
			i := indexCard(st, req.CardID)
			if i < 0 {
				return nil
			}
			positions := make([]int, 0, len(st.Cards[i].Checklist))
			for _, item := range st.Cards[i].Checklist {
				positions = append(positions, item.Position)
			}
			st.Cards[i].Checklist = append(st.Cards[i].Checklist, api.ChecklistItem{
				ID:        tempID,
				Content:   req.Content,
				Completed: req.Completed,
				CardID:    req.CardID,
				Position:  position.Append(positions),
				CreatedAt: time.Now(),
			})
			return func(st *State) { removeChecklistItem(st, req.CardID, tempID) }
		},
		call: func() error {
			item, err := s.backend.CreateChecklistItem(ctx, req)
			confirmed = item
			return err
		},
		confirm: func(st *State) {
			i := indexCard(st, req.CardID)
			if i < 0 {
				return
			}
			if j := indexItem(st.Cards[i].Checklist, tempID); j >= 0 {
				st.Cards[i].Checklist[j] = confirmed
			}
		},
	})
}

// UpdateChecklistItem applies req at once and adopts the server's item. On
// failure the item is restored.
func (s *Store) UpdateChecklistItem(ctx context.Context, itemID string, req api.UpdateChecklistItemRequest) error {
	var confirmed api.ChecklistItem
	return s.optimistic(mutation{
		failMsg: "Failed to update checklist item",
		apply: func(st *State) func(*State) {
			ci, ii := findChecklistItem(st, itemID)
			if ci < 0 {
				return nil
			}
			original := st.Cards[ci].Checklist[ii]
			item := &st.Cards[ci].Checklist[ii]
			if req.Content != nil {
				item.Content = *req.Content
			}
			if req.Completed != nil {
				item.Completed = *req.Completed
			}
			if req.Position != nil {
				item.Position = *req.Position
			}
			return func(st *State) { replaceChecklistItem(st, original) }
		},
		call: func() error {
			item, err := s.backend.UpdateChecklistItem(ctx, itemID, req)
			confirmed = item
			return err
		},
		confirm: func(st *State) { replaceChecklistItem(st, confirmed) },
	})
}

// DeleteChecklistItem removes the item at once. On failure it is put back at
// its original index.
func (s *Store) DeleteChecklistItem(ctx context.Context, itemID string) error {
	return s.optimistic(mutation{
		failMsg: "Failed to delete checklist item",
		apply: func(st *State) func(*State) {
			ci, ii := findChecklistItem(st, itemID)
			if ci < 0 {
				return nil
			}
			original := st.Cards[ci].Checklist[ii]
			st.Cards[ci].Checklist = slices.Delete(st.Cards[ci].Checklist, ii, ii+1)
			return func(st *State) {
				i := indexCard(st, original.CardID)
				if i < 0 || indexItem(st.Cards[i].Checklist, original.ID) >= 0 {
					return
				}
				at := min(ii, len(st.Cards[i].Checklist))
				st.Cards[i].Checklist = slices.Insert(st.Cards[i].Checklist, at, original)
			}
		},
		call: func() error { return s.backend.DeleteChecklistItem(ctx, itemID) },
	})
}

func indexItem(items []api.ChecklistItem, id string) int {
	return slices.IndexFunc(items, func(it api.ChecklistItem) bool { return it.ID == id })
}

// findChecklistItem returns the card and item index of itemID, or -1, -1.
func findChecklistItem(st *State, itemID string) (int, int) {
	for ci := range st.Cards {
		if ii := indexItem(st.Cards[ci].Checklist, itemID); ii >= 0 {
			return ci, ii
		}
	}
	return -1, -1
}

func replaceChecklistItem(st *State, item api.ChecklistItem) {
	if ci, ii := findChecklistItem(st, item.ID); ci >= 0 {
		st.Cards[ci].Checklist[ii] = item
	}
}

func removeChecklistItem(st *State, cardID, itemID string) {
	i := indexCard(st, cardID)
	if i < 0 {
		return
	}
	st.Cards[i].Checklist = slices.DeleteFunc(st.Cards[i].Checklist, func(it api.ChecklistItem) bool {
		return it.ID == itemID
	})
}
