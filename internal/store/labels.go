package store

import (
	"context"
	"slices"

	"kanban/internal/api"
)

func (s *Store) CreateLabel(ctx context.Context, req api.CreateLabelRequest) (api.Label, error) {
	label, err := s.backend.CreateLabel(ctx, req)
	if err != nil {
		return api.Label{}, s.fail(err, "Failed to create label")
	}
	s.update(func(st *State) {
		st.Labels = append(st.Labels, label)
	})
	return label, nil
}

func (s *Store) UpdateLabel(ctx context.Context, id string, req api.UpdateLabelRequest) error {
	label, err := s.backend.UpdateLabel(ctx, id, req)
	if err != nil {
		return s.fail(err, "Failed to update label")
	}
	s.update(func(st *State) {
		if i := slices.IndexFunc(st.Labels, func(l api.Label) bool { return l.ID == id }); i >= 0 {
			st.Labels[i] = label
		}
		for ci := range st.Cards {
			for li := range st.Cards[ci].Labels {
				if st.Cards[ci].Labels[li].LabelID == id {
					st.Cards[ci].Labels[li].Label = label
				}
			}
		}
	})
	return nil
}

// DeleteLabel deletes a label and detaches it from every loaded card.
func (s *Store) DeleteLabel(ctx context.Context, id string) error {
	if err := s.backend.DeleteLabel(ctx, id); err != nil {
		return s.fail(err, "Failed to delete label")
	}
	s.update(func(st *State) {
		st.Labels = slices.DeleteFunc(st.Labels, func(l api.Label) bool { return l.ID == id })
		for i := range st.Cards {
			st.Cards[i].Labels = slices.DeleteFunc(st.Cards[i].Labels, func(cl api.CardLabel) bool {
				return cl.LabelID == id
			})
		}
	})
	return nil
}

func (s *Store) AddLabelToCard(ctx context.Context, cardID, labelID string) error {
	card, err := s.backend.AddLabelToCard(ctx, cardID, labelID)
	if err != nil {
		return s.fail(err, "Failed to add label")
	}
	s.update(func(st *State) { replaceCard(st, card) })
	return nil
}

func (s *Store) RemoveLabelFromCard(ctx context.Context, cardID, labelID string) error {
	card, err := s.backend.RemoveLabelFromCard(ctx, cardID, labelID)
	if err != nil {
		return s.fail(err, "Failed to remove label")
	}
	s.update(func(st *State) { replaceCard(st, card) })
	return nil
}
