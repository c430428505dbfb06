package store

import (
	"context"
	"slices"

	"kanban/internal/api"
)

func (s *Store) CreateTeamMember(ctx context.Context, req api.CreateTeamMemberRequest) (api.TeamMember, error) {
	member, err := s.backend.CreateTeamMember(ctx, req)
	if err != nil {
		return api.TeamMember{}, s.fail(err, "Failed to create team member")
	}
	s.update(func(st *State) {
		st.TeamMembers = append(st.TeamMembers, member)
	})
	return member, nil
}

// UpdateTeamMember also refreshes the member embedded in card assignments.
func (s *Store) UpdateTeamMember(ctx context.Context, id string, req api.UpdateTeamMemberRequest) error {
	member, err := s.backend.UpdateTeamMember(ctx, id, req)
	if err != nil {
		return s.fail(err, "Failed to update team member")
	}
	s.update(func(st *State) {
		if i := indexMember(st, id); i >= 0 {
			st.TeamMembers[i] = member
		}
		for ci := range st.Cards {
			for ai := range st.Cards[ci].Assignees {
				if st.Cards[ci].Assignees[ai].TeamMemberID == id {
					st.Cards[ci].Assignees[ai].TeamMember = member
				}
			}
		}
	})
	return nil
}

// DeleteTeamMember deletes a member and drops their assignments locally.
func (s *Store) DeleteTeamMember(ctx context.Context, id string) error {
	if err := s.backend.DeleteTeamMember(ctx, id); err != nil {
		return s.fail(err, "Failed to delete team member")
	}
	s.update(func(st *State) {
		st.TeamMembers = slices.DeleteFunc(st.TeamMembers, func(m api.TeamMember) bool { return m.ID == id })
		for i := range st.Cards {
			st.Cards[i].Assignees = slices.DeleteFunc(st.Cards[i].Assignees, func(a api.CardAssignment) bool {
				return a.TeamMemberID == id
			})
		}
	})
	return nil
}

func indexMember(st *State, id string) int {
	return slices.IndexFunc(st.TeamMembers, func(m api.TeamMember) bool { return m.ID == id })
}
