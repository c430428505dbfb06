package api

import "time"

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneSlice[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

// Clone returns a deep copy of b.
func (b Board) Clone() Board {
	b.Description = cloneString(b.Description)
	b.AccessCode = cloneString(b.AccessCode)
	b.Lists = cloneSlice(b.Lists, List.Clone)
	b.Members = cloneSlice(b.Members, TeamMember.Clone)
	b.Labels = cloneSlice(b.Labels, Label.Clone)
	return b
}

func (l List) Clone() List {
	l.Color = cloneString(l.Color)
	l.Cards = cloneSlice(l.Cards, Card.Clone)
	return l
}

func (c Card) Clone() Card {
	c.Description = cloneString(c.Description)
	c.DueDate = cloneTime(c.DueDate)
	c.Assignees = cloneSlice(c.Assignees, CardAssignment.Clone)
	c.Labels = cloneSlice(c.Labels, CardLabel.Clone)
	c.Checklist = cloneSlice(c.Checklist, ChecklistItem.Clone)
	return c
}

func (m TeamMember) Clone() TeamMember { return m }

func (a CardAssignment) Clone() CardAssignment { return a }

func (l Label) Clone() Label { return l }

func (l CardLabel) Clone() CardLabel { return l }

func (i ChecklistItem) Clone() ChecklistItem { return i }

// CloneAll deep-copies a slice of any wire type.
func CloneAll[T interface{ Clone() T }](in []T) []T {
	return cloneSlice(in, func(v T) T { return v.Clone() })
}
