// Package api holds the JSON wire types of the kanban HTTP API and a client for it.
package api

import "time"

type Board struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Background  string       `json:"background"`
	AccessCode  *string      `json:"accessCode,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Lists       []List       `json:"lists"`
	Members     []TeamMember `json:"members"`
	Labels      []Label      `json:"labels"`
}

type List struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	Color     *string   `json:"color"`
	BoardID   string    `json:"boardId"`
	CreatedAt time.Time `json:"createdAt"`
	Cards     []Card    `json:"cards,omitempty"`
}

type Card struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Position    int              `json:"position"`
	DueDate     *time.Time       `json:"dueDate"`
	Priority    string           `json:"priority"`
	Status      string           `json:"status"`
	ListID      string           `json:"listId"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Assignees   []CardAssignment `json:"assignees"`
	Labels      []CardLabel      `json:"labels"`
	Checklist   []ChecklistItem  `json:"checklist"`
}

type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	BoardID   string    `json:"boardId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CardAssignment struct {
	CardID       string     `json:"cardId"`
	TeamMemberID string     `json:"teamMemberId"`
	AssignedAt   time.Time  `json:"assignedAt"`
	TeamMember   TeamMember `json:"teamMember"`
}

type Label struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	BoardID string `json:"boardId"`
}

type CardLabel struct {
	CardID  string `json:"cardId"`
	LabelID string `json:"labelId"`
	Label   Label  `json:"label"`
}

type ChecklistItem struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Completed bool      `json:"completed"`
	CardID    string    `json:"cardId"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

type Success struct {
	Success bool `json:"success"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

type SetupStats struct {
	Boards int64 `json:"boards"`
	Lists  int64 `json:"lists"`
	Cards  int64 `json:"cards"`
}

type SetupStatus struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Stats   SetupStats `json:"stats"`
}
