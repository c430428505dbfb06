package api

import "time"

type CreateBoardRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Background  *string `json:"background,omitempty"`
	AccessCode  *string `json:"accessCode,omitempty"`
}

type UpdateBoardRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description Nullable[string] `json:"description,omitzero"`
	Background  *string          `json:"background,omitempty"`
}

type AccessRequest struct {
	AccessCode string `json:"accessCode"`
	Email      string `json:"email,omitempty"`
}

type ReorderListsRequest struct {
	ListIDs []string `json:"listIds"`
}

type CreateListRequest struct {
	Title    string  `json:"title"`
	BoardID  string  `json:"boardId"`
	Position *int    `json:"position,omitempty"`
	Color    *string `json:"color,omitempty"`
}

type UpdateListRequest struct {
	Title    *string          `json:"title,omitempty"`
	Position *int             `json:"position,omitempty"`
	Color    Nullable[string] `json:"color,omitzero"`
}

type CreateCardRequest struct {
	Title       string     `json:"title"`
	ListID      string     `json:"listId"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

type UpdateCardRequest struct {
	Title       *string             `json:"title,omitempty"`
	Description Nullable[string]    `json:"description,omitzero"`
	Position    *int                `json:"position,omitempty"`
	DueDate     Nullable[time.Time] `json:"dueDate,omitzero"`
	Priority    *string             `json:"priority,omitempty"`
	Status      *string             `json:"status,omitempty"`
	ListID      *string             `json:"listId,omitempty"`
}

type AssignRequest struct {
	TeamMemberID string `json:"teamMemberId"`
}

type CreateTeamMemberRequest struct {
	Name    string  `json:"name"`
	BoardID string  `json:"boardId"`
	Color   *string `json:"color,omitempty"`
}

type UpdateTeamMemberRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

type CreateLabelRequest struct {
	Name    string `json:"name"`
	Color   string `json:"color"`
	BoardID string `json:"boardId"`
}

type UpdateLabelRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

type CreateChecklistItemRequest struct {
	Content   string `json:"content"`
	CardID    string `json:"cardId"`
	Completed bool   `json:"completed,omitempty"`
}

type UpdateChecklistItemRequest struct {
	Content   *string `json:"content,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	Position  *int    `json:"position,omitempty"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

// CardFilter selects cards by list or board; empty fields are ignored.
type CardFilter struct {
	ListID  string
	BoardID string
}
