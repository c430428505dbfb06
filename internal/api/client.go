package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Error is a non-2xx response. Message is the server's "error" field, empty when absent.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Message
}

// RequestEditor mutates every outgoing request, e.g. to attach admin headers.
type RequestEditor func(*http.Request)

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithRequestEditor(fn RequestEditor) Option {
	return func(c *Client) { c.editors = append(c.editors, fn) }
}

// Client talks to the kanban HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
	editors []RequestEditor
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for _, edit := range c.editors {
		edit(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &payload)
		return &Error{Status: resp.StatusCode, Message: payload.Error}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func segment(id string) string {
	return url.PathEscape(id)
}

// Boards

func (c *Client) ListBoards(ctx context.Context) ([]Board, error) {
	var boards []Board
	err := c.do(ctx, http.MethodGet, "/boards", nil, nil, &boards)
	return boards, err
}

func (c *Client) GetBoard(ctx context.Context, id string) (Board, error) {
	var board Board
	err := c.do(ctx, http.MethodGet, "/boards/"+segment(id), nil, nil, &board)
	return board, err
}

func (c *Client) CreateBoard(ctx context.Context, req CreateBoardRequest) (Board, error) {
	var board Board
	err := c.do(ctx, http.MethodPost, "/boards", nil, req, &board)
	return board, err
}

func (c *Client) UpdateBoard(ctx context.Context, id string, req UpdateBoardRequest) (Board, error) {
	var board Board
	err := c.do(ctx, http.MethodPut, "/boards/"+segment(id), nil, req, &board)
	return board, err
}

func (c *Client) DeleteBoard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/boards/"+segment(id), nil, nil, nil)
}

func (c *Client) ValidateAccess(ctx context.Context, boardID string, req AccessRequest) error {
	return c.do(ctx, http.MethodPost, "/boards/"+segment(boardID)+"/access", nil, req, nil)
}

func (c *Client) ReorderLists(ctx context.Context, boardID string, listIDs []string) ([]List, error) {
	var lists []List
	err := c.do(ctx, http.MethodPost, "/boards/"+segment(boardID)+"/lists/reorder", nil,
		ReorderListsRequest{ListIDs: listIDs}, &lists)
	return lists, err
}

// Lists

func (c *Client) ListLists(ctx context.Context, boardID string) ([]List, error) {
	var lists []List
	err := c.do(ctx, http.MethodGet, "/lists", url.Values{"boardId": {boardID}}, nil, &lists)
	return lists, err
}

func (c *Client) CreateList(ctx context.Context, req CreateListRequest) (List, error) {
	var list List
	err := c.do(ctx, http.MethodPost, "/lists", nil, req, &list)
	return list, err
}

func (c *Client) UpdateList(ctx context.Context, id string, req UpdateListRequest) (List, error) {
	var list List
	err := c.do(ctx, http.MethodPut, "/lists/"+segment(id), nil, req, &list)
	return list, err
}

func (c *Client) DeleteList(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/lists/"+segment(id), nil, nil, nil)
}

// Cards

func (c *Client) ListCards(ctx context.Context, filter CardFilter) ([]Card, error) {
	query := url.Values{}
	if filter.ListID != "" {
		query.Set("listId", filter.ListID)
	}
	if filter.BoardID != "" {
		query.Set("boardId", filter.BoardID)
	}
	var cards []Card
	err := c.do(ctx, http.MethodGet, "/cards", query, nil, &cards)
	return cards, err
}

func (c *Client) GetCard(ctx context.Context, id string) (Card, error) {
	var card Card
	err := c.do(ctx, http.MethodGet, "/cards/"+segment(id), nil, nil, &card)
	return card, err
}

func (c *Client) CreateCard(ctx context.Context, req CreateCardRequest) (Card, error) {
	var card Card
	err := c.do(ctx, http.MethodPost, "/cards", nil, req, &card)
	return card, err
}

func (c *Client) UpdateCard(ctx context.Context, id string, req UpdateCardRequest) (Card, error) {
	var card Card
	err := c.do(ctx, http.MethodPut, "/cards/"+segment(id), nil, req, &card)
	return card, err
}

func (c *Client) DeleteCard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/cards/"+segment(id), nil, nil, nil)
}

func (c *Client) AssignMember(ctx context.Context, cardID, teamMemberID string) (CardAssignment, error) {
	var assignment CardAssignment
	err := c.do(ctx, http.MethodPost, "/cards/"+segment(cardID)+"/assignments", nil,
		AssignRequest{TeamMemberID: teamMemberID}, &assignment)
	return assignment, err
}

func (c *Client) UnassignMember(ctx context.Context, cardID, teamMemberID string) error {
	return c.do(ctx, http.MethodDelete, "/cards/"+segment(cardID)+"/assignments",
		url.Values{"teamMemberId": {teamMemberID}}, nil, nil)
}

func (c *Client) AddLabelToCard(ctx context.Context, cardID, labelID string) (Card, error) {
	var card Card
	err := c.do(ctx, http.MethodPost, "/cards/"+segment(cardID)+"/labels/"+segment(labelID), nil, nil, &card)
	return card, err
}

func (c *Client) RemoveLabelFromCard(ctx context.Context, cardID, labelID string) (Card, error) {
	var card Card
	err := c.do(ctx, http.MethodDelete, "/cards/"+segment(cardID)+"/labels/"+segment(labelID), nil, nil, &card)
	return card, err
}

// Team members

func (c *Client) ListTeamMembers(ctx context.Context, boardID string) ([]TeamMember, error) {
	var members []TeamMember
	err := c.do(ctx, http.MethodGet, "/team-members", url.Values{"boardId": {boardID}}, nil, &members)
	return members, err
}

func (c *Client) CreateTeamMember(ctx context.Context, req CreateTeamMemberRequest) (TeamMember, error) {
	var member TeamMember
	err := c.do(ctx, http.MethodPost, "/team-members", nil, req, &member)
	return member, err
}

func (c *Client) UpdateTeamMember(ctx context.Context, id string, req UpdateTeamMemberRequest) (TeamMember, error) {
	var member TeamMember
	err := c.do(ctx, http.MethodPut, "/team-members/"+segment(id), nil, req, &member)
	return member, err
}

func (c *Client) DeleteTeamMember(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/team-members/"+segment(id), nil, nil, nil)
}

// Labels

func (c *Client) ListLabels(ctx context.Context, boardID string) ([]Label, error) {
	var labels []Label
	err := c.do(ctx, http.MethodGet, "/labels", url.Values{"boardId": {boardID}}, nil, &labels)
	return labels, err
}

func (c *Client) CreateLabel(ctx context.Context, req CreateLabelRequest) (Label, error) {
	var label Label
	err := c.do(ctx, http.MethodPost, "/labels", nil, req, &label)
	return label, err
}

func (c *Client) UpdateLabel(ctx context.Context, id string, req UpdateLabelRequest) (Label, error) {
	var label Label
	err := c.do(ctx, http.MethodPut, "/labels/"+segment(id), nil, req, &label)
	return label, err
}

func (c *Client) DeleteLabel(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/labels/"+segment(id), nil, nil, nil)
}

// Checklist

func (c *Client) CreateChecklistItem(ctx context.Context, req CreateChecklistItemRequest) (ChecklistItem, error) {
	var item ChecklistItem
	err := c.do(ctx, http.MethodPost, "/checklist", nil, req, &item)
	return item, err
}

func (c *Client) UpdateChecklistItem(ctx context.Context, id string, req UpdateChecklistItemRequest) (ChecklistItem, error) {
	var item ChecklistItem
	err := c.do(ctx, http.MethodPut, "/checklist/"+segment(id), nil, req, &item)
	return item, err
}

func (c *Client) DeleteChecklistItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/checklist/"+segment(id), nil, nil, nil)
}

// Admin & setup

func (c *Client) AdminLogin(ctx context.Context, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/admin/login", nil, LoginRequest{Password: password}, &resp)
	return resp, err
}

func (c *Client) SetupStatus(ctx context.Context) (SetupStatus, error) {
	var status SetupStatus
	err := c.do(ctx, http.MethodGet, "/setup/status", nil, nil, &status)
	return status, err
}
