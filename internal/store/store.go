// Package store is the client's working copy of the server's boards.
//
// A Store holds the loaded boards and a flattened view of the selected board.
// Mutating actions update it optimistically: they snapshot the part of the
// state they change, apply the change, call the server and then either adopt
// the server's answer or restore the snapshot. Concurrent actions on the same
// entity are not serialized; the last response wins.
package store

import (
	"context"
	"errors"
	"sync"

	"kanban/internal/api"
)

// CurrentBoardKey is the local storage key of the last selected board.
const CurrentBoardKey = "kanbanify-current-board-id"

var ErrNoBoardSelected = errors.New("no board selected")

// Backend is the part of the HTTP API the store calls.
type Backend interface {
	ListBoards(ctx context.Context) ([]api.Board, error)
	GetBoard(ctx context.Context, id string) (api.Board, error)
	CreateBoard(ctx context.Context, req api.CreateBoardRequest) (api.Board, error)
	UpdateBoard(ctx context.Context, id string, req api.UpdateBoardRequest) (api.Board, error)
	DeleteBoard(ctx context.Context, id string) error
	ReorderLists(ctx context.Context, boardID string, listIDs []string) ([]api.List, error)

	CreateList(ctx context.Context, req api.CreateListRequest) (api.List, error)
	UpdateList(ctx context.Context, id string, req api.UpdateListRequest) (api.List, error)
	DeleteList(ctx context.Context, id string) error

	CreateCard(ctx context.Context, req api.CreateCardRequest) (api.Card, error)
	UpdateCard(ctx context.Context, id string, req api.UpdateCardRequest) (api.Card, error)
	DeleteCard(ctx context.Context, id string) error
	AssignMember(ctx context.Context, cardID, teamMemberID string) (api.CardAssignment, error)
	UnassignMember(ctx context.Context, cardID, teamMemberID string) error
	AddLabelToCard(ctx context.Context, cardID, labelID string) (api.Card, error)
	RemoveLabelFromCard(ctx context.Context, cardID, labelID string) (api.Card, error)

	CreateTeamMember(ctx context.Context, req api.CreateTeamMemberRequest) (api.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, req api.UpdateTeamMemberRequest) (api.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) error

	CreateLabel(ctx context.Context, req api.CreateLabelRequest) (api.Label, error)
	UpdateLabel(ctx context.Context, id string, req api.UpdateLabelRequest) (api.Label, error)
	DeleteLabel(ctx context.Context, id string) error

	CreateChecklistItem(ctx context.Context, req api.CreateChecklistItemRequest) (api.ChecklistItem, error)
	UpdateChecklistItem(ctx context.Context, id string, req api.UpdateChecklistItemRequest) (api.ChecklistItem, error)
	DeleteChecklistItem(ctx context.Context, id string) error
}

// Local persists the selected board id between runs.
type Local interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// State is the store's content. Lists carry no nested cards; Cards holds every
// card of the current board tagged with its list id. Error is empty when the
// last action succeeded or no error was recorded.
type State struct {
	Boards       []api.Board
	CurrentBoard *api.Board
	Lists        []api.List
	Cards        []api.Card
	TeamMembers  []api.TeamMember
	Labels       []api.Label
	IsLoading    bool
	Error        string
}

func (s State) clone() State {
	out := s
	out.Boards = api.CloneAll(s.Boards)
	if s.CurrentBoard != nil {
		b := s.CurrentBoard.Clone()
		out.CurrentBoard = &b
	}
	out.Lists = api.CloneAll(s.Lists)
	out.Cards = api.CloneAll(s.Cards)
	out.TeamMembers = api.CloneAll(s.TeamMembers)
	out.Labels = api.CloneAll(s.Labels)
	return out
}

type Store struct {
	backend Backend
	local   Local

	mu     sync.Mutex
	state  State
	subs   map[int]func(State)
	nextID int
	tempID int
}

// New returns an empty store with no board selected.
func New(backend Backend, local Local) *Store {
	return &Store{
		backend: backend,
		local:   local,
		state: State{
			Boards:      []api.Board{},
			Lists:       []api.List{},
			Cards:       []api.Card{},
			TeamMembers: []api.TeamMember{},
			Labels:      []api.Label{},
		},
		subs: make(map[int]func(State)),
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to receive a copy of the state after every change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// update applies fn under the lock and notifies subscribers afterwards.
func (s *Store) update(fn func(st *State)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state.clone()
	subs := make([]func(State), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap.clone())
	}
}

// read runs fn under the lock without notifying.
func (s *Store) read(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

func (s *Store) SetError(msg string) {
	s.update(func(st *State) { st.Error = msg })
}

func (s *Store) ClearError() {
	s.SetError("")
}

func (s *Store) SetLoading(loading bool) {
	s.update(func(st *State) { st.IsLoading = loading })
}

// fail records err as the store error and returns it.
func (s *Store) fail(err error, fallback string) error {
	s.SetError(errorMessage(err, fallback))
	return err
}

// errorMessage is the server's message when it sent one, otherwise fallback.
func errorMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message == "" {
		return fallback
	}
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

func (s *Store) persistSelection(boardID string) {
	if s.local == nil {
		return
	}
	if boardID == "" {
		_ = s.local.Remove(CurrentBoardKey)
		return
	}
	_ = s.local.Set(CurrentBoardKey, boardID)
}

func (s *Store) persistedSelection() string {
	if s.local == nil {
		return ""
	}
	id, ok, err := s.local.Get(CurrentBoardKey)
	if err != nil || !ok {
		return ""
	}
	return id
}

func (s *Store) currentBoardID() string {
	var id string
	s.read(func(st *State) {
		if st.CurrentBoard != nil {
			id = st.CurrentBoard.ID
		}
	})
	return id
}
