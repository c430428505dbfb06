// Package access keeps the client's record of admin status and unlocked boards.
//
// The record lives in local storage, unsigned and without expiry. It decides
// what the client offers to show and is not a security boundary: anyone who
// can edit the store can unlock any board or claim admin. The server still
// checks admin credentials on every destructive request.
package access

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"sync"

	"kanban/internal/api"
)

const (
	KeyAdmin        = "admin-authenticated"
	KeyBoardAccess  = "board-access"
	KeyAdminSession = "admin-session-token"
)

// KV is the storage the gate persists to.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Validator is the part of the API the gate calls.
type Validator interface {
	ValidateAccess(ctx context.Context, boardID string, req api.AccessRequest) error
	AdminLogin(ctx context.Context, password string) (api.LoginResponse, error)
}

type Gate struct {
	mu sync.Mutex
	kv KV
}

func NewGate(kv KV) *Gate {
	return &Gate{kv: kv}
}

func (g *Gate) IsAdmin() bool {
	v, ok, err := g.kv.Get(KeyAdmin)
	return err == nil && ok && v == "true"
}

func (g *Gate) SetAdmin(token string) error {
	if err := g.kv.Set(KeyAdmin, "true"); err != nil {
		return err
	}
	if token == "" {
		return g.kv.Remove(KeyAdminSession)
	}
	return g.kv.Set(KeyAdminSession, token)
}

// Logout forgets admin status. Unlocked boards are kept.
func (g *Gate) Logout() error {
	if err := g.kv.Remove(KeyAdmin); err != nil {
		return err
	}
	return g.kv.Remove(KeyAdminSession)
}

// Token is the stored admin token, empty when none was issued.
func (g *Gate) Token() string {
	v, _, _ := g.kv.Get(KeyAdminSession)
	return v
}

// BoardIDs returns the unlocked board ids. A corrupt record reads as empty.
func (g *Gate) BoardIDs() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.boardIDs()
}

func (g *Gate) boardIDs() []string {
	raw, ok, err := g.kv.Get(KeyBoardAccess)
	if err != nil || !ok {
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil || ids == nil {
		return []string{}
	}
	return ids
}

func (g *Gate) saveBoardIDs(ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return g.kv.Set(KeyBoardAccess, string(raw))
}

// Grant records boardID as unlocked. Granting twice is a no-op.
func (g *Gate) Grant(boardID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := g.boardIDs()
	if slices.Contains(ids, boardID) {
		return nil
	}
	return g.saveBoardIDs(append(ids, boardID))
}

func (g *Gate) Revoke(boardID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := g.boardIDs()
	i := slices.Index(ids, boardID)
	if i < 0 {
		return nil
	}
	return g.saveBoardIDs(slices.Delete(ids, i, i+1))
}

// ClearAll forgets every unlocked board.
func (g *Gate) ClearAll() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.kv.Remove(KeyBoardAccess)
}

func (g *Gate) HasAccess(boardID string) bool {
	return slices.Contains(g.BoardIDs(), boardID)
}

// CanView reports whether the board should be shown: admins see everything.
func (g *Gate) CanView(boardID string) bool {
	return g.IsAdmin() || g.HasAccess(boardID)
}

// Unlock checks code with the server and records the board only on success.
// A rejected code returns the *api.Error and leaves the record unchanged.
func (g *Gate) Unlock(ctx context.Context, v Validator, boardID, code, email string) error {
	if code == "" {
		return &api.Error{Status: http.StatusBadRequest, Message: "Access code is required"}
	}
	if err := v.ValidateAccess(ctx, boardID, api.AccessRequest{AccessCode: code, Email: email}); err != nil {
		return err
	}
	if err := g.Grant(boardID); err != nil {
		return fmt.Errorf("remember board access: %w", err)
	}
	return nil
}

// AdminLogin checks password with the server and records admin status on success.
func (g *Gate) AdminLogin(ctx context.Context, v Validator, password string) error {
	resp, err := v.AdminLogin(ctx, password)
	if err != nil {
		return err
	}
	if !resp.Success {
		return &api.Error{Status: http.StatusUnauthorized, Message: "Invalid admin password"}
	}
	return g.SetAdmin(resp.Token)
}

// RequestEditor attaches admin credentials to outgoing requests: the stored
// token when there is one, otherwise the admin session flag.
func (g *Gate) RequestEditor() api.RequestEditor {
	return func(req *http.Request) {
		if !g.IsAdmin() {
			return
		}
		if token := g.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			return
		}
		req.Header.Set("x-admin-session", "true")
	}
}
