package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"kanban/internal/access"
	"kanban/internal/api"
	"kanban/internal/localstore"
	"kanban/internal/store"

	"github.com/spf13/viper"
)

var errNoBoard = errors.New("no accessible board: unlock one with `kanbanctl unlock` or log in as admin")

// app holds the client objects shared by commands. They are built on first use.
type app struct {
	v *viper.Viper

	local  localstore.Store
	closer func() error
	gate   *access.Gate
	client *api.Client
	store  *store.Store
}

func (a *app) open() error {
	if a.store != nil {
		return nil
	}

	path := a.v.GetString(keyState)
	if path == ":memory:" || path == "" {
		a.local = localstore.NewMemory()
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create state directory: %w", err)
		}
		db, err := localstore.OpenSQLite(path)
		if err != nil {
			return err
		}
		a.local = db
		a.closer = db.Close
	}

	a.gate = access.NewGate(a.local)
	a.client = api.NewClient(a.v.GetString(keyServer), api.WithRequestEditor(a.gate.RequestEditor()))
	a.store = store.New(a.client, a.local)
	return nil
}

func (a *app) close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer()
	a.closer = nil
	return err
}

// currentBoard loads the boards and selects the remembered or first viewable one.
func (a *app) currentBoard(ctx context.Context) (store.State, error) {
	if err := a.open(); err != nil {
		return store.State{}, err
	}
	if err := a.store.FetchBoards(ctx); err != nil {
		return store.State{}, err
	}
	id, err := a.store.RestoreSelection(ctx, a.gate.CanView)
	if err != nil {
		return store.State{}, err
	}
	if id == "" {
		return store.State{}, errNoBoard
	}
	return a.store.Snapshot(), nil
}
