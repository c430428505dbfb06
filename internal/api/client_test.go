package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kanban/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ErrorMessageFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Board not found"}`))
	}))
	defer srv.Close()

	_, err := api.NewClient(srv.URL).GetBoard(context.Background(), "missing")

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Board not found", apiErr.Message)
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := api.NewClient(srv.URL).DeleteCard(context.Background(), "c1")

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "request failed with status 502", apiErr.Error())
}

func TestClient_RequestEditorAndQuery(t *testing.T) {
	var gotHeader, gotQuery, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("x-admin-session")
		gotQuery = r.URL.Query().Get("teamMemberId")
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL+"/", api.WithRequestEditor(func(r *http.Request) {
		r.Header.Set("x-admin-session", "true")
	}))
	err := client.UnassignMember(context.Background(), "card-1", "tm-1")

	require.NoError(t, err)
	assert.Equal(t, "true", gotHeader)
	assert.Equal(t, "tm-1", gotQuery)
	assert.Equal(t, "/cards/card-1/assignments", gotPath)
}

func TestClient_UpdateCardEncodesOnlySetFields(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &body)
		w.Write([]byte(`{"id":"c1","title":"x","listId":"l2","position":2000}`))
	}))
	defer srv.Close()

	listID := "l2"
	card, err := api.NewClient(srv.URL).UpdateCard(context.Background(), "c1", api.UpdateCardRequest{
		ListID:  &listID,
		DueDate: api.Null[time.Time](),
	})

	require.NoError(t, err)
	assert.Equal(t, 2000, card.Position)
	assert.Equal(t, map[string]any{"listId": "l2", "dueDate": nil}, body)
}
