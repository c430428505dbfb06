package live

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
)

// EventsURL turns an http(s) API base URL into the websocket events URL.
func EventsURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", errors.New("unsupported scheme " + u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/events"
	return u.String(), nil
}

// Subscribe connects to the events endpoint and calls fn for each event
// until ctx is done or the connection drops.
func Subscribe(ctx context.Context, eventsURL string, fn func(Event)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, eventsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	})
	defer stop()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return ctx.Err()
			}
			return err
		}
		var event Event
		if err := json.Unmarshal(message, &event); err != nil {
			continue
		}
		fn(event)
	}
}
