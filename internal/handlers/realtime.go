package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"roomstayAdmin/internal/realtime"
	"roomstayAdmin/internal/storage"
)

var upgrader = websocket.Upgrader{
	// the dashboard is served from a different origin than the API
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamHandler upgrades to a websocket, sends an initial snapshot, then
// relays hub notifications until the client goes away. Each notification
// replaces the client's state wholesale.
func streamHandler(hub *realtime.Hub, topic string, snapshot func() ([]byte, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		defer conn.Close()

		if initial, err := snapshot(); err == nil {
			if err := conn.WriteMessage(websocket.TextMessage, initial); err != nil {
				return
			}
		}

		messages, unsubscribe := hub.Subscribe(topic)
		defer unsubscribe()

		// drain reads so close frames are processed
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-done:
				return
			case payload, ok := <-messages:
				if !ok {
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					return
				}
			}
		}
	})
}

// PendingCountStreamHandler pushes the live count of pending properties.
func PendingCountStreamHandler(db storage.Database, hub *realtime.Hub) http.Handler {
	return streamHandler(hub, realtime.PendingCountTopic, func() ([]byte, error) {
		count, err := db.CountPendingProperties()
		if err != nil {
			return nil, err
		}
		return []byte(strconv.Itoa(count)), nil
	})
}

// SystemLogStreamHandler pushes system log entries as they are recorded.
func SystemLogStreamHandler(db storage.Database, hub *realtime.Hub) http.Handler {
	return streamHandler(hub, realtime.SystemLogTopic, func() ([]byte, error) {
		entries, err := db.GetRecentSystemLogs(50)
		if err != nil {
			return nil, err
		}
		return json.Marshal(entries)
	})
}
