// Package realtime delivers server-push events over websockets. Every
// connected client sits in the room of its own account id; workflows
// publish through the narrow notifier methods rather than by holding the
// hub itself.
package realtime

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	EventFileDeleted   = "fileDeleted"
	EventAdminApproved = "adminApproved"
	EventAdminRejected = "adminRejected"
)

type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type Hub struct {
	mu       sync.RWMutex
	rooms    map[uint]map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		rooms: map[uint]map[*websocket.Conn]struct{}{},
		upgrader: websocket.Upgrader{
			// The browser client is served from a different origin; auth
			// happens via the bearer token before the upgrade.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the request and keeps the connection in accountID's room
// until the peer goes away. Blocks for the lifetime of the connection.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, accountID uint) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	h.join(accountID, conn)
	logrus.Infof("Account %d joined its room", accountID)

	defer func() {
		h.leave(accountID, conn)
		_ = conn.Close()
	}()

	for {
		// Clients never send anything meaningful; reading just detects close.
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

func (h *Hub) join(accountID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[accountID] == nil {
		h.rooms[accountID] = map[*websocket.Conn]struct{}{}
	}
	h.rooms[accountID][conn] = struct{}{}
}

func (h *Hub) leave(accountID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[accountID], conn)
	if len(h.rooms[accountID]) == 0 {
		delete(h.rooms, accountID)
	}
}

// publish holds the write lock for the duration: gorilla/websocket allows
// at most one concurrent writer per connection, so sends to a room must be
// serialized, not just protected against membership changes.
func (h *Hub) publish(accountID uint, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.rooms[accountID] {
		if err := conn.WriteJSON(ev); err != nil {
			logrus.Error(err)
		}
	}
}

// FileDeleted tells the owner that one of its uploads is gone, including
// deletes initiated by an admin in another session.
func (h *Hub) FileDeleted(accountID uint, fileID uint) {
	h.publish(accountID, Event{
		Event: EventFileDeleted,
		Data:  map[string]interface{}{"fileId": fileID},
	})
}

func (h *Hub) AdmissionApproved(accountID uint, message string) {
	h.publish(accountID, Event{
		Event: EventAdminApproved,
		Data:  map[string]interface{}{"userId": accountID, "message": message},
	})
}

func (h *Hub) AdmissionRejected(accountID uint, message string) {
	h.publish(accountID, Event{
		Event: EventAdminRejected,
		Data:  map[string]interface{}{"userId": accountID, "message": message},
	})
}
