// handlers/lobby.go - WebSocket room lobby fanout
package handlers

import (
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// lobbyEvent is what lobby subscribers receive when room state changes.
type lobbyEvent struct {
	Type   string `json:"type"`
	RoomID uint   `json:"room_id"`
	UserID uint   `json:"user_id,omitempty"`
}

var (
	lobbyMu    sync.Mutex
	lobbyConns = make(map[uint]map[*websocket.Conn]bool)
)

// lobbyBroadcast pushes an event to every socket watching a room. Writes are
// serialized under the lobby lock; a failed write drops the connection.
func lobbyBroadcast(roomID uint, ev lobbyEvent) {
	lobbyMu.Lock()
	defer lobbyMu.Unlock()

	for conn := range lobbyConns[roomID] {
		if err := conn.WriteJSON(ev); err != nil {
			delete(lobbyConns[roomID], conn)
			_ = conn.Close()
		}
	}
}

func lobbySubscribe(roomID uint, conn *websocket.Conn) {
	lobbyMu.Lock()
	defer lobbyMu.Unlock()

	if lobbyConns[roomID] == nil {
		lobbyConns[roomID] = make(map[*websocket.Conn]bool)
	}
	lobbyConns[roomID][conn] = true
}

func lobbyUnsubscribe(roomID uint, conn *websocket.Conn) {
	lobbyMu.Lock()
	defer lobbyMu.Unlock()

	delete(lobbyConns[roomID], conn)
	if len(lobbyConns[roomID]) == 0 {
		delete(lobbyConns, roomID)
	}
}

// RoomLobbySocket upgrades to a WebSocket that streams room lobby events.
// GET /ws/rooms/:id
func RoomLobbySocket() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		id, err := strconv.ParseUint(conn.Params("id"), 10, 32)
		if err != nil || id == 0 {
			_ = conn.WriteJSON(map[string]string{"error": "invalid room id"})
			_ = conn.Close()
			return
		}
		roomID := uint(id)

		lobbySubscribe(roomID, conn)
		log.Printf("🔌 Lobby socket opened for room %d", roomID)

		defer func() {
			lobbyUnsubscribe(roomID, conn)
			_ = conn.Close()
			log.Printf("🔌 Lobby socket closed for room %d", roomID)
		}()

		// Clients only listen; the read loop just detects disconnects.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
