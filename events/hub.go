package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Event types pushed to connected admin UIs.
const (
	EventReservationCreate = "reservation_create"
	EventReservationUpdate = "reservation_update"
	EventReservationDelete = "reservation_delete"
	EventTableCreate       = "table_create"
	EventTableUpdate       = "table_update"
	EventTableDelete       = "table_delete"
	EventConfigUpdate      = "config_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected admin client and fans events out to all of them.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection with its authenticated role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient drops a connection and closes it.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// Broadcast sends a message to every connected client. Clients that fail a
// write are dropped on the spot.
func Broadcast(message Message) {
	payload, err := json.Marshal(message)
	if err != nil {
		log.Printf("events: failed to marshal %s message: %v", message.Event, err)
		return
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(hub.clients, conn)
		}
	}
}
