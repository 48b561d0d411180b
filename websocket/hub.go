// Package websocket pushes engagement lifecycle events (connection and
// meeting transitions) to connected parties. It carries events only, not
// chat.
package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

const (
	EventConnectionRequested = "connection.requested"
	EventConnectionAccepted  = "connection.accepted"
	EventConnectionDeclined  = "connection.declined"
	EventMeetingProposed     = "meeting.proposed"
	EventMeetingAccepted     = "meeting.accepted"
	EventMeetingRejected     = "meeting.rejected"
	EventMeetingReminder     = "meeting.reminder"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type directedEvent struct {
	userID uuid.UUID
	event  Event
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex

var Register = make(chan *Client)
var Unregister = make(chan *Client)
var events = make(chan directedEvent, 64)

// Notify queues an event for a single user. Dropped silently if the hub's
// buffer is full or the user is not connected; email remains the durable
// channel.
func Notify(userID uuid.UUID, eventType string, payload interface{}) {
	select {
	case events <- directedEvent{userID: userID, event: Event{Type: eventType, Payload: payload}}:
	default:
		log.Printf("Event buffer full, dropping %s for user %s", eventType, userID)
	}
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
			log.Printf("Client registered: %s", client.UserID)
		case client := <-Unregister:
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
			log.Printf("Client unregistered: %s", client.UserID)
		case directed := <-events:
			clientsMu.RLock()
			conn, ok := clients[directed.userID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(directed.event); err != nil {
				log.Printf("Error sending event to client %s: %v", directed.userID, err)
				conn.Close()
				clientsMu.Lock()
				if current, stillThere := clients[directed.userID]; stillThere && current == conn {
					delete(clients, directed.userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}
