package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/mwangiherbert/travel_marketplace/models"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// BookingEvent is pushed to the owning provider's dashboard connection when a
// booking on one of their services is created or changes status.
type BookingEvent struct {
	Type       string               `json:"type"`
	BookingID  uuid.UUID            `json:"booking_id"`
	Reference  string               `json:"reference"`
	ServiceID  uuid.UUID            `json:"service_id"`
	ProviderID uuid.UUID            `json:"-"`
	Status     models.BookingStatus `json:"status"`
	OccurredAt time.Time            `json:"occurred_at"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Events = make(chan *BookingEvent, 64)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Dashboard client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Dashboard client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Events:
			clientsMu.RLock()
			conn, ok := clients[event.ProviderID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("Error sending event to provider %s: %v", event.ProviderID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, event.ProviderID)
				clientsMu.Unlock()
			}
		}
	}
}

// NotifyBooking enqueues an event without blocking the calling handler; if
// the hub is saturated the event is dropped.
func NotifyBooking(eventType string, booking *models.Booking, providerID uuid.UUID) {
	event := &BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		Reference:  booking.Reference,
		ServiceID:  booking.ServiceID,
		ProviderID: providerID,
		Status:     booking.Status,
		OccurredAt: time.Now(),
	}
	select {
	case Events <- event:
	default:
		log.Printf("Event queue full, dropping %s for booking %s", eventType, booking.ID)
	}
}
