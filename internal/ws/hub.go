package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Event types pushed to connected clients.
const (
	EventStockUpdate    = "stock_update"
	EventSalePosted     = "sale_posted"
	EventCustomerUpdate = "customer_update"
	EventCatalogUpdate  = "catalog_update"
	EventDataCleared    = "data_cleared"
)

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS Client Connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Publish encodes payload and queues it for every client without blocking the caller.
func (h *Hub) Publish(payload map[string]interface{}) {
	msg, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ws: dropping unencodable event %v: %v", payload["type"], err)
		return
	}
	go func() {
		h.Broadcast <- msg
	}()
}

// ClientCount reports how many sockets are registered.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}
