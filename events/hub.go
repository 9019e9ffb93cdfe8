package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/south-indian-kitchen/backend/models"
	"github.com/south-indian-kitchen/backend/utils"
)

// Event types pushed to connected observers so cached views (cart badge,
// admin order list) resynchronize after every mutation.
const (
	EventCartUpdate  = "cart_update"
	EventOrderCreate = "order_create"
	EventOrderUpdate = "order_update"
	EventMenuUpdate  = "menu_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected observer. One process-wide hub is enough:
// clients subscribe to everything and filter on their side.
type Hub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]bool),
}

// RegisterClient adds a connection to the broadcast set.
func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = true
}

// UnregisterClient removes and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastCartUpdate announces the new cart state of a session.
func BroadcastCartUpdate(session string, items []models.CartItem, total float64, count int) {
	broadcast(Message{
		Event: EventCartUpdate,
		Data: map[string]interface{}{
			"session": session,
			"items":   items,
			"total":   total,
			"count":   count,
		},
	})
}

// BroadcastOrderCreate announces a freshly placed order.
func BroadcastOrderCreate(order models.Order) {
	broadcast(Message{
		Event: EventOrderCreate,
		Data:  order,
	})
}

// BroadcastOrderUpdate announces an order status change.
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastMenuUpdate announces a dish edit from the admin surface.
func BroadcastMenuUpdate(dish models.Dish) {
	broadcast(Message{
		Event: EventMenuUpdate,
		Data:  dish,
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("events: marshal %s: %v", msg.Event, err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("events: send %s: %v", msg.Event, err)
		}
	}
}
