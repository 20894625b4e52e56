package ws

import (
	"log"
	"net/http"
	"strconv"

	"github.com/icedmoch/doorsmashorpass/repository"
	"github.com/icedmoch/doorsmashorpass/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes status/claimant changes to clients watching an order.
// Implements services.EventPublisher. The clients map is owned by the Run
// goroutine; all access funnels through the channels.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of conns
	broadcast  chan services.OrderEvent
	register   chan subscription
	unregister chan subscription

	orders *repository.OrderRepository
}

type subscription struct {
	conn    *websocket.Conn
	orderID uint
	userID  uint
}

func NewOrderHub(orders *repository.OrderRepository) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan services.OrderEvent, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		orders:     orders,
	}
}

// PublishOrderEvent queues an event for broadcast. Safe from any goroutine.
func (h *OrderHub) PublishOrderEvent(evt services.OrderEvent) {
	h.broadcast <- evt
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			if h.clients[sub.orderID] == nil {
				h.clients[sub.orderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.orderID][sub.conn] = true

		case sub := <-h.unregister:
			if _, ok := h.clients[sub.orderID][sub.conn]; ok {
				delete(h.clients[sub.orderID], sub.conn)
				sub.conn.Close()
			}

		case evt := <-h.broadcast:
			for conn := range h.clients[evt.OrderID] {
				if err := conn.WriteJSON(evt); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[evt.OrderID], conn)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id — owner and claimant only.
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	orderID64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	orderID := uint(orderID64)

	userIDVal, _ := c.Get("userId")
	userID, _ := userIDVal.(uint)

	o, err := h.orders.GetOrder(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	isOwner := o.UserID == userID
	isClaimant := o.DelivererID != nil && *o.DelivererID == userID
	if !isOwner && !isClaimant {
		c.JSON(http.StatusForbidden, gin.H{"error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{conn: conn, orderID: orderID, userID: userID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps the connection's read side alive so close frames are seen;
// clients only listen on this feed.
func (h *OrderHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			break
		}
	}
}
