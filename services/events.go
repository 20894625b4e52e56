package services

// OrderEvent is pushed to websocket subscribers whenever an order's status
// or claimant changes.
type OrderEvent struct {
	OrderID     uint   `json:"orderId"`
	Status      string `json:"status"`
	DelivererID *uint  `json:"delivererId,omitempty"`
}

// EventPublisher decouples services from the websocket hub. A nil publisher
// is allowed; callers must check.
type EventPublisher interface {
	PublishOrderEvent(evt OrderEvent)
}
