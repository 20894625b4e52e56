package entity

// Order.Status values.
// pending → preparing → ready → out_for_delivery → delivered (terminal),
// cancelled (terminal) reachable from any non-terminal state.
const (
	StatusPending        = "pending"
	StatusPreparing      = "preparing"
	StatusReady          = "ready"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// IsTerminalStatus reports whether no further transition may touch the order.
func IsTerminalStatus(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}
