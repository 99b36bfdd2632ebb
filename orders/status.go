package orders

// Order lifecycle states.
const (
	StatusPending   = "pending"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// CanTransition reports whether an order may move from one status to
// another. Delivered and cancelled are terminal; cancellation is only
// possible before delivery.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusShipped || to == StatusCancelled
	case StatusShipped:
		return to == StatusDelivered || to == StatusCancelled
	default:
		return false
	}
}
