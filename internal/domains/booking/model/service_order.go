package model

const (
	ServiceOrderTableName  = "service_orders"
	ServiceOrderEntityName = "service_order"

	FieldOrderID   = "order_id"
	FieldBookingID = "booking_id"
)

// ServiceOrder never carries its cost into an INSERT; before_service_order_insert computes it.
type ServiceOrder struct {
	OrderID        int64   `db:"order_id"         insert:"-"`
	BookingID      int64   `db:"booking_id"`
	ServiceID      int64   `db:"service_id"`
	Quantity       int     `db:"quantity"`
	TotalOrderCost float64 `db:"total_order_cost" insert:"-"`
	ServiceName    string  `db:"service_name"     table:"services"`
}

func (ServiceOrder) JoinClause() string {
	return "JOIN services ON services.service_id = service_orders.service_id"
}
