package interfaces

import (
	"context"
	"time"

	"atelie/internal/domain/entities"
)

// OrderQuery is the part of an order listing pushed down to DynamoDB.
// Empty fields do not filter.
type OrderQuery struct {
	Statuses    []entities.OrderStatus
	RequestType entities.RequestType
}

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Lookups return a zero Order (empty ID) and a nil error when the order does
// not exist. Listings come back in storage order; callers sort.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id entities.OrderID) (entities.Order, error)
	List(ctx context.Context, q OrderQuery) ([]entities.Order, error)
	ListByClientID(ctx context.Context, clientID entities.ClientID) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id entities.OrderID, status entities.OrderStatus, updatedAt time.Time) (entities.Order, error)
	Delete(ctx context.Context, id entities.OrderID) error
}
