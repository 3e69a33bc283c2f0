package ports

import (
	"context"

	"fuelgo/internal/order-service/core/domain/model"
)

type IOrderRepo interface {
	// CreateOrder persists the order and returns it with id and created_at set.
	CreateOrder(ctx context.Context, m model.Order) (model.Order, error)
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus, assignedMechanic string) error
	CountCreatedToday(ctx context.Context) (int64, error)
}

type IRatingRepo interface {
	CreateRating(ctx context.Context, m model.Rating) (model.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]model.Rating, error)
}
