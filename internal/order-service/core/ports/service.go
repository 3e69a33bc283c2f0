package ports

import (
	"context"

	"fuelgo/internal/order-service/core/domain/dto"
)

type IOrderService interface {
	// CreateOrder prices and persists a new order for ownerID.
	// idempotencyKey may be empty, in which case no replay guard is applied.
	CreateOrder(ctx context.Context, ownerID, idempotencyKey string, req dto.OrderRequestDto) (dto.OrderResponseDto, error)
	ListOrders(ctx context.Context, ownerID string) ([]dto.OrderResponseDto, error)
	GetOrder(ctx context.Context, callerID, orderID string) (dto.OrderResponseDto, error)
	// SetStatus moves the order along the workflow. Only the order owner
	// may call it.
	SetStatus(ctx context.Context, callerID, orderID string, req dto.StatusUpdateRequestDto) (dto.OrderResponseDto, error)
}

type IRatingService interface {
	CreateRating(ctx context.Context, userID string, req dto.RatingRequestDto) (dto.RatingResponseDto, error)
	ListRatings(ctx context.Context, userID string) ([]dto.RatingResponseDto, error)
}
