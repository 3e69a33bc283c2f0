package ports

import (
	"context"

	messagebrokerdto "fuelgo/internal/order-service/core/domain/message_broker_dto"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// binding key for the notification consumer
	OrderStatusUpdates = "order.status.*"
)

type IOrderBroker interface {
	Close() error
	PublishOrderCreated(ctx context.Context, msg messagebrokerdto.OrderCreated) error
	PublishOrderStatus(ctx context.Context, msg messagebrokerdto.OrderStatus) error

	ConsumeOrderStatus(ctx context.Context, queue string) (<-chan amqp.Delivery, error)
}
