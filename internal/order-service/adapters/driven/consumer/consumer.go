package consumer

import (
	"context"
	"encoding/json"

	messagebrokerdto "fuelgo/internal/order-service/core/domain/message_broker_dto"
	websocketdto "fuelgo/internal/order-service/core/domain/websocket_dto"
	"fuelgo/internal/order-service/core/ports"

	"fuelgo/internal/mylogger"

	"github.com/rabbitmq/amqp091-go"
)

const (
	statusQueue = "order_status_notifications"

	// websocket type
	orderStatusUpdate = "order_status_update"
)

// Notification pumps order.status.* events from the broker to the websocket
// dispatcher so connected owners see workflow progress live.
type Notification struct {
	ctx        context.Context
	log        mylogger.Logger
	dispatcher ports.INotifyWebsocket
	broker     ports.IOrderBroker
}

func New(
	ctx context.Context,
	log mylogger.Logger,
	dispatcher ports.INotifyWebsocket,
	broker ports.IOrderBroker,
) *Notification {
	return &Notification{
		ctx:        ctx,
		log:        log,
		dispatcher: dispatcher,
		broker:     broker,
	}
}

func (n *Notification) Run() error {
	chStatus, err := n.broker.ConsumeOrderStatus(n.ctx, statusQueue)
	if err != nil {
		return err
	}

	go n.work(n.ctx, chStatus, n.StatusUpdate)

	return nil
}

func (n *Notification) work(
	ctx context.Context,
	ch <-chan amqp091.Delivery,
	Do func(msg amqp091.Delivery) error,
) {
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}

			if err := Do(msg); err != nil {
				n.log.Error("failed to handle broker message", err)
				continue
			}
		case <-ctx.Done():
			return
		}
	}
}

func (n *Notification) StatusUpdate(msg amqp091.Delivery) error {
	m := messagebrokerdto.OrderStatus{}

	if err := json.Unmarshal(msg.Body, &m); err != nil {
		return err
	}

	update := websocketdto.OrderStatusUpdateDto{
		OrderID:          m.OrderID,
		OrderNumber:      m.OrderNumber,
		Status:           m.Status,
		AssignedMechanic: m.AssignedMechanic,
		CorrelationID:    m.CorrelationID,
	}

	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}

	n.dispatcher.WriteToUser(m.OwnerID, websocketdto.Event{
		Type: orderStatusUpdate,
		Data: payload,
	})
	return nil
}
