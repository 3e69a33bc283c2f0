package bm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"fuelgo/internal/config"
	"fuelgo/internal/mylogger"
	"fuelgo/internal/order-service/core/ports"

	messagebrokerdto "fuelgo/internal/order-service/core/domain/message_broker_dto"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	orderExchange  = "order_topic" // topic
	reconnInterval = 10            // seconds
)

type RabbitMQ struct {
	ctx          context.Context
	cfg          config.RabbitMqconfig
	mylog        mylogger.Logger
	conn         *amqp.Connection
	ch           *amqp.Channel
	reconnecting bool
	mu           *sync.Mutex
}

var _ ports.IOrderBroker = (*RabbitMQ)(nil)

// create RabbitMQ adapter
func New(ctx context.Context, rabbitmqCfg config.RabbitMqconfig, mylog mylogger.Logger) (ports.IOrderBroker, error) {
	r := &RabbitMQ{
		ctx:          ctx,
		cfg:          rabbitmqCfg,
		mylog:        mylog,
		mu:           &sync.Mutex{},
		reconnecting: false,
	}
	if err := r.connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %v", err)
	}
	return r, nil
}

func (r *RabbitMQ) PublishOrderCreated(ctx context.Context, msg messagebrokerdto.OrderCreated) error {
	routingKey := fmt.Sprintf("order.created.%s", msg.ServiceType)
	return r.publishJSON(ctx, routingKey, msg.CorrelationID, msg)
}

func (r *RabbitMQ) PublishOrderStatus(ctx context.Context, msg messagebrokerdto.OrderStatus) error {
	routingKey := fmt.Sprintf("order.status.%s", msg.Status)
	return r.publishJSON(ctx, routingKey, msg.CorrelationID, msg)
}

func (r *RabbitMQ) publishJSON(ctx context.Context, routingKey, correlationID string, msg any) error {
	mylog := r.mylog.Action("publishMessage")

	if !r.IsAlive() {
		mylog.Error("connection to rabbitmq is closed", errors.New("closed conn"))
		go r.reconnect(r.ctx)
		return errors.New("connection is closed")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return r.ch.PublishWithContext(pubCtx, orderExchange, routingKey, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		CorrelationId: correlationID,
		Body:          body,
	})
}

func (r *RabbitMQ) ConsumeOrderStatus(ctx context.Context, queue string) (<-chan amqp.Delivery, error) {
	if !r.IsAlive() {
		return nil, errors.New("connection is closed")
	}

	if _, err := r.ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("queue declare: %w", err)
	}

	if err := r.ch.QueueBind(
		queue,
		ports.OrderStatusUpdates,
		orderExchange,
		false,
		nil,
	); err != nil {
		return nil, fmt.Errorf("queue bind: %w", err)
	}

	return r.ch.ConsumeWithContext(ctx, queue, "", true, false, false, false, nil)
}

func (r *RabbitMQ) IsAlive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil || r.conn.IsClosed() {
		return false
	}
	if r.ch == nil || r.ch.IsClosed() {
		return false
	}

	return true
}

func (r *RabbitMQ) Close() error {
	if r.ch != nil && !r.ch.IsClosed() {
		if err := r.ch.Close(); err != nil {
			return fmt.Errorf("close rabbitmq channel: %v", err)
		}
	}

	if r.conn != nil && !r.conn.IsClosed() {
		if err := r.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %v", err)
		}
	}
	return nil
}

// connect to rabbitmq
func (r *RabbitMQ) connect() error {
	conn, err := amqp.Dial(fmt.Sprintf("amqp://%v:%v@%v:%v/%v",
		r.cfg.User,
		r.cfg.Password,
		r.cfg.Host,
		r.cfg.Port,
		r.cfg.VHost,
	))
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return err
	}

	if err := ch.ExchangeDeclare(orderExchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}

	r.conn = conn
	r.ch = ch
	return nil
}

func (r *RabbitMQ) reconnect(ctx context.Context) {
	r.mu.Lock()
	if r.reconnecting {
		r.mu.Unlock()
		return
	}
	r.reconnecting = true
	r.mu.Unlock()

	t := time.NewTicker(time.Second * reconnInterval)
	mylog := r.mylog.Action("mb_reconnecting")

	for {
		select {
		case <-t.C:
			if err := r.connect(); err == nil {
				t.Stop()
				mylog.Action("mb_reconnection_completed").Info("Successfully reconnected!")
				r.mu.Lock()
				r.reconnecting = false
				r.mu.Unlock()
				return
			}
			mylog.Info("rabbitmq failed to reconnect")

		case <-ctx.Done():
			t.Stop()
			return
		}
	}
}
