package ws

import (
	"context"

	websocketdto "fuelgo/internal/order-service/core/domain/websocket_dto"

	"github.com/gorilla/websocket"
)

type Client struct {
	ctx        context.Context
	conn       *websocket.Conn
	dis        *Dispatcher
	egress     chan websocketdto.Event
	customerID string
}

func NewClient(ctx context.Context, conn *websocket.Conn, dis *Dispatcher, customerID string) *Client {
	return &Client{
		ctx:        ctx,
		conn:       conn,
		dis:        dis,
		egress:     make(chan websocketdto.Event, 16),
		customerID: customerID,
	}
}

// ReadMessage drains the connection so pings and close frames are processed.
// Customers never send application messages, updates flow one way.
func (c *Client) ReadMessage() {
	defer c.dis.RemoveClient(c)

	c.conn.SetReadLimit(1024)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.dis.log.Warn("unexpected websocket close", "customer_id", c.customerID)
			}
			return
		}
	}
}

func (c *Client) WriteMessage() {
	for {
		select {
		case <-c.ctx.Done():
			c.dis.RemoveClient(c)
			return
		case event, ok := <-c.egress:
			if !ok {
				return
			}

			if err := c.conn.WriteJSON(event); err != nil {
				c.dis.log.Warn("failed to write ws event", "customer_id", c.customerID)
				c.dis.RemoveClient(c)
				return
			}
		}
	}
}
