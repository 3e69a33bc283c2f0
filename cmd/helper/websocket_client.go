package main

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
)

type WebSocketClient struct {
	conn *websocket.Conn
	ctx  context.Context
}

func NewWebSocketClient(ctx context.Context) *WebSocketClient {
	return &WebSocketClient{
		ctx: ctx,
	}
}

func (w *WebSocketClient) Connect(url string, token string) error {
	header := make(map[string][]string)
	header["Authorization"] = []string{"Bearer " + token}

	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		return fmt.Errorf("connecting to websocket: %w", err)
	}

	w.conn = conn
	return nil
}

func (w *WebSocketClient) Close() error {
	if w.conn != nil {
		return w.conn.Close()
	}
	return nil
}

func (w *WebSocketClient) ReadMessages(handler func(payload []byte)) error {
	for {
		select {
		case <-w.ctx.Done():
			return nil
		default:
			_, payload, err := w.conn.ReadMessage()
			if err != nil {
				return fmt.Errorf("reading message: %w", err)
			}
			handler(payload)
		}
	}
}
