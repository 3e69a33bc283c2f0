package ws

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"fuelgo/internal/mylogger"
	websocketdto "fuelgo/internal/order-service/core/domain/websocket_dto"
	"fuelgo/internal/order-service/core/ports"

	"github.com/golang-jwt/jwt"
	"github.com/gorilla/websocket"
)

var websocketUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ClientList is a map used to help manage a map of clients
type ClientList map[*Client]bool

type Dispatcher struct {
	clients ClientList
	sync.RWMutex
	ctx       context.Context
	log       mylogger.Logger
	jwtSecret string
}

var _ ports.INotifyWebsocket = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher whose connections live until ctx is
// cancelled. Pass the application context, not a request context.
func NewDispatcher(ctx context.Context, log mylogger.Logger, jwtSecret string) *Dispatcher {
	return &Dispatcher{
		clients:   make(ClientList),
		ctx:       ctx,
		log:       log,
		jwtSecret: jwtSecret,
	}
}

// WsHandler upgrades the request and keeps the connection registered until it
// drops. The caller must present the same JWT it uses against the REST API,
// either in the Authorization header or as a `token` query parameter.
func (d *Dispatcher) WsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := d.log.Action("wsHandler")
		customerID := r.PathValue("customer_id")

		if customerID == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		userID, err := d.verifyToken(r)
		if err != nil {
			log.Warn("websocket auth rejected", "customer_id", customerID)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if userID != customerID {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		conn, err := websocketUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("cannot upgrade", err)
			return
		}

		// the request context dies when this handler returns, the
		// connection must outlive it
		client := NewClient(d.ctx, conn, d, customerID)
		d.AddClient(client)
		log.Info("customer connected", "customer_id", customerID)

		go client.ReadMessage()
		go client.WriteMessage()
	}
}

func (d *Dispatcher) verifyToken(r *http.Request) (string, error) {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		tokenString = r.URL.Query().Get("token")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(d.jwtSecret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrSignatureInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrInvalidKey
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", jwt.ErrInvalidKey
	}
	return userID, nil
}

// WriteToUser pushes the event to every open connection of the user.
func (d *Dispatcher) WriteToUser(userID string, msg websocketdto.Event) {
	d.RLock()
	defer d.RUnlock()

	for client := range d.clients {
		if client.customerID == userID {
			select {
			case client.egress <- msg:
			default:
				d.log.Warn("dropping ws event, slow consumer", "customer_id", userID)
			}
		}
	}
}

func (d *Dispatcher) AddClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	d.clients[client] = true
}

func (d *Dispatcher) RemoveClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	if _, ok := d.clients[client]; ok {
		client.conn.Close()
		delete(d.clients, client)
		// no sender can hold the client anymore, unblock its writer
		close(client.egress)
	}
}
