package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fuelgo/internal/mylogger"
	websocketdto "fuelgo/internal/order-service/core/domain/websocket_dto"

	"github.com/golang-jwt/jwt"
	"github.com/gorilla/websocket"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, userID string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func newTestDispatcher(t *testing.T, ctx context.Context) (*Dispatcher, *httptest.Server) {
	t.Helper()

	log, err := mylogger.New(mylogger.LevelError)
	if err != nil {
		t.Fatalf("creating logger: %v", err)
	}

	d := NewDispatcher(ctx, log, testSecret)

	mux := http.NewServeMux()
	mux.Handle("/ws/customers/{customer_id}", d.WsHandler())
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return d, srv
}

func TestWriteToUser_AfterHandlerReturned(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d, srv := newTestDispatcher(t, ctx)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") +
		"/ws/customers/cust-1?token=" + signTestToken(t, "cust-1")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// the handler has long returned by now, the session must survive it
	time.Sleep(300 * time.Millisecond)

	d.WriteToUser("cust-1", websocketdto.Event{
		Type: "order_status_update",
		Data: json.RawMessage(`{"status":"confirmed"}`),
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("reading event: %v", err)
	}

	var event websocketdto.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		t.Fatalf("parsing event: %v", err)
	}
	if event.Type != "order_status_update" {
		t.Errorf("event type = %q, want order_status_update", event.Type)
	}
}

func TestWsHandler_RejectsForeignCustomer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, srv := newTestDispatcher(t, ctx)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") +
		"/ws/customers/cust-1?token=" + signTestToken(t, "cust-2")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		conn.Close()
		t.Fatal("expected the handshake to be rejected")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 handshake response, got %+v", resp)
	}
}

func TestWriteToUser_OnlyTargetsOwner(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d, srv := newTestDispatcher(t, ctx)

	dial := func(customerID string) *websocket.Conn {
		wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") +
			"/ws/customers/" + customerID + "?token=" + signTestToken(t, customerID)
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			t.Fatalf("dial %s failed: %v", customerID, err)
		}
		t.Cleanup(func() { conn.Close() })
		return conn
	}

	connA := dial("cust-a")
	connB := dial("cust-b")

	time.Sleep(100 * time.Millisecond)

	d.WriteToUser("cust-a", websocketdto.Event{
		Type: "order_status_update",
		Data: json.RawMessage(`{}`),
	})

	connA.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := connA.ReadMessage(); err != nil {
		t.Fatalf("owner did not receive the event: %v", err)
	}

	connB.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	if _, _, err := connB.ReadMessage(); err == nil {
		t.Error("event leaked to another customer")
	}
}
