// Manual smoke client for a local FUELGO deployment: registers a user,
// creates a fuel order and listens for live status updates.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID string `json:"id"`
	} `json:"user"`
}

func main() {
	authURL := flag.String("auth-url", "http://localhost:5000", "auth service base URL")
	orderURL := flag.String("order-url", "http://localhost:5001", "order service base URL")
	flag.Parse()

	httpClient := NewHTTPClient()

	// register a throwaway user
	email := fmt.Sprintf("smoke-%s@fuelgo.test", uuid.NewString()[:8])
	body, status, err := httpClient.DoRequest("POST", *authURL+"/register", map[string]string{
		"name":     "Smoke Tester",
		"email":    email,
		"password": "secret123",
		"phone":    "+254700000000",
	}, nil)
	if err != nil {
		log.Fatalf("register failed: %v", err)
	}
	if status != 201 {
		log.Fatalf("register failed with status %d: %s", status, body)
	}

	var auth authResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		log.Fatalf("parsing register response: %v", err)
	}
	log.Printf("registered user %s", auth.User.ID)

	headers := map[string]string{"Authorization": "Bearer " + auth.Token}

	// subscribe to live status updates before creating the order
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	wsClient := NewWebSocketClient(ctx)
	wsURL := fmt.Sprintf("ws%s/ws/customers/%s", (*orderURL)[len("http"):], auth.User.ID)
	if err := wsClient.Connect(wsURL, auth.Token); err != nil {
		log.Fatalf("websocket connect failed: %v", err)
	}
	defer wsClient.Close()
	log.Printf("listening on %s", wsURL)

	go func() {
		_ = wsClient.ReadMessages(func(payload []byte) {
			log.Printf("ws event: %s", payload)
		})
	}()

	// create a fuel order
	body, status, err = httpClient.DoRequest("POST", *orderURL+"/orders", map[string]interface{}{
		"serviceType":   "fuel",
		"details":       map[string]interface{}{"liters": 10.5},
		"location":      map[string]string{"address": "Moi Avenue, Nairobi"},
		"paymentMethod": "mpesa",
	}, headers)
	if err != nil {
		log.Fatalf("create order failed: %v", err)
	}
	if status != 201 {
		log.Fatalf("create order failed with status %d: %s", status, body)
	}
	log.Printf("order created: %s", body)

	// keep listening so operator-driven status changes show up
	<-ctx.Done()
}
