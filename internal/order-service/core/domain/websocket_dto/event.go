package websocketdto

import "encoding/json"

type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Pushed to the order owner whenever the order moves through the workflow.
type OrderStatusUpdateDto struct {
	OrderID          string `json:"order_id"`
	OrderNumber      string `json:"order_number"`
	Status           string `json:"status"`
	AssignedMechanic string `json:"assigned_mechanic,omitempty"`
	CorrelationID    string `json:"correlation_id"`
}
