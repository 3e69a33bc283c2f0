package messagebrokerdto

// Messages published to the order_topic exchange.

type OrderCreated struct {
	OrderID       string  `json:"order_id"`
	OrderNumber   string  `json:"order_number"`
	OwnerID       string  `json:"owner_id"`
	ServiceType   string  `json:"service_type"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Address       string  `json:"address"`
	CorrelationID string  `json:"correlation_id"`
}

type OrderStatus struct {
	OrderID          string `json:"order_id"`
	OrderNumber      string `json:"order_number"`
	OwnerID          string `json:"owner_id"`
	Status           string `json:"status"`
	AssignedMechanic string `json:"assigned_mechanic,omitempty"`
	Timestamp        string `json:"timestamp"`
	CorrelationID    string `json:"correlation_id"`
}
