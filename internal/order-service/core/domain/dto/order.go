package dto

// API transfer data. Field names mirror the public FUELGO contract and must
// not be renamed.

type OrderDetailsDto struct {
	Liters             float64 `json:"liters,omitempty"`
	BatteryType        string  `json:"batteryType,omitempty"`
	VehicleBrand       string  `json:"vehicleBrand,omitempty"`
	VehicleModel       string  `json:"vehicleModel,omitempty"`
	ProblemDescription string  `json:"problemDescription,omitempty"`
	RequestedVehicle   string  `json:"requestedVehicle,omitempty"`
}

type LocationDto struct {
	Address     string `json:"address"`
	Coordinates string `json:"coordinates,omitempty"`
}

type OrderRequestDto struct {
	ServiceType   string          `json:"serviceType"`
	Details       OrderDetailsDto `json:"details"`
	Location      LocationDto     `json:"location"`
	PaymentMethod string          `json:"paymentMethod"`
}

type PaymentDto struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

type OrderResponseDto struct {
	ID               string          `json:"id"`
	OrderNumber      string          `json:"orderNumber"`
	UserID           string          `json:"userId"`
	ServiceType      string          `json:"serviceType"`
	Details          OrderDetailsDto `json:"details"`
	Location         LocationDto     `json:"location"`
	Payment          PaymentDto      `json:"payment"`
	Status           string          `json:"status"`
	AssignedMechanic string          `json:"assignedMechanic,omitempty"`
	Rating           int             `json:"rating,omitempty"`
	Feedback         string          `json:"feedback,omitempty"`
	CreatedAt        string          `json:"createdAt"`
}

type StatusUpdateRequestDto struct {
	Status           string `json:"status"`
	AssignedMechanic string `json:"assignedMechanic,omitempty"`
}
