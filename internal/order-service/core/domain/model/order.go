package model

import (
	"encoding/json"
	"fmt"
	"time"
)

type ServiceType string

const (
	ServiceFuel     ServiceType = "fuel"
	ServiceBattery  ServiceType = "battery"
	ServiceMechanic ServiceType = "mechanic"
	ServiceVehicle  ServiceType = "vehicle"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusInProgress OrderStatus = "in-progress"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentMpesa  PaymentMethod = "mpesa"
	PaymentPaypal PaymentMethod = "paypal"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// ServiceDetails is the variant payload of an order. Exactly one concrete
// type exists per service type and carries only the fields that matter for it.
type ServiceDetails interface {
	Service() ServiceType
}

type FuelDetails struct {
	Liters float64 `json:"liters"`
}

func (FuelDetails) Service() ServiceType { return ServiceFuel }

type BatteryDetails struct {
	BatteryType  string `json:"batteryType"`
	VehicleBrand string `json:"vehicleBrand"`
	VehicleModel string `json:"vehicleModel"`
}

func (BatteryDetails) Service() ServiceType { return ServiceBattery }

type MechanicDetails struct {
	VehicleBrand       string `json:"vehicleBrand"`
	VehicleModel       string `json:"vehicleModel"`
	ProblemDescription string `json:"problemDescription"`
}

func (MechanicDetails) Service() ServiceType { return ServiceMechanic }

type VehicleDetails struct {
	RequestedVehicle string `json:"requestedVehicle"`
}

func (VehicleDetails) Service() ServiceType { return ServiceVehicle }

// UnmarshalDetails restores the right variant from its stored JSON form.
func UnmarshalDetails(serviceType ServiceType, data []byte) (ServiceDetails, error) {
	switch serviceType {
	case ServiceFuel:
		var d FuelDetails
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case ServiceBattery:
		var d BatteryDetails
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case ServiceMechanic:
		var d MechanicDetails
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case ServiceVehicle:
		var d VehicleDetails
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, fmt.Errorf("unknown service type %q", serviceType)
}

type Location struct {
	Address     string `json:"address"`
	Coordinates string `json:"coordinates,omitempty"`
}

type Payment struct {
	Method PaymentMethod
	Amount float64
	Status PaymentStatus
}

type Order struct {
	ID          string // uuid
	OrderNumber string
	OwnerID     string // uuid, references users(user_id)
	ServiceType ServiceType
	Details     ServiceDetails
	Location    Location
	Payment     Payment
	Status      OrderStatus

	AssignedMechanic string

	// Legacy embedded feedback, superseded by the Rating entity.
	// Kept read-only for older records.
	Rating   int
	Feedback string

	CreatedAt time.Time
}
