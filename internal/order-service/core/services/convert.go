package services

import (
	"time"

	"fuelgo/internal/order-service/core/domain/dto"
	"fuelgo/internal/order-service/core/domain/model"
)

func toOrderResponse(m model.Order) dto.OrderResponseDto {
	return dto.OrderResponseDto{
		ID:          m.ID,
		OrderNumber: m.OrderNumber,
		UserID:      m.OwnerID,
		ServiceType: string(m.ServiceType),
		Details:     toDetailsDto(m.Details),
		Location: dto.LocationDto{
			Address:     m.Location.Address,
			Coordinates: m.Location.Coordinates,
		},
		Payment: dto.PaymentDto{
			Method: string(m.Payment.Method),
			Amount: m.Payment.Amount,
			Status: string(m.Payment.Status),
		},
		Status:           string(m.Status),
		AssignedMechanic: m.AssignedMechanic,
		Rating:           m.Rating,
		Feedback:         m.Feedback,
		CreatedAt:        m.CreatedAt.Format(time.RFC3339),
	}
}

func toDetailsDto(details model.ServiceDetails) dto.OrderDetailsDto {
	switch d := details.(type) {
	case model.FuelDetails:
		return dto.OrderDetailsDto{Liters: d.Liters}
	case model.BatteryDetails:
		return dto.OrderDetailsDto{
			BatteryType:  d.BatteryType,
			VehicleBrand: d.VehicleBrand,
			VehicleModel: d.VehicleModel,
		}
	case model.MechanicDetails:
		return dto.OrderDetailsDto{
			VehicleBrand:       d.VehicleBrand,
			VehicleModel:       d.VehicleModel,
			ProblemDescription: d.ProblemDescription,
		}
	case model.VehicleDetails:
		return dto.OrderDetailsDto{RequestedVehicle: d.RequestedVehicle}
	}
	return dto.OrderDetailsDto{}
}

func toRatingResponse(m model.Rating) dto.RatingResponseDto {
	return dto.RatingResponseDto{
		ID:         m.ID,
		OrderID:    m.OrderID,
		UserID:     m.UserID,
		RatingType: string(m.RatingType),
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}
