package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fuelgo/internal/mylogger"
	"fuelgo/internal/order-service/core/domain/dto"
	"fuelgo/internal/order-service/core/domain/model"
	"fuelgo/internal/order-service/core/myerrors"
	"fuelgo/internal/order-service/core/ports"

	messagebrokerdto "fuelgo/internal/order-service/core/domain/message_broker_dto"

	"github.com/google/uuid"
)

const (
	repoTimeout = 15 * time.Second

	// attempts at minting an unused order number before giving up
	orderNumberAttempts = 3
)

type OrderService struct {
	mylog       mylogger.Logger
	orderRepo   ports.IOrderRepo
	orderBroker ports.IOrderBroker
	cache       ports.ICacheRepo
}

func NewOrderService(
	log mylogger.Logger,
	orderRepo ports.IOrderRepo,
	orderBroker ports.IOrderBroker,
	cache ports.ICacheRepo,
) ports.IOrderService {
	return &OrderService{
		mylog:       log,
		orderRepo:   orderRepo,
		orderBroker: orderBroker,
		cache:       cache,
	}
}

func (os *OrderService) CreateOrder(ctx context.Context, ownerID, idempotencyKey string, req dto.OrderRequestDto) (dto.OrderResponseDto, error) {
	log := os.mylog.Action("CreateOrder")

	details, err := validateOrderRequest(req)
	if err != nil {
		return dto.OrderResponseDto{}, err
	}

	idemKey := ""
	if idempotencyKey != "" && os.cache != nil {
		idemKey = fmt.Sprintf("order:%s:%s", ownerID, idempotencyKey)
		ok, err := os.cache.SetIdempotency(ctx, idemKey)
		if err != nil {
			log.Error("idempotency check failed", err)
			return dto.OrderResponseDto{}, fmt.Errorf("idempotency check: %w", err)
		}
		if !ok {
			log.Warn("duplicate order submission dropped", "owner_id", ownerID)
			return dto.OrderResponseDto{}, myerrors.ErrDuplicateRequest
		}
	}

	amount := Price(details)

	created, err := os.insertWithFreshNumber(ctx, log, ownerID, details, req, amount)
	if err != nil {
		// the order never became durable, the key must not block a retry
		os.releaseIdempotency(ctx, log, idemKey)
		return dto.OrderResponseDto{}, err
	}

	createdMsg := messagebrokerdto.OrderCreated{
		OrderID:       created.ID,
		OrderNumber:   created.OrderNumber,
		OwnerID:       created.OwnerID,
		ServiceType:   string(created.ServiceType),
		Amount:        created.Payment.Amount,
		PaymentMethod: string(created.Payment.Method),
		Address:       created.Location.Address,
		CorrelationID: uuid.NewString(),
	}
	if err := os.orderBroker.PublishOrderCreated(ctx, createdMsg); err != nil {
		// the order is already durable, a lost event must not fail the request
		log.Error("failed to publish order.created", err, "order_id", created.ID)
	}

	log.Info("successfully created an order", "order_id", created.ID)
	return toOrderResponse(created), nil
}

// insertWithFreshNumber mints a daily order number and inserts the order,
// retrying when a concurrent create claimed the same number first.
func (os *OrderService) insertWithFreshNumber(
	ctx context.Context,
	log mylogger.Logger,
	ownerID string,
	details model.ServiceDetails,
	req dto.OrderRequestDto,
	amount float64,
) (model.Order, error) {
	var lastErr error

	for attempt := 1; attempt <= orderNumberAttempts; attempt++ {
		repoCtx, cancel := context.WithTimeout(ctx, repoTimeout)
		numberOfOrders, err := os.orderRepo.CountCreatedToday(repoCtx)
		cancel()
		if err != nil {
			log.Error("cannot get number of orders", err)
			return model.Order{}, err
		}

		now := time.Now()
		orderNumber := fmt.Sprintf("ORD_%d%02d%02d_%03d", now.Year(), now.Month(), now.Day(), numberOfOrders+1)

		m := model.Order{
			OrderNumber: orderNumber,
			OwnerID:     ownerID,
			ServiceType: details.Service(),
			Details:     details,
			Location: model.Location{
				Address:     strings.TrimSpace(req.Location.Address),
				Coordinates: req.Location.Coordinates,
			},
			Payment: model.Payment{
				Method: model.PaymentMethod(req.PaymentMethod),
				Amount: amount,
				Status: model.PaymentPending,
			},
			Status: model.StatusPending,
		}

		log.Info("creating an order",
			"order_number", orderNumber,
			"owner_id", ownerID,
			"service_type", m.ServiceType,
			"amount", amount,
		)

		repoCtx, cancel = context.WithTimeout(ctx, repoTimeout)
		created, err := os.orderRepo.CreateOrder(repoCtx, m)
		cancel()
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, myerrors.ErrOrderNumberTaken) {
			log.Error("cannot save order in db", err)
			return model.Order{}, err
		}

		log.Warn("order number collision, retrying", "order_number", orderNumber, "attempt", attempt)
		lastErr = err
	}

	return model.Order{}, lastErr
}

func (os *OrderService) releaseIdempotency(ctx context.Context, log mylogger.Logger, key string) {
	if key == "" || os.cache == nil {
		return
	}
	if err := os.cache.ReleaseIdempotency(ctx, key); err != nil {
		log.Error("failed to release idempotency key", err, "key", key)
	}
}

func (os *OrderService) ListOrders(ctx context.Context, ownerID string) ([]dto.OrderResponseDto, error) {
	log := os.mylog.Action("ListOrders")

	repoCtx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	orders, err := os.orderRepo.ListByOwner(repoCtx, ownerID)
	if err != nil {
		log.Error("cannot list orders", err, "owner_id", ownerID)
		return nil, err
	}

	res := make([]dto.OrderResponseDto, 0, len(orders))
	for _, m := range orders {
		res = append(res, toOrderResponse(m))
	}
	return res, nil
}

func (os *OrderService) GetOrder(ctx context.Context, callerID, orderID string) (dto.OrderResponseDto, error) {
	log := os.mylog.Action("GetOrder")

	repoCtx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	m, err := os.orderRepo.FindByID(repoCtx, orderID)
	if err != nil {
		return dto.OrderResponseDto{}, err
	}

	if m.OwnerID != callerID {
		log.Warn("caller is not the order owner", "order_id", orderID, "caller_id", callerID)
		return dto.OrderResponseDto{}, fmt.Errorf("%w: order belongs to another user", myerrors.ErrForbidden)
	}

	return toOrderResponse(m), nil
}

func (os *OrderService) SetStatus(ctx context.Context, callerID, orderID string, req dto.StatusUpdateRequestDto) (dto.OrderResponseDto, error) {
	log := os.mylog.Action("SetStatus")

	newStatus := model.OrderStatus(req.Status)
	if !IsValidStatus(newStatus) {
		return dto.OrderResponseDto{}, fmt.Errorf("%w: unknown status %q", myerrors.ErrValidation, req.Status)
	}

	repoCtx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	m, err := os.orderRepo.FindByID(repoCtx, orderID)
	if err != nil {
		return dto.OrderResponseDto{}, err
	}

	if m.OwnerID != callerID {
		log.Warn("status update on a foreign order rejected", "order_id", orderID, "caller_id", callerID)
		return dto.OrderResponseDto{}, fmt.Errorf("%w: order belongs to another user", myerrors.ErrForbidden)
	}

	if !CanTransition(m.Status, newStatus) {
		log.Warn("illegal status transition rejected",
			"order_id", orderID, "from", m.Status, "to", newStatus)
		return dto.OrderResponseDto{}, fmt.Errorf("%w: %s -> %s", myerrors.ErrInvalidTransition, m.Status, newStatus)
	}

	repoCtx, cancel = context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	if err := os.orderRepo.UpdateStatus(repoCtx, orderID, newStatus, req.AssignedMechanic); err != nil {
		log.Error("cannot update order status", err, "order_id", orderID)
		return dto.OrderResponseDto{}, err
	}

	m.Status = newStatus
	if req.AssignedMechanic != "" {
		m.AssignedMechanic = req.AssignedMechanic
	}

	statusMsg := messagebrokerdto.OrderStatus{
		OrderID:          m.ID,
		OrderNumber:      m.OrderNumber,
		OwnerID:          m.OwnerID,
		Status:           string(newStatus),
		AssignedMechanic: m.AssignedMechanic,
		Timestamp:        time.Now().Format(time.RFC3339),
		CorrelationID:    uuid.NewString(),
	}
	if err := os.orderBroker.PublishOrderStatus(ctx, statusMsg); err != nil {
		log.Error("failed to publish order.status", err, "order_id", m.ID)
	}

	log.Info("order status updated", "order_id", m.ID, "status", newStatus)
	return toOrderResponse(m), nil
}

func validateOrderRequest(req dto.OrderRequestDto) (model.ServiceDetails, error) {
	if strings.TrimSpace(req.Location.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", myerrors.ErrValidation)
	}

	switch model.PaymentMethod(req.PaymentMethod) {
	case model.PaymentMpesa, model.PaymentPaypal:
	default:
		return nil, fmt.Errorf("%w: unknown payment method %q", myerrors.ErrValidation, req.PaymentMethod)
	}

	// map the loose details payload onto the variant for the requested
	// service, fields of other variants are ignored even if present
	switch model.ServiceType(req.ServiceType) {
	case model.ServiceFuel:
		if req.Details.Liters <= 0 {
			return nil, fmt.Errorf("%w: liters must be a positive number", myerrors.ErrValidation)
		}
		return model.FuelDetails{Liters: req.Details.Liters}, nil
	case model.ServiceBattery:
		return model.BatteryDetails{
			BatteryType:  req.Details.BatteryType,
			VehicleBrand: req.Details.VehicleBrand,
			VehicleModel: req.Details.VehicleModel,
		}, nil
	case model.ServiceMechanic:
		return model.MechanicDetails{
			VehicleBrand:       req.Details.VehicleBrand,
			VehicleModel:       req.Details.VehicleModel,
			ProblemDescription: req.Details.ProblemDescription,
		}, nil
	case model.ServiceVehicle:
		return model.VehicleDetails{RequestedVehicle: req.Details.RequestedVehicle}, nil
	}
	return nil, fmt.Errorf("%w: unknown service type %q", myerrors.ErrValidation, req.ServiceType)
}
