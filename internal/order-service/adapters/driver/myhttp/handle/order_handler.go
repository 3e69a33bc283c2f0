package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fuelgo/internal/mylogger"
	"fuelgo/internal/order-service/core/domain/dto"
	"fuelgo/internal/order-service/core/ports"
)

type OrderHandler struct {
	orderService ports.IOrderService
	mylog        mylogger.Logger
}

func NewOrderHandler(orderService ports.IOrderService, mylog mylogger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		mylog:        mylog,
	}
}

func (oh *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.OrderRequestDto

		mylog := oh.mylog.Action("CreateOrder")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Error("Failed to parse order request", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ownerID := r.Header.Get("X-UserId")
		idempotencyKey := r.Header.Get("Idempotency-Key")

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		res, err := oh.orderService.CreateOrder(ctx, ownerID, idempotencyKey, req)
		if err != nil {
			jsonError(w, statusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusCreated, res)
	}
}

func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := r.Header.Get("X-UserId")

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		res, err := oh.orderService.ListOrders(ctx, ownerID)
		if err != nil {
			jsonError(w, statusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
	}
}

func (oh *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := r.PathValue("order_id")
		callerID := r.Header.Get("X-UserId")

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		res, err := oh.orderService.GetOrder(ctx, callerID, orderID)
		if err != nil {
			jsonError(w, statusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
	}
}

func (oh *OrderHandler) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := r.PathValue("order_id")
		callerID := r.Header.Get("X-UserId")

		var req dto.StatusUpdateRequestDto

		mylog := oh.mylog.Action("UpdateStatus")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Error("Failed to parse status update", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		res, err := oh.orderService.SetStatus(ctx, callerID, orderID, req)
		if err != nil {
			jsonError(w, statusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{
			"message":   "FUELGO order service is running!",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
