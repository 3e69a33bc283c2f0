package services

import "fuelgo/internal/order-service/core/domain/model"

// Workflow graph. completed and cancelled are terminal.
//
//	pending --> confirmed --> in-progress --> completed
//	pending --> cancelled
//	confirmed --> cancelled
var statusTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.StatusPending:    {model.StatusConfirmed, model.StatusCancelled},
	model.StatusConfirmed:  {model.StatusInProgress, model.StatusCancelled},
	model.StatusInProgress: {model.StatusCompleted},
	model.StatusCompleted:  {},
	model.StatusCancelled:  {},
}

func IsValidStatus(s model.OrderStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

func CanTransition(from, to model.OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
