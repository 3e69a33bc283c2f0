package services

import (
	"testing"

	"fuelgo/internal/order-service/core/domain/model"
)

func TestCanTransition_Workflow(t *testing.T) {
	allowed := []struct {
		from, to model.OrderStatus
	}{
		{model.StatusPending, model.StatusConfirmed},
		{model.StatusPending, model.StatusCancelled},
		{model.StatusConfirmed, model.StatusInProgress},
		{model.StatusConfirmed, model.StatusCancelled},
		{model.StatusInProgress, model.StatusCompleted},
	}

	for _, c := range allowed {
		if !CanTransition(c.from, c.to) {
			t.Errorf("expected %s -> %s to be allowed", c.from, c.to)
		}
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	all := []model.OrderStatus{
		model.StatusPending,
		model.StatusConfirmed,
		model.StatusInProgress,
		model.StatusCompleted,
		model.StatusCancelled,
	}

	for _, terminal := range []model.OrderStatus{model.StatusCompleted, model.StatusCancelled} {
		for _, to := range all {
			if CanTransition(terminal, to) {
				t.Errorf("terminal state %s must not transition to %s", terminal, to)
			}
		}
	}
}

func TestCanTransition_Illegal(t *testing.T) {
	rejected := []struct {
		from, to model.OrderStatus
	}{
		{model.StatusPending, model.StatusInProgress},
		{model.StatusPending, model.StatusCompleted},
		{model.StatusConfirmed, model.StatusCompleted},
		{model.StatusInProgress, model.StatusPending},
		{model.StatusInProgress, model.StatusCancelled},
	}

	for _, c := range rejected {
		if CanTransition(c.from, c.to) {
			t.Errorf("expected %s -> %s to be rejected", c.from, c.to)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []model.OrderStatus{
		model.StatusPending, model.StatusConfirmed, model.StatusInProgress,
		model.StatusCompleted, model.StatusCancelled,
	} {
		if !IsValidStatus(s) {
			t.Errorf("expected %q to be a valid status", s)
		}
	}

	if IsValidStatus("shipped") {
		t.Error("expected \"shipped\" to be rejected")
	}
}
