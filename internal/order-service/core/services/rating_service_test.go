package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"fuelgo/internal/order-service/core/domain/dto"
	"fuelgo/internal/order-service/core/domain/model"
	"fuelgo/internal/order-service/core/myerrors"
)

// Mock IRatingRepo
type mockRatingRepo struct {
	mu      sync.Mutex
	ratings []model.Rating
	seq     int
}

func (m *mockRatingRepo) CreateRating(ctx context.Context, r model.Rating) (model.Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	r.ID = fmt.Sprintf("rating-%d", m.seq)
	r.CreatedAt = time.Now()
	m.ratings = append(m.ratings, r)
	return r, nil
}

func (m *mockRatingRepo) ListByUser(ctx context.Context, userID string) ([]model.Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := []model.Rating{}
	for i := len(m.ratings) - 1; i >= 0; i-- {
		if m.ratings[i].UserID == userID {
			res = append(res, m.ratings[i])
		}
	}
	return res, nil
}

// creates an order for ownerID and walks it to the requested status
func seedOrder(t *testing.T, repo *mockOrderRepo, ownerID string, status model.OrderStatus) model.Order {
	t.Helper()

	created, err := repo.CreateOrder(context.Background(), model.Order{
		OrderNumber: "ORD_20250101_001",
		OwnerID:     ownerID,
		ServiceType: model.ServiceFuel,
		Details:     model.FuelDetails{Liters: 10},
		Location:    model.Location{Address: "Moi Avenue, Nairobi"},
		Payment: model.Payment{
			Method: model.PaymentMpesa,
			Amount: 1850,
			Status: model.PaymentPending,
		},
		Status: status,
	})
	if err != nil {
		t.Fatalf("seeding order: %v", err)
	}
	return created
}

func TestCreateRating_CompletedOwnOrder(t *testing.T) {
	orderRepo := newMockOrderRepo()
	ratingRepo := &mockRatingRepo{}
	svc := NewRatingService(newTestLogger(t), ratingRepo, orderRepo)

	order := seedOrder(t, orderRepo, "user-a", model.StatusCompleted)

	res, err := svc.CreateRating(context.Background(), "user-a", dto.RatingRequestDto{
		OrderID:    order.ID,
		RatingType: "delivery",
		Rating:     5,
		Comment:    "fast and friendly",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.OrderID != order.ID {
		t.Errorf("orderId = %q, want %q", res.OrderID, order.ID)
	}
	if res.UserID != "user-a" {
		t.Errorf("userId = %q, want user-a", res.UserID)
	}
	if res.Rating != 5 || res.RatingType != "delivery" {
		t.Errorf("unexpected rating payload: %+v", res)
	}
	if res.ID == "" {
		t.Error("expected a rating id")
	}
}

func TestCreateRating_MissingOrder(t *testing.T) {
	svc := NewRatingService(newTestLogger(t), &mockRatingRepo{}, newMockOrderRepo())

	_, err := svc.CreateRating(context.Background(), "user-a", dto.RatingRequestDto{
		OrderID:    "no-such-order",
		RatingType: "delivery",
		Rating:     4,
	})
	if !errors.Is(err, myerrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestCreateRating_ForeignOrder(t *testing.T) {
	orderRepo := newMockOrderRepo()
	svc := NewRatingService(newTestLogger(t), &mockRatingRepo{}, orderRepo)

	order := seedOrder(t, orderRepo, "user-a", model.StatusCompleted)

	_, err := svc.CreateRating(context.Background(), "user-b", dto.RatingRequestDto{
		OrderID:    order.ID,
		RatingType: "mechanic",
		Rating:     3,
	})
	if !errors.Is(err, myerrors.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got: %v", err)
	}
}

func TestCreateRating_OrderNotCompleted(t *testing.T) {
	orderRepo := newMockOrderRepo()
	svc := NewRatingService(newTestLogger(t), &mockRatingRepo{}, orderRepo)

	for _, status := range []model.OrderStatus{
		model.StatusPending, model.StatusConfirmed, model.StatusInProgress, model.StatusCancelled,
	} {
		order := seedOrder(t, orderRepo, "user-a", status)

		_, err := svc.CreateRating(context.Background(), "user-a", dto.RatingRequestDto{
			OrderID:    order.ID,
			RatingType: "delivery",
			Rating:     4,
		})
		if !errors.Is(err, myerrors.ErrValidation) {
			t.Errorf("status %s: expected ErrValidation, got: %v", status, err)
		}
	}
}

func TestCreateRating_Validation(t *testing.T) {
	orderRepo := newMockOrderRepo()
	svc := NewRatingService(newTestLogger(t), &mockRatingRepo{}, orderRepo)

	order := seedOrder(t, orderRepo, "user-a", model.StatusCompleted)

	cases := []struct {
		name string
		req  dto.RatingRequestDto
	}{
		{
			name: "missing orderId",
			req:  dto.RatingRequestDto{RatingType: "delivery", Rating: 4},
		},
		{
			name: "unknown rating type",
			req:  dto.RatingRequestDto{OrderID: order.ID, RatingType: "support", Rating: 4},
		},
		{
			name: "rating below range",
			req:  dto.RatingRequestDto{OrderID: order.ID, RatingType: "delivery", Rating: 0},
		},
		{
			name: "rating above range",
			req:  dto.RatingRequestDto{OrderID: order.ID, RatingType: "delivery", Rating: 6},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.CreateRating(context.Background(), "user-a", c.req)
			if !errors.Is(err, myerrors.ErrValidation) {
				t.Errorf("expected ErrValidation, got: %v", err)
			}
		})
	}
}

func TestListRatings(t *testing.T) {
	orderRepo := newMockOrderRepo()
	ratingRepo := &mockRatingRepo{}
	svc := NewRatingService(newTestLogger(t), ratingRepo, orderRepo)

	ctx := context.Background()
	orderA := seedOrder(t, orderRepo, "user-a", model.StatusCompleted)
	orderB := seedOrder(t, orderRepo, "user-b", model.StatusCompleted)

	if _, err := svc.CreateRating(ctx, "user-a", dto.RatingRequestDto{
		OrderID: orderA.ID, RatingType: "delivery", Rating: 5,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateRating(ctx, "user-b", dto.RatingRequestDto{
		OrderID: orderB.ID, RatingType: "mechanic", Rating: 2,
	}); err != nil {
		t.Fatal(err)
	}

	ratings, err := svc.ListRatings(ctx, "user-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ratings) != 1 {
		t.Fatalf("expected 1 rating for user-a, got %d", len(ratings))
	}
	if ratings[0].UserID != "user-a" || ratings[0].OrderID != orderA.ID {
		t.Errorf("unexpected rating: %+v", ratings[0])
	}
}
