package handle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fuelgo/internal/mylogger"
	"fuelgo/internal/order-service/core/domain/dto"
)

type mockRatingService struct {
	createCalls int
}

func (m *mockRatingService) CreateRating(ctx context.Context, userID string, req dto.RatingRequestDto) (dto.RatingResponseDto, error) {
	m.createCalls++
	return dto.RatingResponseDto{
		ID:         "rating-1",
		OrderID:    req.OrderID,
		UserID:     userID,
		RatingType: req.RatingType,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}, nil
}

func (m *mockRatingService) ListRatings(ctx context.Context, userID string) ([]dto.RatingResponseDto, error) {
	return []dto.RatingResponseDto{}, nil
}

func newRatingHandler(t *testing.T) (*RatingHandler, *mockRatingService) {
	t.Helper()

	log, err := mylogger.New(mylogger.LevelError)
	if err != nil {
		t.Fatalf("creating logger: %v", err)
	}

	svc := &mockRatingService{}
	return NewRatingHandler(svc, log), svc
}

func TestCreateRating_NonIntegerRating(t *testing.T) {
	handler, svc := newRatingHandler(t)

	body := `{"orderId":"order-1","ratingType":"delivery","rating":4.5}`
	req := httptest.NewRequest(http.MethodPost, "/ratings", strings.NewReader(body))
	req.Header.Set("X-UserId", "user-a")
	w := httptest.NewRecorder()

	handler.CreateRating()(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if svc.createCalls != 0 {
		t.Errorf("service was called %d times for a malformed body", svc.createCalls)
	}
}

func TestCreateRating_IntegerRating(t *testing.T) {
	handler, svc := newRatingHandler(t)

	body := `{"orderId":"order-1","ratingType":"delivery","rating":4}`
	req := httptest.NewRequest(http.MethodPost, "/ratings", strings.NewReader(body))
	req.Header.Set("X-UserId", "user-a")
	w := httptest.NewRecorder()

	handler.CreateRating()(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if svc.createCalls != 1 {
		t.Errorf("service calls = %d, want 1", svc.createCalls)
	}
}
