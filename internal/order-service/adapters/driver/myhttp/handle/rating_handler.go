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

type RatingHandler struct {
	ratingService ports.IRatingService
	mylog         mylogger.Logger
}

func NewRatingHandler(ratingService ports.IRatingService, mylog mylogger.Logger) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		mylog:         mylog,
	}
}

func (rh *RatingHandler) CreateRating() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.RatingRequestDto

		mylog := rh.mylog.Action("CreateRating")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Error("Failed to parse rating request", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		userID := r.Header.Get("X-UserId")

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		res, err := rh.ratingService.CreateRating(ctx, userID, req)
		if err != nil {
			jsonError(w, statusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusCreated, res)
	}
}

func (rh *RatingHandler) ListRatings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")

		ctx, cancel := context.WithTimeout(r.Context(), WaitTime*time.Second)
		defer cancel()

		res, err := rh.ratingService.ListRatings(ctx, userID)
		if err != nil {
			jsonError(w, statusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
	}
}
