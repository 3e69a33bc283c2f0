package services

import (
	"context"
	"fmt"

	"fuelgo/internal/mylogger"
	"fuelgo/internal/order-service/core/domain/dto"
	"fuelgo/internal/order-service/core/domain/model"
	"fuelgo/internal/order-service/core/myerrors"
	"fuelgo/internal/order-service/core/ports"
)

const (
	MinRating = 1
	MaxRating = 5
)

type RatingService struct {
	mylog      mylogger.Logger
	ratingRepo ports.IRatingRepo
	orderRepo  ports.IOrderRepo
}

func NewRatingService(
	log mylogger.Logger,
	ratingRepo ports.IRatingRepo,
	orderRepo ports.IOrderRepo,
) ports.IRatingService {
	return &RatingService{
		mylog:      log,
		ratingRepo: ratingRepo,
		orderRepo:  orderRepo,
	}
}

func (rs *RatingService) CreateRating(ctx context.Context, userID string, req dto.RatingRequestDto) (dto.RatingResponseDto, error) {
	log := rs.mylog.Action("CreateRating")

	if err := validateRatingRequest(req); err != nil {
		return dto.RatingResponseDto{}, err
	}

	repoCtx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	order, err := rs.orderRepo.FindByID(repoCtx, req.OrderID)
	if err != nil {
		return dto.RatingResponseDto{}, err
	}

	if order.OwnerID != userID {
		log.Warn("rating attempt on foreign order", "order_id", req.OrderID, "user_id", userID)
		return dto.RatingResponseDto{}, fmt.Errorf("%w: order belongs to another user", myerrors.ErrForbidden)
	}

	if order.Status != model.StatusCompleted {
		return dto.RatingResponseDto{}, fmt.Errorf("%w: order is not completed yet", myerrors.ErrValidation)
	}

	m := model.Rating{
		OrderID:    req.OrderID,
		UserID:     userID,
		RatingType: model.RatingType(req.RatingType),
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	repoCtx, cancel = context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	created, err := rs.ratingRepo.CreateRating(repoCtx, m)
	if err != nil {
		log.Error("cannot save rating in db", err)
		return dto.RatingResponseDto{}, err
	}

	log.Info("rating created", "rating_id", created.ID, "order_id", created.OrderID, "rating", created.Rating)
	return toRatingResponse(created), nil
}

func (rs *RatingService) ListRatings(ctx context.Context, userID string) ([]dto.RatingResponseDto, error) {
	log := rs.mylog.Action("ListRatings")

	repoCtx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	ratings, err := rs.ratingRepo.ListByUser(repoCtx, userID)
	if err != nil {
		log.Error("cannot list ratings", err, "user_id", userID)
		return nil, err
	}

	res := make([]dto.RatingResponseDto, 0, len(ratings))
	for _, m := range ratings {
		res = append(res, toRatingResponse(m))
	}
	return res, nil
}

func validateRatingRequest(req dto.RatingRequestDto) error {
	if req.OrderID == "" {
		return fmt.Errorf("%w: orderId is required", myerrors.ErrValidation)
	}

	switch model.RatingType(req.RatingType) {
	case model.RatingMechanic, model.RatingDelivery:
	default:
		return fmt.Errorf("%w: unknown rating type %q", myerrors.ErrValidation, req.RatingType)
	}

	if req.Rating < MinRating || req.Rating > MaxRating {
		return fmt.Errorf("%w: rating must be in [%d, %d]", myerrors.ErrValidation, MinRating, MaxRating)
	}
	return nil
}
