package ports

import (
	"context"

	"fuelgo/internal/auth-service/core/domain/models"
)

type IUserRepo interface {
	Create(ctx context.Context, user models.User) (string, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, userID string) (models.User, error)
}
