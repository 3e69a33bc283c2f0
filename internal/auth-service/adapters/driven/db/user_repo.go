package db

import (
	"context"
	"errors"
	"fmt"

	"fuelgo/internal/auth-service/core/domain/models"
	"fuelgo/internal/auth-service/core/ports"
	"fuelgo/internal/auth-service/core/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type UserRepo struct {
	db *DB
}

func NewUserRepo(db *DB) ports.IUserRepo {
	return &UserRepo{
		db: db,
	}
}

func (ur *UserRepo) Create(ctx context.Context, user models.User) (string, error) {
	tx, err := ur.db.conn.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx) // Safe rollback if not committed

	q := `INSERT INTO users (name, email, password_hash, phone, vehicle_type)
		VALUES ($1, $2, $3, $4, $5) RETURNING user_id`

	id := ""
	row := tx.QueryRow(ctx, q, user.Name, user.Email, user.PasswordHash, user.Phone, user.VehicleType)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", service.ErrEmailRegistered
		}
		return "", fmt.Errorf("failed to insert user: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %v", err)
	}

	return id, nil
}

func (ur *UserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	q := `
		SELECT
			u.user_id,
			u.name,
			u.email,
			u.password_hash,
			COALESCE(u.phone, ''),
			COALESCE(u.vehicle_type, ''),
			u.created_at
		FROM
			users u
		WHERE
			u.email = $1
	`

	var u models.User
	err := ur.db.conn.QueryRow(ctx, q, email).Scan(
		&u.UserID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Phone,
		&u.VehicleType,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, service.ErrUnknownEmail
		}
		return models.User{}, err
	}

	return u, nil
}

func (ur *UserRepo) GetByID(ctx context.Context, userID string) (models.User, error) {
	q := `
		SELECT
			u.user_id,
			u.name,
			u.email,
			u.password_hash,
			COALESCE(u.phone, ''),
			COALESCE(u.vehicle_type, ''),
			u.created_at
		FROM
			users u
		WHERE
			u.user_id = $1
	`

	var u models.User
	err := ur.db.conn.QueryRow(ctx, q, userID).Scan(
		&u.UserID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Phone,
		&u.VehicleType,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, service.ErrUserNotFound
		}
		return models.User{}, err
	}

	return u, nil
}
