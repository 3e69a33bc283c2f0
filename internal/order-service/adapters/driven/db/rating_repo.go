package db

import (
	"context"

	"fuelgo/internal/order-service/core/domain/model"
	"fuelgo/internal/order-service/core/ports"

	"github.com/jackc/pgx/v5"
)

type RatingRepo struct {
	db *DB
}

func NewRatingRepo(db *DB) ports.IRatingRepo {
	return &RatingRepo{
		db: db,
	}
}

func (rr *RatingRepo) CreateRating(ctx context.Context, m model.Rating) (model.Rating, error) {
	conn := rr.db.conn
	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Rating{}, err
	}
	defer tx.Rollback(ctx) // Safe rollback if not committed

	q := `INSERT INTO ratings(
			order_id,
			user_id,
			rating_type,
			rating,
			comment
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING rating_id, created_at`

	row := tx.QueryRow(ctx, q,
		m.OrderID,
		m.UserID,
		m.RatingType,
		m.Rating,
		m.Comment,
	)
	if err := row.Scan(&m.ID, &m.CreatedAt); err != nil {
		return model.Rating{}, err
	}

	return m, tx.Commit(ctx)
}

func (rr *RatingRepo) ListByUser(ctx context.Context, userID string) ([]model.Rating, error) {
	q := `
	SELECT
		r.rating_id,
		r.order_id,
		r.user_id,
		r.rating_type,
		r.rating,
		COALESCE(r.comment, ''),
		r.created_at
	FROM
		ratings r
	WHERE
		r.user_id = $1
	ORDER BY r.created_at DESC`

	rows, err := rr.db.conn.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []model.Rating{}
	for rows.Next() {
		var m model.Rating
		if err := rows.Scan(
			&m.ID,
			&m.OrderID,
			&m.UserID,
			&m.RatingType,
			&m.Rating,
			&m.Comment,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		ratings = append(ratings, m)
	}
	return ratings, rows.Err()
}
