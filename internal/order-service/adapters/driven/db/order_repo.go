package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fuelgo/internal/order-service/core/domain/model"
	"fuelgo/internal/order-service/core/myerrors"
	"fuelgo/internal/order-service/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type OrderRepo struct {
	db *DB
}

func NewOrderRepo(db *DB) ports.IOrderRepo {
	return &OrderRepo{
		db: db,
	}
}

func (or *OrderRepo) CreateOrder(ctx context.Context, m model.Order) (model.Order, error) {
	detailsJSON, err := json.Marshal(m.Details)
	if err != nil {
		return model.Order{}, fmt.Errorf("marshal details: %w", err)
	}

	conn := or.db.conn
	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Order{}, err
	}
	defer tx.Rollback(ctx) // Safe rollback if not committed

	q := `INSERT INTO orders(
			order_number,
			owner_id,
			service_type,
			details,
			address,
			coordinates,
			payment_method,
			payment_amount,
			payment_status,
			status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING order_id, created_at`

	row := tx.QueryRow(ctx, q,
		m.OrderNumber,
		m.OwnerID,
		m.ServiceType,
		detailsJSON,
		m.Location.Address,
		m.Location.Coordinates,
		m.Payment.Method,
		m.Payment.Amount,
		m.Payment.Status,
		m.Status,
	)
	if err := row.Scan(&m.ID, &m.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.Order{}, fmt.Errorf("%w: %s", myerrors.ErrOrderNumberTaken, m.OrderNumber)
		}
		return model.Order{}, err
	}

	return m, tx.Commit(ctx)
}

const orderColumns = `
		o.order_id,
		o.order_number,
		o.owner_id,
		o.service_type,
		o.details,
		o.address,
		COALESCE(o.coordinates, ''),
		o.payment_method,
		o.payment_amount,
		o.payment_status,
		o.status,
		COALESCE(o.assigned_mechanic, ''),
		COALESCE(o.rating, 0),
		COALESCE(o.feedback, ''),
		o.created_at`

func (or *OrderRepo) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders o WHERE o.order_id = $1`

	row := or.db.conn.QueryRow(ctx, q, orderID)
	m, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, fmt.Errorf("%w: order %s", myerrors.ErrNotFound, orderID)
		}
		return model.Order{}, err
	}
	return m, nil
}

func (or *OrderRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Order, error) {
	q := `SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.owner_id = $1
		ORDER BY o.created_at DESC`

	rows, err := or.db.conn.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, m)
	}
	return orders, rows.Err()
}

func (or *OrderRepo) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus, assignedMechanic string) error {
	q := `
	UPDATE orders
	SET
		status = $2,
		assigned_mechanic = COALESCE(NULLIF($3, ''), assigned_mechanic)
	WHERE order_id = $1`

	cmd, err := or.db.conn.Exec(ctx, q, orderID, status, assignedMechanic)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: order %s", myerrors.ErrNotFound, orderID)
	}
	return nil
}

func (or *OrderRepo) CountCreatedToday(ctx context.Context) (int64, error) {
	q := `
	SELECT
		COUNT(*)
	FROM
		orders
	WHERE
		created_at::date = current_date
	`
	row := or.db.conn.QueryRow(ctx, q)
	var count int64 = 0
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var (
		m           model.Order
		detailsJSON []byte
	)

	if err := row.Scan(
		&m.ID,
		&m.OrderNumber,
		&m.OwnerID,
		&m.ServiceType,
		&detailsJSON,
		&m.Location.Address,
		&m.Location.Coordinates,
		&m.Payment.Method,
		&m.Payment.Amount,
		&m.Payment.Status,
		&m.Status,
		&m.AssignedMechanic,
		&m.Rating,
		&m.Feedback,
		&m.CreatedAt,
	); err != nil {
		return model.Order{}, err
	}

	details, err := model.UnmarshalDetails(m.ServiceType, detailsJSON)
	if err != nil {
		return model.Order{}, fmt.Errorf("unmarshal details: %w", err)
	}
	m.Details = details

	return m, nil
}
