package model

import "time"

type RatingType string

const (
	RatingMechanic RatingType = "mechanic"
	RatingDelivery RatingType = "delivery"
)

type Rating struct {
	ID         string // uuid
	OrderID    string // uuid, references orders(order_id)
	UserID     string // uuid, always the order owner
	RatingType RatingType
	Rating     int // [1, 5]
	Comment    string
	CreatedAt  time.Time
}
