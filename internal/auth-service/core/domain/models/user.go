package models

import "time"

type User struct {
	UserID       string // uuid
	Name         string
	Email        string
	PasswordHash []byte
	Phone        string
	VehicleType  string
	CreatedAt    time.Time
}
