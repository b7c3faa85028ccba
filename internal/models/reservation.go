package models

import (
	"time"
)

// Reservation status values. A reservation is created as pending and moves
// to confirmed or cancelled through updates; the dedicated cancel action
// forces cancelled regardless of the current value.
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

// ParseReservationStatus maps a free-form status string onto the closed set
// of reservation statuses. Unrecognized input is rejected, never defaulted.
func ParseReservationStatus(s string) (string, error) {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return s, nil
	}
	return "", ErrInvalidStatus
}

type Reservation struct {
	ID              int        `json:"id"`
	UserID          int        `json:"user_id"`
	EstablishmentID int        `json:"establishment_id"`
	Date            time.Time  `json:"date"`
	PeopleCount     int        `json:"people_count"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// ReservationUpdate carries the fields of a partial update; nil means the
// client did not send the field.
type ReservationUpdate struct {
	Date        *time.Time `json:"date"`
	PeopleCount *int       `json:"people_count"`
	Status      *string    `json:"status"`
}
