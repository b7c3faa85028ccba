package models

import (
	"time"
)

// Ratings are stored as their string form, "1" through "5".
const (
	RatingOne   = "1"
	RatingTwo   = "2"
	RatingThree = "3"
	RatingFour  = "4"
	RatingFive  = "5"
)

// ParseRating validates a rating string against the five allowed values.
func ParseRating(s string) (string, error) {
	switch s {
	case RatingOne, RatingTwo, RatingThree, RatingFour, RatingFive:
		return s, nil
	}
	return "", ErrInvalidRating
}

// Review is keyed by the (user, establishment) pair; a user rates an
// establishment at most once.
type Review struct {
	UserID          int       `json:"user_id"`
	EstablishmentID int       `json:"establishment_id"`
	Rating          string    `json:"rating"`
	Comment         *string   `json:"comment,omitempty"`
	Img             *string   `json:"img,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReviewUpdate struct {
	Rating  *string `json:"rating"`
	Comment *string `json:"comment"`
	Img     *string `json:"img"`
}
