package models

import (
	"errors"
)

var (
	ErrUserNotFound          = errors.New("models: user not found")
	ErrEstablishmentNotFound = errors.New("models: establishment not found")
	ErrMenuNotFound          = errors.New("models: menu not found")
	ErrDishNotFound          = errors.New("models: dish not found")
	ErrCategoryNotFound      = errors.New("models: category not found")
	ErrAllergenNotFound      = errors.New("models: allergen not found")
	ErrFeatureNotFound       = errors.New("models: accessibility feature not found")
	ErrReservationNotFound   = errors.New("models: reservation not found")
	ErrReviewNotFound        = errors.New("models: review not found")
	ErrAssociationNotFound   = errors.New("models: association not found")

	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")

	ErrAlreadyReviewed       = errors.New("user has already reviewed this establishment")
	ErrDuplicateCategoryName = errors.New("category with this name already exists")
	ErrDuplicateFeatureName  = errors.New("accessibility feature with this name already exists for this establishment")

	ErrInvalidStatus     = errors.New("unknown reservation status")
	ErrInvalidRating     = errors.New("invalid rating value")
	ErrInvalidRole       = errors.New("invalid role value")
	ErrInvalidUserStatus = errors.New("invalid user status value")
	ErrInvalidPrice      = errors.New("price must be greater than 0")
)
