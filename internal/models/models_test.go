package models

import (
	"errors"
	"testing"
)

func TestParseReservationStatus(t *testing.T) {
	for _, s := range []string{ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled} {
		got, err := ParseReservationStatus(s)
		if err != nil {
			t.Errorf("ParseReservationStatus(%q): unexpected error %v", s, err)
		}
		if got != s {
			t.Errorf("ParseReservationStatus(%q) = %q", s, got)
		}
	}

	for _, s := range []string{"", "PENDING", "done", "canceled", "pending "} {
		if _, err := ParseReservationStatus(s); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("ParseReservationStatus(%q): expected ErrInvalidStatus, got %v", s, err)
		}
	}
}

func TestParseRating(t *testing.T) {
	for _, s := range []string{"1", "2", "3", "4", "5"} {
		got, err := ParseRating(s)
		if err != nil {
			t.Errorf("ParseRating(%q): unexpected error %v", s, err)
		}
		if got != s {
			t.Errorf("ParseRating(%q) = %q", s, got)
		}
	}

	for _, s := range []string{"0", "6", "", "10", "five", "3.5"} {
		if _, err := ParseRating(s); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("ParseRating(%q): expected ErrInvalidRating, got %v", s, err)
		}
	}
}

func TestParseRole(t *testing.T) {
	if _, err := ParseRole(RoleAdmin); err != nil {
		t.Errorf("ParseRole(admin): unexpected error %v", err)
	}
	if _, err := ParseRole("superuser"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("ParseRole(superuser): expected ErrInvalidRole, got %v", err)
	}
}

func TestParseUserStatus(t *testing.T) {
	for _, s := range []string{UserStatusActive, UserStatusInactive, UserStatusNotVerified, UserStatusBanned} {
		if _, err := ParseUserStatus(s); err != nil {
			t.Errorf("ParseUserStatus(%q): unexpected error %v", s, err)
		}
	}
	if _, err := ParseUserStatus("deleted"); !errors.Is(err, ErrInvalidUserStatus) {
		t.Errorf("ParseUserStatus(deleted): expected ErrInvalidUserStatus, got %v", err)
	}
}
