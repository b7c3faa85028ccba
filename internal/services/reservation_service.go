package services

import (
	"context"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
)

type ReservationService struct {
	ReservationRepo *repositories.ReservationRepository
}

func (s *ReservationService) CreateReservation(ctx context.Context, res models.Reservation) (models.Reservation, error) {
	return s.ReservationRepo.CreateReservation(ctx, res)
}

func (s *ReservationService) GetReservationByID(ctx context.Context, id int) (models.Reservation, error) {
	return s.ReservationRepo.GetReservationByID(ctx, id)
}

func (s *ReservationService) GetReservations(ctx context.Context) ([]models.Reservation, error) {
	return s.ReservationRepo.GetReservations(ctx)
}

func (s *ReservationService) GetReservationsByUserID(ctx context.Context, userID int) ([]models.Reservation, error) {
	return s.ReservationRepo.GetReservationsByUserID(ctx, userID)
}

func (s *ReservationService) GetReservationsByEstablishmentID(ctx context.Context, establishmentID int) ([]models.Reservation, error) {
	return s.ReservationRepo.GetReservationsByEstablishmentID(ctx, establishmentID)
}

// UpdateReservation validates the status string, if present, before it
// reaches the store.
func (s *ReservationService) UpdateReservation(ctx context.Context, id int, upd models.ReservationUpdate) (models.Reservation, error) {
	if upd.Status != nil {
		status, err := models.ParseReservationStatus(*upd.Status)
		if err != nil {
			return models.Reservation{}, err
		}
		upd.Status = &status
	}
	return s.ReservationRepo.UpdateReservation(ctx, id, upd)
}

func (s *ReservationService) CancelReservation(ctx context.Context, id int) (models.Reservation, error) {
	return s.ReservationRepo.CancelReservation(ctx, id)
}

func (s *ReservationService) DeleteReservation(ctx context.Context, id int) error {
	return s.ReservationRepo.DeleteReservation(ctx, id)
}
