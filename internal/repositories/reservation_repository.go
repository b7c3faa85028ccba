package repositories

import (
	"context"
	"database/sql"
	"time"

	"gastroBack/internal/models"
)

type ReservationRepository struct {
	DB *sql.DB
}

func (r *ReservationRepository) CreateReservation(ctx context.Context, res models.Reservation) (models.Reservation, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, res.UserID).Scan(&count); err != nil {
		return models.Reservation{}, err
	}
	if count == 0 {
		return models.Reservation{}, models.ErrUserNotFound
	}
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM establishments WHERE id = ?`, res.EstablishmentID).Scan(&count); err != nil {
		return models.Reservation{}, err
	}
	if count == 0 {
		return models.Reservation{}, models.ErrEstablishmentNotFound
	}

	res.Status = models.ReservationStatusPending
	res.CreatedAt = time.Now()
	res.UpdatedAt = &res.CreatedAt

	query := `
        INSERT INTO reservations (user_id, establishment_id, date, people_count, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	result, err := r.DB.ExecContext(ctx, query,
		res.UserID, res.EstablishmentID, res.Date, res.PeopleCount, res.Status,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return models.Reservation{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Reservation{}, err
	}
	res.ID = int(id)
	return res, nil
}

func (r *ReservationRepository) GetReservationByID(ctx context.Context, id int) (models.Reservation, error) {
	var res models.Reservation
	query := `
        SELECT id, user_id, establishment_id, date, people_count, status, created_at, updated_at
        FROM reservations
        WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.UserID, &res.EstablishmentID, &res.Date, &res.PeopleCount,
		&res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Reservation{}, models.ErrReservationNotFound
	}
	if err != nil {
		return models.Reservation{}, err
	}
	return res, nil
}

func (r *ReservationRepository) GetReservations(ctx context.Context) ([]models.Reservation, error) {
	query := `
        SELECT id, user_id, establishment_id, date, people_count, status, created_at, updated_at
        FROM reservations
    `
	return r.queryReservations(ctx, query)
}

func (r *ReservationRepository) GetReservationsByUserID(ctx context.Context, userID int) ([]models.Reservation, error) {
	query := `
        SELECT id, user_id, establishment_id, date, people_count, status, created_at, updated_at
        FROM reservations
        WHERE user_id = ?
    `
	return r.queryReservations(ctx, query, userID)
}

func (r *ReservationRepository) GetReservationsByEstablishmentID(ctx context.Context, establishmentID int) ([]models.Reservation, error) {
	query := `
        SELECT id, user_id, establishment_id, date, people_count, status, created_at, updated_at
        FROM reservations
        WHERE establishment_id = ?
    `
	return r.queryReservations(ctx, query, establishmentID)
}

func (r *ReservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]models.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		var res models.Reservation
		err := rows.Scan(&res.ID, &res.UserID, &res.EstablishmentID, &res.Date,
			&res.PeopleCount, &res.Status, &res.CreatedAt, &res.UpdatedAt)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// UpdateReservation applies only the fields present in upd. The status value,
// when present, has already been validated by the service layer.
func (r *ReservationRepository) UpdateReservation(ctx context.Context, id int, upd models.ReservationUpdate) (models.Reservation, error) {
	res, err := r.GetReservationByID(ctx, id)
	if err != nil {
		return models.Reservation{}, err
	}

	if upd.Date != nil {
		res.Date = *upd.Date
	}
	if upd.PeopleCount != nil {
		res.PeopleCount = *upd.PeopleCount
	}
	if upd.Status != nil {
		res.Status = *upd.Status
	}
	updatedAt := time.Now()
	res.UpdatedAt = &updatedAt

	query := `
        UPDATE reservations
        SET date = ?, people_count = ?, status = ?, updated_at = ?
        WHERE id = ?
    `
	_, err = r.DB.ExecContext(ctx, query, res.Date, res.PeopleCount, res.Status, res.UpdatedAt, res.ID)
	if err != nil {
		return models.Reservation{}, err
	}
	return res, nil
}

// CancelReservation forces the status to cancelled regardless of the current
// value. Cancelling an already cancelled reservation succeeds.
func (r *ReservationRepository) CancelReservation(ctx context.Context, id int) (models.Reservation, error) {
	res, err := r.GetReservationByID(ctx, id)
	if err != nil {
		return models.Reservation{}, err
	}

	updatedAt := time.Now()
	query := `UPDATE reservations SET status = ?, updated_at = ? WHERE id = ?`
	_, err = r.DB.ExecContext(ctx, query, models.ReservationStatusCancelled, updatedAt, id)
	if err != nil {
		return models.Reservation{}, err
	}
	res.Status = models.ReservationStatusCancelled
	res.UpdatedAt = &updatedAt
	return res, nil
}

func (r *ReservationRepository) DeleteReservation(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrReservationNotFound
	}
	return nil
}
