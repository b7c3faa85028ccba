package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"gastroBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, rev.UserID).Scan(&count); err != nil {
		return models.Review{}, err
	}
	if count == 0 {
		return models.Review{}, models.ErrUserNotFound
	}
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM establishments WHERE id = ?`, rev.EstablishmentID).Scan(&count); err != nil {
		return models.Review{}, err
	}
	if count == 0 {
		return models.Review{}, models.ErrEstablishmentNotFound
	}

	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews WHERE user_id = ? AND establishment_id = ?`,
		rev.UserID, rev.EstablishmentID).Scan(&count); err != nil {
		return models.Review{}, err
	}
	if count > 0 {
		return models.Review{}, models.ErrAlreadyReviewed
	}

	rev.CreatedAt = time.Now()
	query := `
        INSERT INTO reviews (user_id, establishment_id, rating, comment, img, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.DB.ExecContext(ctx, query,
		rev.UserID, rev.EstablishmentID, rev.Rating, rev.Comment, rev.Img, rev.CreatedAt,
	)
	if err != nil {
		// Two concurrent creates can both pass the count check; the primary
		// key on (user_id, establishment_id) decides the loser.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return models.Review{}, models.ErrAlreadyReviewed
		}
		return models.Review{}, err
	}
	return rev, nil
}

func (r *ReviewRepository) GetReview(ctx context.Context, userID, establishmentID int) (models.Review, error) {
	var rev models.Review
	query := `
        SELECT user_id, establishment_id, rating, comment, img, created_at
        FROM reviews
        WHERE user_id = ? AND establishment_id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, userID, establishmentID).Scan(
		&rev.UserID, &rev.EstablishmentID, &rev.Rating, &rev.Comment, &rev.Img, &rev.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Review{}, models.ErrReviewNotFound
	}
	if err != nil {
		return models.Review{}, err
	}
	return rev, nil
}

func (r *ReviewRepository) GetReviews(ctx context.Context) ([]models.Review, error) {
	query := `
        SELECT user_id, establishment_id, rating, comment, img, created_at
        FROM reviews
    `
	return r.queryReviews(ctx, query)
}

func (r *ReviewRepository) GetReviewsByEstablishmentID(ctx context.Context, establishmentID int) ([]models.Review, error) {
	query := `
        SELECT user_id, establishment_id, rating, comment, img, created_at
        FROM reviews
        WHERE establishment_id = ?
    `
	return r.queryReviews(ctx, query, establishmentID)
}

func (r *ReviewRepository) GetReviewsByUserID(ctx context.Context, userID int) ([]models.Review, error) {
	query := `
        SELECT user_id, establishment_id, rating, comment, img, created_at
        FROM reviews
        WHERE user_id = ?
    `
	return r.queryReviews(ctx, query, userID)
}

func (r *ReviewRepository) queryReviews(ctx context.Context, query string, args ...any) ([]models.Review, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(&rev.UserID, &rev.EstablishmentID, &rev.Rating, &rev.Comment, &rev.Img, &rev.CreatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

// UpdateReview applies only the fields present in upd. The rating, when
// present, has already been validated by the service layer.
func (r *ReviewRepository) UpdateReview(ctx context.Context, userID, establishmentID int, upd models.ReviewUpdate) (models.Review, error) {
	rev, err := r.GetReview(ctx, userID, establishmentID)
	if err != nil {
		return models.Review{}, err
	}

	if upd.Rating != nil {
		rev.Rating = *upd.Rating
	}
	if upd.Comment != nil {
		rev.Comment = upd.Comment
	}
	if upd.Img != nil {
		rev.Img = upd.Img
	}

	query := `
        UPDATE reviews
        SET rating = ?, comment = ?, img = ?
        WHERE user_id = ? AND establishment_id = ?
    `
	_, err = r.DB.ExecContext(ctx, query, rev.Rating, rev.Comment, rev.Img, userID, establishmentID)
	if err != nil {
		return models.Review{}, err
	}
	return rev, nil
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, userID, establishmentID int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE user_id = ? AND establishment_id = ?`, userID, establishmentID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrReviewNotFound
	}
	return nil
}
