package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shelterBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	var count int
	check := `SELECT COUNT(*) FROM reviews WHERE user_id = ? AND accommodation_id = ?`
	if err := r.DB.QueryRowContext(ctx, check, rev.UserID, rev.AccommodationID).Scan(&count); err != nil {
		return models.Review{}, err
	}
	if count > 0 {
		return models.Review{}, models.ErrAlreadyReviewed
	}

	query := `
INSERT INTO reviews (id, user_id, accommodation_id, rating, comment, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`
	_, err := r.DB.ExecContext(ctx, query,
		rev.ID, rev.UserID, rev.AccommodationID, rev.Rating, rev.Comment,
	)
	if err != nil {
		return models.Review{}, fmt.Errorf("create review: %w", err)
	}
	return rev, nil
}

func (r *ReviewRepository) GetReviewByID(ctx context.Context, id string) (models.Review, error) {
	query := `SELECT id, user_id, accommodation_id, rating, comment, created_at, updated_at
                 FROM reviews WHERE id = ?`
	var rev models.Review
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&rev.ID, &rev.UserID, &rev.AccommodationID,
		&rev.Rating, &rev.Comment, &rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, models.ErrReviewNotFound
		}
		return models.Review{}, err
	}
	return rev, nil
}

func (r *ReviewRepository) GetReviewsByAccommodationID(ctx context.Context, accommodationID string) ([]models.Review, error) {
	query := `
               SELECT r.id, r.user_id, r.accommodation_id, r.rating, r.comment,
                      u.name, r.created_at, r.updated_at
               FROM reviews r
               JOIN users u ON r.user_id = u.id
               WHERE r.accommodation_id = ?
               ORDER BY r.created_at DESC
       `
	rows, err := r.DB.QueryContext(ctx, query, accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(&rev.ID, &rev.UserID, &rev.AccommodationID, &rev.Rating, &rev.Comment,
			&rev.UserName, &rev.CreatedAt, &rev.UpdatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("review rows error: %w", err)
	}
	return reviews, nil
}

// UpdateReviewByUser edits the single review a user holds on an
// accommodation.
func (r *ReviewRepository) UpdateReviewByUser(ctx context.Context, accommodationID, userID string, rating float64, comment string) error {
	query := `
		UPDATE reviews
		SET rating = ?, comment = ?, updated_at = NOW()
		WHERE accommodation_id = ? AND user_id = ?
	`
	res, err := r.DB.ExecContext(ctx, query, rating, comment, accommodationID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrReviewNotFound
	}
	return nil
}

// AverageRating returns the mean review rating for an accommodation, 0 when
// it has no reviews yet.
func (r *ReviewRepository) AverageRating(ctx context.Context, accommodationID string) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE accommodation_id = ?`
	var avg float64
	err := r.DB.QueryRowContext(ctx, query, accommodationID).Scan(&avg)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	return avg, nil
}
