package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"shelterBack/internal/models"
)

type FavoriteRepository struct {
	DB *sql.DB
}

func (r *FavoriteRepository) AddToFavorites(ctx context.Context, fav models.Favorite) error {
	var count int
	check := `SELECT COUNT(*) FROM favorites WHERE user_id = ? AND accommodation_id = ?`
	if err := r.DB.QueryRowContext(ctx, check, fav.UserID, fav.AccommodationID).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return models.ErrAlreadyFavorite
	}

	query := `INSERT INTO favorites (user_id, accommodation_id, created_at) VALUES (?, ?, NOW())`
	_, err := r.DB.ExecContext(ctx, query, fav.UserID, fav.AccommodationID)
	return err
}

func (r *FavoriteRepository) RemoveFromFavorites(ctx context.Context, userID, accommodationID string) error {
	query := `DELETE FROM favorites WHERE user_id = ? AND accommodation_id = ?`
	_, err := r.DB.ExecContext(ctx, query, userID, accommodationID)
	return err
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID, accommodationID string) (bool, error) {
	query := `SELECT COUNT(*) FROM favorites WHERE user_id = ? AND accommodation_id = ?`
	var count int
	err := r.DB.QueryRowContext(ctx, query, userID, accommodationID).Scan(&count)
	return count > 0, err
}

// GetFavoritesByUser returns the favorited accommodations themselves, for the
// favorites listing screen.
func (r *FavoriteRepository) GetFavoritesByUser(ctx context.Context, userID string) ([]models.Accommodation, error) {
	query := `SELECT a.id, a.user_id, a.name, a.location, a.company_name, a.price, a.rating,
                     a.occupancy_type, a.room_type, a.amenities, a.phone, a.available_spaces,
                     a.flat_number, a.address, a.description, a.available, a.created_at, a.updated_at
                 FROM favorites f
                 JOIN accommodations a ON f.accommodation_id = a.id
                 WHERE f.user_id = ?
                 ORDER BY f.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAccommodations(rows)
}

// GetFavoriteIDs returns just the accommodation ids, the set the filter
// engine intersects against.
func (r *FavoriteRepository) GetFavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT accommodation_id FROM favorites WHERE user_id = ?`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("favorite rows error: %w", err)
	}
	return ids, nil
}
