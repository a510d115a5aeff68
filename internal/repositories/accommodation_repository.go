package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shelterBack/internal/models"
)

type AccommodationRepository struct {
	DB *sql.DB
}

const accommodationColumns = `id, user_id, name, location, company_name, price, rating,
       occupancy_type, room_type, amenities, phone, available_spaces,
       flat_number, address, description, available, created_at, updated_at`

func (r *AccommodationRepository) CreateAccommodation(ctx context.Context, acc models.Accommodation) (models.Accommodation, error) {
	query := `
INSERT INTO accommodations
       (id, user_id, name, location, company_name, price, rating, occupancy_type,
        room_type, amenities, phone, available_spaces, flat_number, address,
        description, available, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	_, err := r.DB.ExecContext(ctx, query,
		acc.ID, acc.UserID, acc.Name, acc.Location, acc.CompanyName, acc.Price, acc.Rating,
		nullString(acc.OccupancyType), nullString(acc.RoomType), acc.Amenities, acc.Phone,
		acc.AvailableSpaces, acc.FlatNumber, acc.Address, acc.Description, acc.Available,
	)
	if err != nil {
		return models.Accommodation{}, fmt.Errorf("create accommodation: %w", err)
	}
	return r.GetAccommodationByID(ctx, acc.ID)
}

// GetAvailable returns the seeker-facing snapshot: available listings only,
// newest first.
func (r *AccommodationRepository) GetAvailable(ctx context.Context) ([]models.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + `
                 FROM accommodations
                 WHERE available = TRUE
                 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAccommodations(rows)
}

func (r *AccommodationRepository) GetAccommodationByID(ctx context.Context, id string) (models.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + ` FROM accommodations WHERE id = ?`
	row := r.DB.QueryRowContext(ctx, query, id)

	acc, err := scanAccommodation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Accommodation{}, models.ErrAccommodationNotFound
		}
		return models.Accommodation{}, err
	}
	return acc, nil
}

func (r *AccommodationRepository) GetAccommodationsByUserID(ctx context.Context, userID string) ([]models.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + `
                 FROM accommodations
                 WHERE user_id = ?
                 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAccommodations(rows)
}

func (r *AccommodationRepository) UpdateAccommodation(ctx context.Context, acc models.Accommodation) (models.Accommodation, error) {
	query := `
UPDATE accommodations
SET name = ?, location = ?, company_name = ?, price = ?, occupancy_type = ?,
    room_type = ?, amenities = ?, phone = ?, available_spaces = ?,
    flat_number = ?, address = ?, description = ?, available = ?, updated_at = NOW()
WHERE id = ?
	`
	res, err := r.DB.ExecContext(ctx, query,
		acc.Name, acc.Location, acc.CompanyName, acc.Price, nullString(acc.OccupancyType),
		nullString(acc.RoomType), acc.Amenities, acc.Phone, acc.AvailableSpaces,
		acc.FlatNumber, acc.Address, acc.Description, acc.Available, acc.ID,
	)
	if err != nil {
		return models.Accommodation{}, fmt.Errorf("update accommodation: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, err := r.GetAccommodationByID(ctx, acc.ID); err != nil {
			return models.Accommodation{}, err
		}
	}
	return r.GetAccommodationByID(ctx, acc.ID)
}

func (r *AccommodationRepository) UpdateRating(ctx context.Context, id string, rating float64) error {
	query := `UPDATE accommodations SET rating = ? WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, rating, id)
	return err
}

func (r *AccommodationRepository) DeleteAccommodation(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM accommodations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrAccommodationNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccommodation(row rowScanner) (models.Accommodation, error) {
	var acc models.Accommodation
	var occupancy, room sql.NullString
	err := row.Scan(
		&acc.ID, &acc.UserID, &acc.Name, &acc.Location, &acc.CompanyName,
		&acc.Price, &acc.Rating, &occupancy, &room, &acc.Amenities, &acc.Phone,
		&acc.AvailableSpaces, &acc.FlatNumber, &acc.Address, &acc.Description,
		&acc.Available, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		return models.Accommodation{}, err
	}
	acc.OccupancyType = occupancy.String
	acc.RoomType = room.String
	return acc, nil
}

func scanAccommodations(rows *sql.Rows) ([]models.Accommodation, error) {
	accs := []models.Accommodation{}
	for rows.Next() {
		acc, err := scanAccommodation(rows)
		if err != nil {
			return nil, err
		}
		accs = append(accs, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("accommodation rows error: %w", err)
	}
	return accs, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
