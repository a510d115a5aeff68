package models

import "time"

type Favorite struct {
	UserID          string    `json:"user_id"`
	AccommodationID string    `json:"accommodationId"`
	CreatedAt       time.Time `json:"created_at"`
}

// FavoriteRequest is the body of the add/remove favorite endpoints.
type FavoriteRequest struct {
	AccommodationID string `json:"accommodationId"`
}
