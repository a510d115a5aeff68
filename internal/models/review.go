package models

import "time"

type Review struct {
	ID              string     `json:"id"`
	AccommodationID string     `json:"accommodation_id"`
	UserID          string     `json:"user_id"`
	UserName        string     `json:"user_name"`
	Rating          float64    `json:"rating"`
	Comment         string     `json:"comment"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type Reply struct {
	ID            string    `json:"id"`
	ReviewID      string    `json:"review_id"`
	ParentReplyID *string   `json:"parent_reply_id,omitempty"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}
