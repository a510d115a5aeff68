package models

import (
	"time"
)

// Occupancy types accepted for an accommodation.
const (
	OccupancyBoys     = "boys"
	OccupancyLadies   = "ladies"
	OccupancyColiving = "coliving"
	OccupancyFamily   = "family"
)

// Room types accepted for an accommodation.
const (
	RoomPGHostel  = "pg_hostel"
	RoomFullHouse = "full_house"
	RoomFlatmates = "flatmates"
)

type Accommodation struct {
	ID              string     `json:"_id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	Location        string     `json:"location"`
	CompanyName     string     `json:"companyName"`
	Price           float64    `json:"price"`
	Rating          float64    `json:"rating"`
	OccupancyType   string     `json:"occupancyType,omitempty"`
	RoomType        string     `json:"roomType,omitempty"`
	Amenities       string     `json:"amenities,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	AvailableSpaces int        `json:"available_spaces"`
	FlatNumber      string     `json:"flatNumber,omitempty"`
	Address         string     `json:"address,omitempty"`
	Description     string     `json:"description,omitempty"`
	Available       bool       `json:"available"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func ValidOccupancyType(v string) bool {
	switch v {
	case OccupancyBoys, OccupancyLadies, OccupancyColiving, OccupancyFamily:
		return true
	}
	return false
}

func ValidRoomType(v string) bool {
	switch v {
	case RoomPGHostel, RoomFullHouse, RoomFlatmates:
		return true
	}
	return false
}
