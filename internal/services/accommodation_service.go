package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"shelterBack/internal/filter"
	"shelterBack/internal/models"
	"shelterBack/internal/pagination"
	"shelterBack/internal/repositories"
)

var ErrInvalidAccommodation = errors.New("accommodation is missing required fields")

type AccommodationService struct {
	AccommodationRepo *repositories.AccommodationRepository
	FavoriteService   *FavoriteService
	PageSize          int
}

// ListingResponse is the payload of the seeker-facing listing endpoint: one
// page of the filtered results plus everything the sidebar needs to render
// its controls.
type ListingResponse struct {
	Accommodations []models.Accommodation `json:"accommodations"`
	Page           int                    `json:"page"`
	TotalPages     int                    `json:"total_pages"`
	TotalItems     int                    `json:"total_items"`
	MinPrice       float64                `json:"min_price"`
	MaxPrice       float64                `json:"max_price"`
	PriceBuckets   []filter.PriceBucket   `json:"price_buckets"`
}

// ListAvailable fetches the available-listings snapshot, runs the committed
// criteria over it and paginates the result. The favorite set is only
// resolved when the favorites filter is active.
func (s *AccommodationService) ListAvailable(ctx context.Context, criteria filter.Criteria, userID string, page int) (ListingResponse, error) {
	src, err := s.AccommodationRepo.GetAvailable(ctx)
	if err != nil {
		return ListingResponse{}, err
	}

	favorites := map[string]struct{}{}
	if criteria.ShowFavorites && userID != "" {
		favorites, err = s.FavoriteService.GetFavoriteIDSet(ctx, userID)
		if err != nil {
			return ListingResponse{}, err
		}
	}

	filtered := filter.Apply(src, criteria, favorites)

	size := s.PageSize
	if size < 1 {
		size = 9
	}
	r := pagination.Paginate(len(filtered), page, size)

	minPrice, maxPrice := filter.ObservedRange(src)

	return ListingResponse{
		Accommodations: filtered[r.Start:r.End],
		Page:           r.Page,
		TotalPages:     r.TotalPages,
		TotalItems:     len(filtered),
		MinPrice:       minPrice,
		MaxPrice:       maxPrice,
		PriceBuckets:   filter.Buckets(minPrice, maxPrice),
	}, nil
}

func (s *AccommodationService) CreateAccommodation(ctx context.Context, userID string, acc models.Accommodation) (models.Accommodation, error) {
	if acc.Name == "" || acc.Location == "" || acc.Price < 0 {
		return models.Accommodation{}, ErrInvalidAccommodation
	}
	if acc.OccupancyType != "" && !models.ValidOccupancyType(acc.OccupancyType) {
		return models.Accommodation{}, ErrInvalidAccommodation
	}
	if acc.RoomType != "" && !models.ValidRoomType(acc.RoomType) {
		return models.Accommodation{}, ErrInvalidAccommodation
	}

	acc.ID = uuid.New().String()
	acc.UserID = userID
	acc.Rating = 0
	acc.Available = true
	return s.AccommodationRepo.CreateAccommodation(ctx, acc)
}

func (s *AccommodationService) GetAccommodationByID(ctx context.Context, id string) (models.Accommodation, error) {
	return s.AccommodationRepo.GetAccommodationByID(ctx, id)
}

func (s *AccommodationService) GetAccommodationsByUserID(ctx context.Context, userID string) ([]models.Accommodation, error) {
	return s.AccommodationRepo.GetAccommodationsByUserID(ctx, userID)
}

// UpdateAccommodation applies a provider's edit, including the availability
// toggle. Only the owner may update a listing.
func (s *AccommodationService) UpdateAccommodation(ctx context.Context, userID string, acc models.Accommodation) (models.Accommodation, error) {
	existing, err := s.AccommodationRepo.GetAccommodationByID(ctx, acc.ID)
	if err != nil {
		return models.Accommodation{}, err
	}
	if existing.UserID != userID {
		return models.Accommodation{}, models.ErrNotOwner
	}
	if acc.OccupancyType != "" && !models.ValidOccupancyType(acc.OccupancyType) {
		return models.Accommodation{}, ErrInvalidAccommodation
	}
	if acc.RoomType != "" && !models.ValidRoomType(acc.RoomType) {
		return models.Accommodation{}, ErrInvalidAccommodation
	}
	return s.AccommodationRepo.UpdateAccommodation(ctx, acc)
}

func (s *AccommodationService) DeleteAccommodation(ctx context.Context, userID, id string) error {
	existing, err := s.AccommodationRepo.GetAccommodationByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return models.ErrNotOwner
	}
	return s.AccommodationRepo.DeleteAccommodation(ctx, id)
}
