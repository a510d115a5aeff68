package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"shelterBack/internal/models"
	"shelterBack/internal/repositories"
)

var ErrInvalidRating = errors.New("rating must be between 0 and 5")

type ReviewService struct {
	ReviewRepo        *repositories.ReviewRepository
	AccommodationRepo *repositories.AccommodationRepository
}

func (s *ReviewService) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	if rev.Rating < 0 || rev.Rating > 5 {
		return models.Review{}, ErrInvalidRating
	}
	if _, err := s.AccommodationRepo.GetAccommodationByID(ctx, rev.AccommodationID); err != nil {
		return models.Review{}, err
	}

	rev.ID = uuid.New().String()
	created, err := s.ReviewRepo.CreateReview(ctx, rev)
	if err != nil {
		return models.Review{}, err
	}
	if err := s.refreshRating(ctx, rev.AccommodationID); err != nil {
		return models.Review{}, err
	}
	return created, nil
}

func (s *ReviewService) GetReviewsByAccommodationID(ctx context.Context, accommodationID string) ([]models.Review, error) {
	return s.ReviewRepo.GetReviewsByAccommodationID(ctx, accommodationID)
}

func (s *ReviewService) UpdateReview(ctx context.Context, accommodationID, userID string, rating float64, comment string) error {
	if rating < 0 || rating > 5 {
		return ErrInvalidRating
	}
	if err := s.ReviewRepo.UpdateReviewByUser(ctx, accommodationID, userID, rating, comment); err != nil {
		return err
	}
	return s.refreshRating(ctx, accommodationID)
}

func (s *ReviewService) DeleteReview(ctx context.Context, id string) error {
	rev, err := s.ReviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ReviewRepo.DeleteReview(ctx, id); err != nil {
		return err
	}
	return s.refreshRating(ctx, rev.AccommodationID)
}

// refreshRating keeps the denormalized accommodation rating in sync with its
// reviews, so listing filters see the current average.
func (s *ReviewService) refreshRating(ctx context.Context, accommodationID string) error {
	avg, err := s.ReviewRepo.AverageRating(ctx, accommodationID)
	if err != nil {
		return err
	}
	return s.AccommodationRepo.UpdateRating(ctx, accommodationID, avg)
}
