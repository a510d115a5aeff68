package services

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"shelterBack/internal/models"
	"shelterBack/internal/repositories"
)

const favoriteCacheTTL = 10 * time.Minute

type FavoriteService struct {
	FavoriteRepo *repositories.FavoriteRepository
	Redis        *redis.Client
}

func favoriteKey(userID string) string {
	return "favorites:" + userID
}

func (s *FavoriteService) AddToFavorites(ctx context.Context, fav models.Favorite) error {
	if err := s.FavoriteRepo.AddToFavorites(ctx, fav); err != nil {
		return err
	}
	s.invalidateCache(ctx, fav.UserID)
	return nil
}

func (s *FavoriteService) RemoveFromFavorites(ctx context.Context, userID, accommodationID string) error {
	if err := s.FavoriteRepo.RemoveFromFavorites(ctx, userID, accommodationID); err != nil {
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, accommodationID string) (bool, error) {
	return s.FavoriteRepo.IsFavorite(ctx, userID, accommodationID)
}

func (s *FavoriteService) GetFavoritesByUser(ctx context.Context, userID string) ([]models.Accommodation, error) {
	return s.FavoriteRepo.GetFavoritesByUser(ctx, userID)
}

// GetFavoriteIDSet returns the user's favorite accommodation ids as a set,
// read through the Redis cache. Cache failures fall back to the database.
func (s *FavoriteService) GetFavoriteIDSet(ctx context.Context, userID string) (map[string]struct{}, error) {
	key := favoriteKey(userID)

	if s.Redis != nil {
		ids, err := s.Redis.SMembers(ctx, key).Result()
		if err == nil && len(ids) > 0 {
			return toIDSet(ids), nil
		}
		if err != nil {
			log.Printf("favorites cache read for %s: %v", userID, err)
		}
	}

	ids, err := s.FavoriteRepo.GetFavoriteIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil && len(ids) > 0 {
		members := make([]interface{}, len(ids))
		for i, id := range ids {
			members[i] = id
		}
		if err := s.Redis.SAdd(ctx, key, members...).Err(); err != nil {
			log.Printf("favorites cache write for %s: %v", userID, err)
		} else {
			s.Redis.Expire(ctx, key, favoriteCacheTTL)
		}
	}

	return toIDSet(ids), nil
}

func (s *FavoriteService) invalidateCache(ctx context.Context, userID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, favoriteKey(userID)).Err(); err != nil {
		log.Printf("favorites cache invalidate for %s: %v", userID, err)
	}
}

func toIDSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
