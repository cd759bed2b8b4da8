package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotelhunt/internal/errors"
	"hotelhunt/internal/model"
	"hotelhunt/internal/repository"
)

// Cache is the read-through cache surface the directory uses.
// *cache.Client satisfies it.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const hotelCacheTTL = 5 * time.Minute

const hotelListCacheKey = "hotels:all"

// HotelService handles hotel directory operations.
type HotelService interface {
	Create(ctx context.Context, hotel *model.Hotel) (*model.Hotel, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Hotel, error)
	List(ctx context.Context) ([]model.Hotel, error)
	Search(ctx context.Context, query string) ([]model.Hotel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type hotelService struct {
	repo  repository.HotelRepository
	cache Cache
}

// NewHotelService creates a new hotel service.
func NewHotelService(repo repository.HotelRepository, cache Cache) HotelService {
	return &hotelService{repo: repo, cache: cache}
}

func (s *hotelService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("hotel:%s", id.String())
}

// Create inserts the hotel payload as received. No field validation is
// performed on directory entries.
func (s *hotelService) Create(ctx context.Context, hotel *model.Hotel) (*model.Hotel, error) {
	if err := s.repo.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}
	_ = s.cache.Delete(ctx, hotelListCacheKey)
	return hotel, nil
}

// Get retrieves a hotel by ID with caching.
func (s *hotelService) Get(ctx context.Context, id uuid.UUID) (*model.Hotel, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Hotel
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	hotel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrHotelNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(hotel); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, hotelCacheTTL)
	}
	return hotel, nil
}

// List returns the full directory with caching. No pagination.
func (s *hotelService) List(ctx context.Context) ([]model.Hotel, error) {
	if data, _ := s.cache.Get(ctx, hotelListCacheKey); data != nil {
		var cached []model.Hotel
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	hotels, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(hotels); err == nil {
		_ = s.cache.Set(ctx, hotelListCacheKey, payload, hotelCacheTTL)
	}
	return hotels, nil
}

// Search is served straight from the database; query shapes vary too much for
// the cache to earn its keep.
func (s *hotelService) Search(ctx context.Context, query string) ([]model.Hotel, error) {
	return s.repo.Search(ctx, query)
}

// Delete removes a hotel by ID. Bookings referencing the hotel are left alone.
func (s *hotelService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}
	if !deleted {
		return errors.ErrHotelNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id), hotelListCacheKey)
	return nil
}
