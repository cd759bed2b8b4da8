package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelhunt/internal/model"
)

// HotelRepository defines hotel persistence operations.
type HotelRepository interface {
	Create(ctx context.Context, hotel *model.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Hotel, error)
	List(ctx context.Context) ([]model.Hotel, error)
	Search(ctx context.Context, query string) ([]model.Hotel, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository creates a new hotel repository.
func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Hotel, error) {
	var hotel model.Hotel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&hotel).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) List(ctx context.Context) ([]model.Hotel, error) {
	var hotels []model.Hotel
	if err := r.db.WithContext(ctx).Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search runs a case-insensitive substring match over the text columns and,
// when the query parses as a number, an exact equality match on the nightly
// price. No ranking, no pagination.
func (r *hotelRepository) Search(ctx context.Context, query string) ([]model.Hotel, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	cond := "LOWER(name) LIKE ? OR LOWER(loc) LIKE ? OR LOWER(amenities) LIKE ? OR LOWER(areaofroom) LIKE ?"
	args := []interface{}{pattern, pattern, pattern, pattern}
	if price, err := decimal.NewFromString(strings.TrimSpace(query)); err == nil {
		cond += " OR pricepernight = ?"
		args = append(args, price)
	}

	var hotels []model.Hotel
	if err := r.db.WithContext(ctx).Where(cond, args...).Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// Delete removes the hotel and reports whether a record existed.
func (r *hotelRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Hotel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
