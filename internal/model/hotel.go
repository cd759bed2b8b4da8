package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Hotel represents one bookable property in the directory.
// JSON field names match the public wire contract consumed by the client views.
type Hotel struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string          `json:"name" gorm:"size:255;index"`
	ImageOfRoom   string          `json:"imageofroom" gorm:"column:imageofroom;size:1024"`
	Loc           string          `json:"loc" gorm:"size:255"`
	PricePerNight decimal.Decimal `json:"pricepernight" gorm:"column:pricepernight;type:decimal(10,2)"`
	// Amenities is a comma-delimited list, stored exactly as received.
	Amenities  string `json:"amenities" gorm:"type:text"`
	AreaOfRoom string `json:"areaofroom" gorm:"column:areaofroom;size:255"`
}

// BeforeCreate sets UUID before creating the record.
func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
