package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking represents one reservation linking a user to a hotel for a date range.
//
// Name, Email and Phone are copied from the User at booking time and are never
// refreshed afterwards. HotelID and UserID are weak references: the schema
// carries no foreign-key constraints, so deleting a hotel leaves its bookings
// in place.
type Booking struct {
	ID       uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	HotelID  uuid.UUID `json:"hotelId" gorm:"column:hotel_id;type:char(36);index"`
	UserID   uuid.UUID `json:"userId" gorm:"column:user_id;type:char(36);index"`
	Name     string    `json:"name" gorm:"size:255"`
	Email    string    `json:"email" gorm:"size:255"`
	Phone    string    `json:"phone" gorm:"size:50"`
	Checkin  string    `json:"checkin" gorm:"size:64"`
	Checkout string    `json:"checkout" gorm:"size:64"`

	// Read-side joins for listing endpoints. Loaded with a narrow column
	// selection; nil when the referenced record no longer exists.
	Hotel *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
