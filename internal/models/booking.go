package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a reservation for one (date, time) slot. The composite unique
// index is the invariant that prevents double booking; the application-level
// existence check only exists for a friendlier error message.
type Booking struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Service string `gorm:"size:150;not null" json:"service"`

	Date string `gorm:"size:10;not null;uniqueIndex:uq_bookings_date_time" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null;uniqueIndex:uq_bookings_date_time" json:"time"`  // HH:mm

	FirstName  string `gorm:"size:100;not null" json:"firstName"`
	MiddleName string `gorm:"size:100;not null" json:"middleName"`
	LastName   string `gorm:"size:100;not null" json:"lastName"`

	Email       string `gorm:"size:150;not null" json:"email"`
	PhoneNumber string `gorm:"size:20;not null" json:"phoneNumber"`

	AddressLine1 string `gorm:"size:255;not null" json:"addressLine1"`
	AddressLine2 string `gorm:"size:255" json:"addressLine2,omitempty"`

	Info string `gorm:"type:text" json:"info,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
