package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sample is a catalog photo of a design the shop offers, shared with
// favourite customers over WhatsApp. Image holds an opaque encoded
// picture produced by the client.
type Sample struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Price      float64   `gorm:"default:0" json:"price"`
	Image      string    `gorm:"type:text" json:"image"`
	OutOfStock bool      `gorm:"default:false" json:"outOfStock"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new sample
func (s *Sample) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sample model
func (Sample) TableName() string {
	return "samples"
}
