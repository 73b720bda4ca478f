package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alteration is a lightweight rework record. It references a bill by its
// human-facing number (free text, no FK); deleting a bill cascades to the
// alterations carrying the same number.
type Alteration struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillNo       string    `gorm:"size:50;index" json:"billNo"`
	CustomerName string    `gorm:"size:255;not null" json:"customerName"`
	Mobile       string    `gorm:"size:50" json:"mobile"`
	Problem      string    `gorm:"type:text;not null" json:"problem"`
	IsReady      bool      `gorm:"default:false" json:"isReady"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new alteration
func (a *Alteration) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Alteration model
func (Alteration) TableName() string {
	return "alterations"
}
