package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Worker is a tailor/embroiderer work items get assigned to. Bill items
// reference workers by display name; ManualItems are owned by the worker
// record itself and have no owning bill.
type Worker struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name   string    `gorm:"size:255;not null" json:"name"`
	Mobile string    `gorm:"size:50" json:"mobile"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	ManualItems []ManualItem `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE" json:"manualItems,omitempty"`
}

// BeforeCreate generates a UUID before creating a new worker
func (w *Worker) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Worker model
func (Worker) TableName() string {
	return "workers"
}

// ManualItem is a ledger entry recorded directly under a worker. BillNo is
// free text for the worker's reference, not a foreign key.
type ManualItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WorkerID uuid.UUID `gorm:"type:uuid;not null;index" json:"workerId"`

	BillNo       string  `gorm:"size:50" json:"billNo"`
	Name         string  `gorm:"size:255;not null" json:"name"`
	DeliveryDate string  `gorm:"size:20" json:"deliveryDate"`
	WorkerRate   float64 `gorm:"default:0" json:"workerRate"`
	MoneyPaid    float64 `gorm:"default:0" json:"moneyPaid"`
	WorkerDone   bool    `gorm:"default:false" json:"workerDone"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new manual item
func (m *ManualItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ManualItem model
func (ManualItem) TableName() string {
	return "manual_items"
}
