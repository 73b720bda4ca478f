package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnassignedWorker is the sentinel stored on items with no worker.
const UnassignedWorker = "Unassigned"

// Bill represents one customer order: line items, dates and payment state.
type Bill struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillNo       string    `gorm:"size:50;not null;index" json:"billNo"`
	CustomerName string    `gorm:"size:255;not null" json:"customerName"`
	Mobile       string    `gorm:"size:50" json:"mobile"`
	OrderDate    string    `gorm:"size:20" json:"orderDate"`
	DeliveryDate string    `gorm:"size:20" json:"deliveryDate"`

	IsUrgent    bool `gorm:"default:false" json:"isUrgent"`
	FullPayment bool `gorm:"default:false" json:"fullPayment"`
	Delivered   bool `gorm:"default:false" json:"delivered"`
	IsFavorite  bool `gorm:"default:false" json:"isFavorite"`

	// Legacy free-text status carried from older records; "Delivered" here
	// also counts as delivered.
	Status string `gorm:"size:50;default:'Pending'" json:"status"`

	AdvancePayment float64 `gorm:"default:0" json:"advancePayment"`

	// Derived totals, recomputed by the repository on every items/advance
	// write. Never trusted from callers.
	TotalOriginal float64 `gorm:"default:0" json:"totalOriginal"`
	TotalVat      float64 `gorm:"default:0" json:"totalVat"`
	TotalAmount   float64 `gorm:"default:0" json:"totalAmount"`

	// Bill-level worker summary, set by bulk assignment.
	AssignedTo string `gorm:"size:255;default:'Unassigned'" json:"assignedTo"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []BillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one garment line within a bill. Items keep a stable ID so
// edits address an item by identity rather than by array position, while
// Position preserves the display order of the original item array.
type BillItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID   uuid.UUID `gorm:"type:uuid;not null;index" json:"billId"`
	Position int       `gorm:"not null" json:"position"`

	Name      string  `gorm:"size:255;not null" json:"name"`
	Price     float64 `gorm:"default:0" json:"price"` // pre-VAT rate
	Completed bool    `gorm:"default:false" json:"completed"`
	Image     string  `gorm:"type:text" json:"image,omitempty"`

	// Worker assignment is by display name, with "Unassigned" as sentinel.
	AssignedTo   string  `gorm:"size:255;default:'Unassigned';index" json:"assignedTo"`
	WorkerRate   float64 `gorm:"default:0" json:"workerRate"`
	MoneyPaid    float64 `gorm:"default:0" json:"moneyPaid"`
	SentToWorker bool    `gorm:"default:false" json:"sentToWorker"`
	WorkerDone   bool    `gorm:"default:false" json:"workerDone"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	Bill *Bill `gorm:"foreignKey:BillID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *BillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// BillSequence backs atomic bill-number allocation. A single row is
// advanced inside the create transaction.
type BillSequence struct {
	ID     int    `gorm:"primary_key" json:"id"`
	LastNo int64  `gorm:"not null" json:"lastNo"`
	Prefix string `gorm:"size:20" json:"prefix"`
}

// TableName returns the table name for the BillSequence model
func (BillSequence) TableName() string {
	return "bill_sequences"
}
