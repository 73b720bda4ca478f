package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavouriteCustomer is a VIP customer keyed by their digit-normalized
// mobile number. Bills join to this record by mobile equality, not by id.
type FavouriteCustomer struct {
	Mobile       string `gorm:"size:50;primary_key" json:"mobile"` // digits only
	CustomerName string `gorm:"size:255;not null" json:"customerName"`
	RawMobile    string `gorm:"size:50" json:"rawMobile"` // as entered on the bill

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	MeasurementProfiles []MeasurementProfile `gorm:"foreignKey:CustomerMobile;references:Mobile;constraint:OnDelete:CASCADE" json:"measurementProfiles,omitempty"`
}

// TableName returns the table name for the FavouriteCustomer model
func (FavouriteCustomer) TableName() string {
	return "favourite_customers"
}

// MeasurementProfile is one named set of body measurements for a VIP
// customer (a customer can keep several, e.g. "Summer Kandura").
// Measurements are free-text strings, matching shop-floor entry habits.
type MeasurementProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerMobile string    `gorm:"size:50;not null;index" json:"customerMobile"`
	Name           string    `gorm:"size:255;not null" json:"name"`

	Length   string `gorm:"size:50" json:"length"`
	Shoulder string `gorm:"size:50" json:"shoulder"`
	Chest    string `gorm:"size:50" json:"chest"`
	Waist    string `gorm:"size:50" json:"waist"`
	Hip      string `gorm:"size:50" json:"hip"`
	Sleeves  string `gorm:"size:50" json:"sleeves"`
	Neck     string `gorm:"size:50" json:"neck"`
	Armhole  string `gorm:"size:50" json:"armhole"`
	Cuff     string `gorm:"size:50" json:"cuff"`
	Bottom   string `gorm:"size:50" json:"bottom"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new measurement profile
func (m *MeasurementProfile) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MeasurementProfile model
func (MeasurementProfile) TableName() string {
	return "measurement_profiles"
}
