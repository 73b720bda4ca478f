package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
)

// CustomerRepository defines the interface for favourite customer data operations
type CustomerRepository interface {
	// Upsert creates the favourite or refreshes its name and raw mobile.
	Upsert(ctx context.Context, customer *entity.FavouriteCustomer) error
	GetByMobile(ctx context.Context, mobile string) (*entity.FavouriteCustomer, error)
	Delete(ctx context.Context, mobile string) error
	List(ctx context.Context) ([]entity.FavouriteCustomer, error)

	CreateProfile(ctx context.Context, profile *entity.MeasurementProfile) error
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.MeasurementProfile, error)
	UpdateProfile(ctx context.Context, profile *entity.MeasurementProfile) error
	DeleteProfile(ctx context.Context, id uuid.UUID) error
	ProfilesForCustomer(ctx context.Context, mobile string) ([]entity.MeasurementProfile, error)
}
