package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	domainRepo "github.com/alhuzaifa/tailor-api/internal/domain/repository"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new favourite customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Upsert(ctx context.Context, customer *entity.FavouriteCustomer) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "mobile"}},
		DoUpdates: clause.AssignmentColumns([]string{"customer_name", "raw_mobile", "updated_at"}),
	}).Create(customer).Error
}

func (r *customerRepository) GetByMobile(ctx context.Context, mobile string) (*entity.FavouriteCustomer, error) {
	var customer entity.FavouriteCustomer
	err := r.db.WithContext(ctx).
		Preload("MeasurementProfiles").
		First(&customer, "mobile = ?", mobile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Delete(ctx context.Context, mobile string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_mobile = ?", mobile).Delete(&entity.MeasurementProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.FavouriteCustomer{}, "mobile = ?", mobile).Error
	})
}

func (r *customerRepository) List(ctx context.Context) ([]entity.FavouriteCustomer, error) {
	var customers []entity.FavouriteCustomer
	err := r.db.WithContext(ctx).
		Preload("MeasurementProfiles").
		Order("customer_name ASC").
		Find(&customers).Error
	return customers, err
}

func (r *customerRepository) CreateProfile(ctx context.Context, profile *entity.MeasurementProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *customerRepository) GetProfile(ctx context.Context, id uuid.UUID) (*entity.MeasurementProfile, error) {
	var profile entity.MeasurementProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *customerRepository) UpdateProfile(ctx context.Context, profile *entity.MeasurementProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *customerRepository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MeasurementProfile{}, "id = ?", id).Error
}

func (r *customerRepository) ProfilesForCustomer(ctx context.Context, mobile string) ([]entity.MeasurementProfile, error) {
	var profiles []entity.MeasurementProfile
	err := r.db.WithContext(ctx).
		Where("customer_mobile = ?", mobile).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}
