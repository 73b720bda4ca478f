package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	domainRepo "github.com/alhuzaifa/tailor-api/internal/domain/repository"
)

type alterationRepository struct {
	db *gorm.DB
}

// NewAlterationRepository creates a new alteration repository
func NewAlterationRepository(db *gorm.DB) domainRepo.AlterationRepository {
	return &alterationRepository{db: db}
}

func (r *alterationRepository) Create(ctx context.Context, alteration *entity.Alteration) error {
	return r.db.WithContext(ctx).Create(alteration).Error
}

func (r *alterationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Alteration, error) {
	var alteration entity.Alteration
	err := r.db.WithContext(ctx).First(&alteration, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &alteration, err
}

func (r *alterationRepository) Update(ctx context.Context, alteration *entity.Alteration) error {
	return r.db.WithContext(ctx).Save(alteration).Error
}

func (r *alterationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Alteration{}, "id = ?", id).Error
}

func (r *alterationRepository) List(ctx context.Context) ([]entity.Alteration, error) {
	var alterations []entity.Alteration
	err := r.db.WithContext(ctx).
		Order("is_ready ASC, created_at DESC").
		Find(&alterations).Error
	return alterations, err
}

func (r *alterationRepository) Search(ctx context.Context, query string) ([]entity.Alteration, error) {
	var alterations []entity.Alteration
	err := r.db.WithContext(ctx).
		Where("bill_no = ? OR mobile = ?", query, query).
		Order("is_ready ASC, created_at DESC").
		Find(&alterations).Error
	return alterations, err
}
