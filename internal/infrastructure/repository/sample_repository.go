package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	domainRepo "github.com/alhuzaifa/tailor-api/internal/domain/repository"
)

type sampleRepository struct {
	db *gorm.DB
}

// NewSampleRepository creates a new sample repository
func NewSampleRepository(db *gorm.DB) domainRepo.SampleRepository {
	return &sampleRepository{db: db}
}

func (r *sampleRepository) Create(ctx context.Context, sample *entity.Sample) error {
	return r.db.WithContext(ctx).Create(sample).Error
}

func (r *sampleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sample, error) {
	var sample entity.Sample
	err := r.db.WithContext(ctx).First(&sample, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sample, err
}

func (r *sampleRepository) Update(ctx context.Context, sample *entity.Sample) error {
	return r.db.WithContext(ctx).Save(sample).Error
}

func (r *sampleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Sample{}, "id = ?", id).Error
}

func (r *sampleRepository) List(ctx context.Context) ([]entity.Sample, error) {
	var samples []entity.Sample
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&samples).Error
	return samples, err
}
