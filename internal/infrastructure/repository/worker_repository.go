package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	domainRepo "github.com/alhuzaifa/tailor-api/internal/domain/repository"
)

type workerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) domainRepo.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, worker *entity.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

func (r *workerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	var worker entity.Worker
	err := r.db.WithContext(ctx).First(&worker, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &worker, err
}

func (r *workerRepository) GetByName(ctx context.Context, name string) (*entity.Worker, error) {
	var worker entity.Worker
	err := r.db.WithContext(ctx).First(&worker, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &worker, err
}

func (r *workerRepository) Update(ctx context.Context, worker *entity.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

func (r *workerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", id).Delete(&entity.ManualItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Worker{}, "id = ?", id).Error
	})
}

func (r *workerRepository) List(ctx context.Context) ([]entity.Worker, error) {
	var workers []entity.Worker
	err := r.db.WithContext(ctx).Order("name ASC").Find(&workers).Error
	return workers, err
}

func (r *workerRepository) CreateManualItem(ctx context.Context, item *entity.ManualItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *workerRepository) GetManualItem(ctx context.Context, id uuid.UUID) (*entity.ManualItem, error) {
	var item entity.ManualItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *workerRepository) UpdateManualItem(ctx context.Context, item *entity.ManualItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *workerRepository) DeleteManualItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ManualItem{}, "id = ?", id).Error
}

func (r *workerRepository) ManualItemsForWorker(ctx context.Context, workerID uuid.UUID) ([]entity.ManualItem, error) {
	var items []entity.ManualItem
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
