package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
)

// WorkerRepository defines the interface for worker data operations
type WorkerRepository interface {
	Create(ctx context.Context, worker *entity.Worker) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error)
	GetByName(ctx context.Context, name string) (*entity.Worker, error)
	Update(ctx context.Context, worker *entity.Worker) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Worker, error)

	CreateManualItem(ctx context.Context, item *entity.ManualItem) error
	GetManualItem(ctx context.Context, id uuid.UUID) (*entity.ManualItem, error)
	UpdateManualItem(ctx context.Context, item *entity.ManualItem) error
	DeleteManualItem(ctx context.Context, id uuid.UUID) error
	ManualItemsForWorker(ctx context.Context, workerID uuid.UUID) ([]entity.ManualItem, error)
}
