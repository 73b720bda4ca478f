package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
)

// SampleRepository defines the interface for design sample data operations
type SampleRepository interface {
	Create(ctx context.Context, sample *entity.Sample) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sample, error)
	Update(ctx context.Context, sample *entity.Sample) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns the catalog newest first.
	List(ctx context.Context) ([]entity.Sample, error)
}
