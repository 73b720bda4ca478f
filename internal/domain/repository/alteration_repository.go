package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
)

// AlterationRepository defines the interface for alteration data operations
type AlterationRepository interface {
	Create(ctx context.Context, alteration *entity.Alteration) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Alteration, error)
	Update(ctx context.Context, alteration *entity.Alteration) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns alterations with pending work first, newest within
	// each group.
	List(ctx context.Context) ([]entity.Alteration, error)
	// Search matches the bill number or the customer mobile exactly.
	Search(ctx context.Context, query string) ([]entity.Alteration, error)
}
