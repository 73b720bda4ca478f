package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	"github.com/alhuzaifa/tailor-api/pkg/pagination"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetByBillNo(ctx context.Context, billNo string) (*entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
	// Delete removes the bill, its items and every alteration carrying
	// the same bill number in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	ListWithCursor(ctx context.Context, params *BillCursorFilterParams) ([]entity.Bill, error)
	ListAll(ctx context.Context) ([]entity.Bill, error)

	// NewestBillNo returns the bill number of the most recently created
	// bill, or "" when the ledger is empty. Used by legacy allocation.
	NewestBillNo(ctx context.Context) (string, error)
	// NextBillNo atomically advances the bill sequence and returns the
	// allocated number.
	NextBillNo(ctx context.Context) (string, error)

	UpdateItem(ctx context.Context, item *entity.BillItem) error
	GetItem(ctx context.Context, itemID uuid.UUID) (*entity.BillItem, error)
	// AssignAll points the bill and every one of its items at the worker.
	AssignAll(ctx context.Context, billID uuid.UUID, workerName string) error
	// ItemsAssignedTo returns items across all bills carrying the worker
	// name, with their parent bill preloaded.
	ItemsAssignedTo(ctx context.Context, workerName string) ([]entity.BillItem, error)
}

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
}

// BillCursorFilterParams contains cursor-based filtering for bill queries
type BillCursorFilterParams struct {
	Cursor *pagination.CursorParams
	Search string
}
