package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	domainRepo "github.com/alhuzaifa/tailor-api/internal/domain/repository"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_items.position ASC")
		}).
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) GetByBillNo(ctx context.Context, billNo string) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_items.position ASC")
		}).
		First(&bill, "bill_no = ?", billNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

// Update writes the bill and replaces its item rows with the ones on
// the aggregate. Save alone only upserts, leaving rows dropped from the
// slice behind, so stale items are deleted first in the same transaction.
func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		kept := make([]uuid.UUID, 0, len(bill.Items))
		for _, item := range bill.Items {
			if item.ID != uuid.Nil {
				kept = append(kept, item.ID)
			}
		}
		stale := tx.Where("bill_id = ?", bill.ID)
		if len(kept) > 0 {
			stale = stale.Where("id NOT IN ?", kept)
		}
		if err := stale.Delete(&entity.BillItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(bill).Error
	})
}

// Delete permanently removes the bill, its items and every alteration
// filed under the same bill number, so no orphaned paperwork survives.
func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bill entity.Bill
		if err := tx.First(&bill, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("bill_id = ?", id).Delete(&entity.BillItem{}).Error; err != nil {
			return err
		}
		if bill.BillNo != "" {
			if err := tx.Where("bill_no = ?", bill.BillNo).Delete(&entity.Alteration{}).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&entity.Bill{}, "id = ?", id).Error
	})
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{})

	if params.Search != "" {
		query = query.Where("bill_no ILIKE ? OR customer_name ILIKE ? OR mobile ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_items.position ASC")
		}).
		Order(sortBy + " " + sortOrder).
		Find(&bills).Error

	return bills, total, err
}

// ListWithCursor returns bills using cursor-based pagination
func (r *billRepository) ListWithCursor(ctx context.Context, params *domainRepo.BillCursorFilterParams) ([]entity.Bill, error) {
	var bills []entity.Bill

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Bill{})

	if params.Search != "" {
		query = query.Where("bill_no ILIKE ? OR customer_name ILIKE ? OR mobile ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_items.position ASC")
		}).
		Order("created_at DESC, id DESC").
		Find(&bills).Error

	return bills, err
}

func (r *billRepository) ListAll(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_items.position ASC")
		}).
		Order("created_at DESC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) NewestBillNo(ctx context.Context) (string, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Select("bill_no").
		First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return bill.BillNo, err
}

func (r *billRepository) NextBillNo(ctx context.Context) (string, error) {
	var seq entity.BillSequence
	err := r.db.WithContext(ctx).
		Raw("UPDATE bill_sequences SET last_no = last_no + 1 WHERE id = 1 RETURNING last_no, prefix").
		Scan(&seq).Error
	if err != nil {
		return "", err
	}
	return seq.Prefix + strconv.FormatInt(seq.LastNo, 10), nil
}

func (r *billRepository) UpdateItem(ctx context.Context, item *entity.BillItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *billRepository) GetItem(ctx context.Context, itemID uuid.UUID) (*entity.BillItem, error) {
	var item entity.BillItem
	err := r.db.WithContext(ctx).
		Preload("Bill").
		First(&item, "id = ?", itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *billRepository) AssignAll(ctx context.Context, billID uuid.UUID, workerName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Bill{}).
			Where("id = ?", billID).
			Update("assigned_to", workerName).Error; err != nil {
			return err
		}
		return tx.Model(&entity.BillItem{}).
			Where("bill_id = ?", billID).
			Update("assigned_to", workerName).Error
	})
}

func (r *billRepository) ItemsAssignedTo(ctx context.Context, workerName string) ([]entity.BillItem, error) {
	var items []entity.BillItem
	err := r.db.WithContext(ctx).
		Where("assigned_to = ?", workerName).
		Preload("Bill").
		Order("created_at ASC, position ASC").
		Find(&items).Error
	return items, err
}
