package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/calculator"
	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	"github.com/alhuzaifa/tailor-api/internal/domain/enum"
	"github.com/alhuzaifa/tailor-api/internal/domain/repository"
	"github.com/alhuzaifa/tailor-api/internal/realtime"
	"github.com/alhuzaifa/tailor-api/pkg/apperror"
	"github.com/alhuzaifa/tailor-api/pkg/pagination"
	"github.com/alhuzaifa/tailor-api/pkg/whatsapp"
)

// Topics published when ledger data changes.
const (
	TopicBills       = "bills"
	TopicWorkers     = "workers"
	TopicAlterations = "alterations"
	TopicSamples     = "samples"
)

const legacyBillNoFloor = 1000

// BillService handles bill-related operations
type BillService struct {
	billRepo     repository.BillRepository
	workerRepo   repository.WorkerRepository
	customerRepo repository.CustomerRepository
	hub          *realtime.Hub
	billNoMode   enum.BillNoMode
	now          func() time.Time
}

// NewBillService creates a new bill service
func NewBillService(
	billRepo repository.BillRepository,
	workerRepo repository.WorkerRepository,
	customerRepo repository.CustomerRepository,
	hub *realtime.Hub,
	billNoMode enum.BillNoMode,
) *BillService {
	return &BillService{
		billRepo:     billRepo,
		workerRepo:   workerRepo,
		customerRepo: customerRepo,
		hub:          hub,
		billNoMode:   billNoMode,
		now:          time.Now,
	}
}

// BillItemInput represents one line item on a bill
type BillItemInput struct {
	Name  string
	Price float64
	Image string
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	CustomerName   string
	Mobile         string
	OrderDate      string
	DeliveryDate   string
	IsUrgent       bool
	AdvancePayment float64
	AssignedTo     string
	IsFavorite     bool
	Items          []BillItemInput
}

// UpdateBillInput represents the update bill input. Nil fields are left
// untouched; Items, when present, replaces the full item list.
type UpdateBillInput struct {
	CustomerName   *string
	Mobile         *string
	OrderDate      *string
	DeliveryDate   *string
	IsUrgent       *bool
	FullPayment    *bool
	Delivered      *bool
	AdvancePayment *float64
	Items          []BillItemInput
}

// UpdateItemInput patches one bill item. Nil fields are left untouched.
type UpdateItemInput struct {
	Name         *string
	Price        *float64
	Completed    *bool
	Image        *string
	AssignedTo   *string
	WorkerRate   *float64
	MoneyPaid    *float64
	SentToWorker *bool
	WorkerDone   *bool
}

func validateBillInput(customerName, mobile string, dates ...string) []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if customerName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customerName", Message: "Customer name is required"})
	}
	if mobile == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "mobile", Message: "Mobile number is required"})
	}
	for _, d := range dates {
		if d == "" {
			continue
		}
		if _, err := time.Parse(calculator.DateLayout, d); err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "date", Message: "Dates must use YYYY-MM-DD"})
			break
		}
	}
	return fieldErrors
}

// allocateBillNo hands out the next bill number. Legacy mode reproduces
// the old read-newest-and-increment behavior, racy under concurrent
// creates. Atomic mode advances the sequence row instead.
func (s *BillService) allocateBillNo(ctx context.Context) (string, error) {
	if s.billNoMode == enum.BillNoModeAtomic {
		return s.billRepo.NextBillNo(ctx)
	}

	newest, err := s.billRepo.NewestBillNo(ctx)
	if err != nil {
		return "", err
	}
	last := int64(legacyBillNoFloor)
	if newest != "" {
		if n, perr := strconv.ParseInt(newest, 10, 64); perr == nil {
			last = n
		}
	}
	return strconv.FormatInt(last+1, 10), nil
}

// applyTotals recomputes the persisted money summary from the items.
func applyTotals(bill *entity.Bill) {
	lines := make([]calculator.LineItem, len(bill.Items))
	for i, item := range bill.Items {
		lines[i] = calculator.LineItem{Name: item.Name, Price: item.Price}
	}
	totals := calculator.ComputeBillTotals(lines, bill.AdvancePayment)
	bill.TotalOriginal = totals.Subtotal
	bill.TotalVat = totals.Vat
	bill.TotalAmount = totals.GrandTotal
}

// CreateBill allocates a bill number, prices the order and persists it.
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	fieldErrors := validateBillInput(input.CustomerName, input.Mobile, input.OrderDate, input.DeliveryDate)
	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "At least one item is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	billNo, err := s.allocateBillNo(ctx)
	if err != nil {
		return nil, err
	}

	assignedTo := input.AssignedTo
	if assignedTo == "" {
		assignedTo = entity.UnassignedWorker
	}

	bill := &entity.Bill{
		BillNo:         billNo,
		CustomerName:   input.CustomerName,
		Mobile:         input.Mobile,
		OrderDate:      input.OrderDate,
		DeliveryDate:   input.DeliveryDate,
		IsUrgent:       input.IsUrgent,
		IsFavorite:     input.IsFavorite,
		AdvancePayment: input.AdvancePayment,
		AssignedTo:     assignedTo,
		Status:         "Pending",
	}
	for i, item := range input.Items {
		bill.Items = append(bill.Items, entity.BillItem{
			Position:   i,
			Name:       item.Name,
			Price:      item.Price,
			Image:      item.Image,
			AssignedTo: assignedTo,
		})
	}
	applyTotals(bill)

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	if input.IsFavorite {
		s.syncFavourite(ctx, bill)
	}

	s.hub.Publish(TopicBills)
	return bill, nil
}

// GetBill returns one bill with its items.
func (s *BillService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// GetBillByNo returns one bill looked up by its bill number.
func (s *BillService) GetBillByNo(ctx context.Context, billNo string) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByBillNo(ctx, billNo)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBillsInput represents the list bills input
type ListBillsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Tag        enum.BillTag
	SortBy     string
	SortOrder  string
}

// ListBills returns a page of bills. Tag filters other than All are
// derived per bill, so they are applied in memory over the full set and
// paginated afterwards.
func (s *BillService) ListBills(ctx context.Context, input *ListBillsInput) (*pagination.PaginatedResult[entity.Bill], error) {
	if input.Tag != "" && !input.Tag.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown bill tag: " + string(input.Tag))
	}

	if input.Tag == "" || input.Tag == enum.BillTagAll {
		bills, total, err := s.billRepo.List(ctx, &repository.BillFilterParams{
			Pagination: input.Pagination,
			Search:     input.Search,
			SortBy:     input.SortBy,
			SortOrder:  input.SortOrder,
		})
		if err != nil {
			return nil, err
		}
		return pagination.NewPaginatedResult(bills,
			pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)), nil
	}

	bills, err := s.billRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := make([]entity.Bill, 0, len(bills))
	for _, bill := range bills {
		if input.Search != "" && !billMatchesSearch(&bill, input.Search) {
			continue
		}
		if s.billMatchesTag(&bill, input.Tag, now) {
			filtered = append(filtered, bill)
		}
	}

	input.Pagination.Validate()
	total := int64(len(filtered))
	start := input.Pagination.Offset()
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + input.Pagination.PerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return pagination.NewPaginatedResult(filtered[start:end],
		pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)), nil
}

// ListBillsWithCursor returns bills for infinite scrolling.
func (s *BillService) ListBillsWithCursor(ctx context.Context, cursor *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Bill], error) {
	bills, err := s.billRepo.ListWithCursor(ctx, &repository.BillCursorFilterParams{
		Cursor: cursor,
		Search: search,
	})
	if err != nil {
		return nil, err
	}
	meta, page := pagination.NewCursorPagination(bills, cursor.Limit,
		func(b entity.Bill) string { return b.ID.String() },
		func(b entity.Bill) time.Time { return b.CreatedAt })
	return pagination.NewCursorPaginatedResult(page, meta), nil
}

// UpdateBill patches bill fields, replaces items when given, and
// recomputes the money summary.
func (s *BillService) UpdateBill(ctx context.Context, id uuid.UUID, input *UpdateBillInput) (*entity.Bill, error) {
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CustomerName != nil {
		bill.CustomerName = *input.CustomerName
	}
	if input.Mobile != nil {
		bill.Mobile = *input.Mobile
	}
	if input.OrderDate != nil {
		bill.OrderDate = *input.OrderDate
	}
	if input.DeliveryDate != nil {
		bill.DeliveryDate = *input.DeliveryDate
	}
	if input.IsUrgent != nil {
		bill.IsUrgent = *input.IsUrgent
	}
	if input.FullPayment != nil {
		bill.FullPayment = *input.FullPayment
	}
	if input.Delivered != nil {
		bill.Delivered = *input.Delivered
		if *input.Delivered {
			bill.Status = "Delivered"
		} else {
			bill.Status = "Pending"
		}
	}
	if input.AdvancePayment != nil {
		bill.AdvancePayment = *input.AdvancePayment
	}
	if fieldErrors := validateBillInput(bill.CustomerName, bill.Mobile, bill.OrderDate, bill.DeliveryDate); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if input.Items != nil {
		// An edit rewrites the whole item list. Rows that keep their
		// position keep their id, worker state and completion; extra
		// rows are new, dropped positions are deleted by the repository.
		existing := bill.Items
		items := make([]entity.BillItem, len(input.Items))
		for i, item := range input.Items {
			items[i] = entity.BillItem{
				BillID:     bill.ID,
				Position:   i,
				Name:       item.Name,
				Price:      item.Price,
				Image:      item.Image,
				AssignedTo: bill.AssignedTo,
			}
			if i < len(existing) {
				prev := existing[i]
				items[i].ID = prev.ID
				items[i].AssignedTo = prev.AssignedTo
				items[i].Completed = prev.Completed
				items[i].WorkerRate = prev.WorkerRate
				items[i].MoneyPaid = prev.MoneyPaid
				items[i].SentToWorker = prev.SentToWorker
				items[i].WorkerDone = prev.WorkerDone
			}
		}
		bill.Items = items
	}

	applyTotals(bill)
	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}

	s.hub.Publish(TopicBills)
	return bill, nil
}

// DeleteBill removes the bill, its items and its alterations.
func (s *BillService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return err
	}
	if err := s.billRepo.Delete(ctx, bill.ID); err != nil {
		return err
	}
	s.hub.Publish(TopicBills)
	s.hub.Publish(TopicAlterations)
	return nil
}

// UpdateItem patches one item and refreshes the bill totals.
func (s *BillService) UpdateItem(ctx context.Context, itemID uuid.UUID, input *UpdateItemInput) (*entity.Bill, error) {
	item, err := s.billRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Bill item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Completed != nil {
		item.Completed = *input.Completed
	}
	if input.Image != nil {
		item.Image = *input.Image
	}
	if input.AssignedTo != nil {
		item.AssignedTo = *input.AssignedTo
	}
	if input.WorkerRate != nil {
		item.WorkerRate = *input.WorkerRate
	}
	if input.MoneyPaid != nil {
		item.MoneyPaid = *input.MoneyPaid
	}
	if input.SentToWorker != nil {
		item.SentToWorker = *input.SentToWorker
	}
	if input.WorkerDone != nil {
		item.WorkerDone = *input.WorkerDone
	}

	item.Bill = nil
	if err := s.billRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	bill, err := s.GetBill(ctx, item.BillID)
	if err != nil {
		return nil, err
	}
	if input.Price != nil {
		applyTotals(bill)
		if err := s.billRepo.Update(ctx, bill); err != nil {
			return nil, err
		}
	}

	s.hub.Publish(TopicBills)
	s.hub.Publish(TopicWorkers)
	return bill, nil
}

// AssignWorker points the whole bill at one worker.
func (s *BillService) AssignWorker(ctx context.Context, billID uuid.UUID, workerName string) (*entity.Bill, error) {
	if workerName == "" {
		return nil, apperror.NewBadRequestError("Worker name is required")
	}
	if workerName != entity.UnassignedWorker {
		worker, err := s.workerRepo.GetByName(ctx, workerName)
		if err != nil {
			return nil, err
		}
		if worker == nil {
			return nil, apperror.NewNotFoundError("Worker")
		}
	}

	bill, err := s.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	if err := s.billRepo.AssignAll(ctx, bill.ID, workerName); err != nil {
		return nil, err
	}

	s.hub.Publish(TopicBills)
	s.hub.Publish(TopicWorkers)
	return s.GetBill(ctx, billID)
}

// SetFavourite flips the VIP flag. Marking a bill favourite also files
// the customer in the favourites book under their normalized mobile.
func (s *BillService) SetFavourite(ctx context.Context, billID uuid.UUID, favourite bool) (*entity.Bill, error) {
	bill, err := s.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	bill.IsFavorite = favourite
	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}
	if favourite {
		s.syncFavourite(ctx, bill)
	}
	s.hub.Publish(TopicBills)
	return bill, nil
}

func (s *BillService) syncFavourite(ctx context.Context, bill *entity.Bill) {
	mobile := whatsapp.NormalizePhone(bill.Mobile)
	if mobile == "" {
		return
	}
	err := s.customerRepo.Upsert(ctx, &entity.FavouriteCustomer{
		Mobile:       mobile,
		CustomerName: bill.CustomerName,
		RawMobile:    bill.Mobile,
	})
	if err != nil {
		// The bill write already succeeded; losing the favourite sync
		// is not worth failing the request over.
		slog.Error("favourite sync failed", "billNo", bill.BillNo, "error", err)
	}
}

// Tag classifies a bill for list filters and the dashboard.
func (s *BillService) Tag(bill *entity.Bill) enum.BillTag {
	facts := billFacts(bill)
	switch {
	case calculator.IsDelivered(facts):
		return enum.BillTagDone
	case calculator.IsUrgent(facts, s.now()):
		return enum.BillTagUrgent
	default:
		return enum.BillTagUndelivered
	}
}

func (s *BillService) billMatchesTag(bill *entity.Bill, tag enum.BillTag, now time.Time) bool {
	facts := billFacts(bill)
	switch tag {
	case enum.BillTagAll:
		return true
	case enum.BillTagUndelivered:
		return !calculator.IsDelivered(facts)
	case enum.BillTagUrgent:
		return calculator.IsUrgent(facts, now)
	case enum.BillTagDone:
		return calculator.IsDelivered(facts)
	}
	return false
}

func billFacts(bill *entity.Bill) calculator.BillFacts {
	done := make([]bool, len(bill.Items))
	for i, item := range bill.Items {
		done[i] = item.Completed
	}
	return calculator.BillFacts{
		Delivered:    bill.Delivered,
		Status:       bill.Status,
		IsUrgent:     bill.IsUrgent,
		DeliveryDate: bill.DeliveryDate,
		ItemsDone:    done,
	}
}

func billMatchesSearch(bill *entity.Bill, search string) bool {
	return containsFold(bill.BillNo, search) ||
		containsFold(bill.CustomerName, search) ||
		containsFold(bill.Mobile, search)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// DraftTotals prices an unsaved order for the entry screen.
func (s *BillService) DraftTotals(items []BillItemInput, advance float64) calculator.DraftTotals {
	lines := make([]calculator.LineItem, len(items))
	for i, item := range items {
		lines[i] = calculator.LineItem{Name: item.Name, Price: item.Price}
	}
	return calculator.ComputeDraftTotals(lines, advance)
}

// Balance is what the customer still owes on a bill, unclamped.
func (s *BillService) Balance(bill *entity.Bill) float64 {
	return calculator.Round2(bill.TotalAmount - bill.AdvancePayment)
}

// GreetingLink builds the WhatsApp thank-you link sent after creation.
func (s *BillService) GreetingLink(bill *entity.Bill) string {
	return whatsapp.Link(bill.Mobile, whatsapp.OrderGreeting())
}

// InvoiceLink builds the WhatsApp shareable invoice link.
func (s *BillService) InvoiceLink(bill *entity.Bill) string {
	lines := make([]whatsapp.InvoiceLine, len(bill.Items))
	for i, item := range bill.Items {
		lines[i] = whatsapp.InvoiceLine{Name: item.Name, Price: item.Price}
	}
	msg := whatsapp.InvoiceSummary(bill.BillNo, bill.CustomerName, bill.DeliveryDate,
		lines, bill.TotalAmount, bill.AdvancePayment)
	return whatsapp.Link(bill.Mobile, msg)
}

// PickupLink builds the WhatsApp ready-for-pickup link.
func (s *BillService) PickupLink(bill *entity.Bill) string {
	msg := whatsapp.ReadyForPickup(bill.CustomerName, bill.BillNo, s.Balance(bill))
	return whatsapp.Link(bill.Mobile, msg)
}
