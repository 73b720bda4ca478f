package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	"github.com/alhuzaifa/tailor-api/internal/domain/repository"
	"github.com/alhuzaifa/tailor-api/internal/ledger"
	"github.com/alhuzaifa/tailor-api/internal/realtime"
	"github.com/alhuzaifa/tailor-api/pkg/apperror"
	"github.com/alhuzaifa/tailor-api/pkg/whatsapp"
)

// WorkerService handles workers and their task ledgers
type WorkerService struct {
	workerRepo repository.WorkerRepository
	billRepo   repository.BillRepository
	hub        *realtime.Hub
}

// NewWorkerService creates a new worker service
func NewWorkerService(
	workerRepo repository.WorkerRepository,
	billRepo repository.BillRepository,
	hub *realtime.Hub,
) *WorkerService {
	return &WorkerService{
		workerRepo: workerRepo,
		billRepo:   billRepo,
		hub:        hub,
	}
}

// WorkerInput represents the create or update worker input
type WorkerInput struct {
	Name   string
	Mobile string
}

// ManualItemInput represents a manually recorded job for a worker
type ManualItemInput struct {
	BillNo       string
	Name         string
	DeliveryDate string
	WorkerRate   float64
	MoneyPaid    float64
}

// ManualItemPatch patches a manual job. Nil fields are left untouched.
type ManualItemPatch struct {
	BillNo       *string
	Name         *string
	DeliveryDate *string
	WorkerRate   *float64
	MoneyPaid    *float64
	WorkerDone   *bool
}

// LedgerResult is a worker's merged task list with payment totals.
type LedgerResult struct {
	Worker  *entity.Worker `json:"worker"`
	Entries []ledger.Entry `json:"entries"`
	Totals  ledger.Totals  `json:"totals"`
}

// CreateWorker registers a worker. Names must be unique because bill
// items reference workers by name.
func (s *WorkerService) CreateWorker(ctx context.Context, input *WorkerInput) (*entity.Worker, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Worker name is required"},
		})
	}
	if input.Name == entity.UnassignedWorker {
		return nil, apperror.NewBadRequestError("That name is reserved")
	}

	existing, err := s.workerRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A worker with that name already exists")
	}

	worker := &entity.Worker{Name: input.Name, Mobile: input.Mobile}
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, err
	}
	s.hub.Publish(TopicWorkers)
	return worker, nil
}

// GetWorker returns one worker.
func (s *WorkerService) GetWorker(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	worker, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperror.NewNotFoundError("Worker")
	}
	return worker, nil
}

// ListWorkers returns all workers ordered by name.
func (s *WorkerService) ListWorkers(ctx context.Context) ([]entity.Worker, error) {
	return s.workerRepo.List(ctx)
}

// UpdateWorker changes a worker's details. Renaming does not touch bill
// items assigned under the old name; those stay on the old name until
// reassigned.
func (s *WorkerService) UpdateWorker(ctx context.Context, id uuid.UUID, input *WorkerInput) (*entity.Worker, error) {
	worker, err := s.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != worker.Name {
		if input.Name == entity.UnassignedWorker {
			return nil, apperror.NewBadRequestError("That name is reserved")
		}
		existing, err := s.workerRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A worker with that name already exists")
		}
		worker.Name = input.Name
	}
	if input.Mobile != "" {
		worker.Mobile = input.Mobile
	}

	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}
	s.hub.Publish(TopicWorkers)
	return worker, nil
}

// DeleteWorker removes the worker and their manual jobs. Bill items
// still naming the worker keep that name.
func (s *WorkerService) DeleteWorker(ctx context.Context, id uuid.UUID) error {
	worker, err := s.GetWorker(ctx, id)
	if err != nil {
		return err
	}
	if err := s.workerRepo.Delete(ctx, worker.ID); err != nil {
		return err
	}
	s.hub.Publish(TopicWorkers)
	return nil
}

// Ledger merges the worker's assigned bill items with their manual jobs
// and totals the money. query narrows by item name or bill number;
// pendingOnly hides finished work. Matching is by exact worker name.
func (s *WorkerService) Ledger(ctx context.Context, id uuid.UUID, query string, pendingOnly bool) (*LedgerResult, error) {
	worker, err := s.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.billRepo.ItemsAssignedTo(ctx, worker.Name)
	if err != nil {
		return nil, err
	}
	manual, err := s.workerRepo.ManualItemsForWorker(ctx, worker.ID)
	if err != nil {
		return nil, err
	}

	entries := ledger.Filter(ledger.Merge(items, manual), query, pendingOnly)
	return &LedgerResult{
		Worker:  worker,
		Entries: entries,
		Totals:  ledger.ComputeTotals(entries),
	}, nil
}

// AddManualItem records a job handed to the worker outside any bill.
func (s *WorkerService) AddManualItem(ctx context.Context, workerID uuid.UUID, input *ManualItemInput) (*entity.ManualItem, error) {
	worker, err := s.GetWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	var fieldErrors []apperror.FieldError
	if input.BillNo == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "billNo", Message: "Bill number is required"})
	}
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Job name is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	item := &entity.ManualItem{
		WorkerID:     worker.ID,
		BillNo:       input.BillNo,
		Name:         input.Name,
		DeliveryDate: input.DeliveryDate,
		WorkerRate:   input.WorkerRate,
		MoneyPaid:    input.MoneyPaid,
	}
	if err := s.workerRepo.CreateManualItem(ctx, item); err != nil {
		return nil, err
	}
	s.hub.Publish(TopicWorkers)
	return item, nil
}

// UpdateManualItem patches a manual job.
func (s *WorkerService) UpdateManualItem(ctx context.Context, id uuid.UUID, patch *ManualItemPatch) (*entity.ManualItem, error) {
	item, err := s.workerRepo.GetManualItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Manual item")
	}

	if patch.BillNo != nil {
		item.BillNo = *patch.BillNo
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.DeliveryDate != nil {
		item.DeliveryDate = *patch.DeliveryDate
	}
	if patch.WorkerRate != nil {
		item.WorkerRate = *patch.WorkerRate
	}
	if patch.MoneyPaid != nil {
		item.MoneyPaid = *patch.MoneyPaid
	}
	if patch.WorkerDone != nil {
		item.WorkerDone = *patch.WorkerDone
	}

	if err := s.workerRepo.UpdateManualItem(ctx, item); err != nil {
		return nil, err
	}
	s.hub.Publish(TopicWorkers)
	return item, nil
}

// DeleteManualItem drops a manual job from the ledger for good.
func (s *WorkerService) DeleteManualItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.workerRepo.GetManualItem(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Manual item")
	}
	if err := s.workerRepo.DeleteManualItem(ctx, id); err != nil {
		return err
	}
	s.hub.Publish(TopicWorkers)
	return nil
}

// UnassignBillItem takes a bill item off the worker's ledger without
// touching the garment itself: the assignment, money fields and done
// flag reset, while name, price, completion and sent-to-worker stay.
func (s *WorkerService) UnassignBillItem(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.billRepo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Bill item")
	}

	item.AssignedTo = entity.UnassignedWorker
	item.WorkerRate = 0
	item.MoneyPaid = 0
	item.WorkerDone = false

	item.Bill = nil
	if err := s.billRepo.UpdateItem(ctx, item); err != nil {
		return err
	}
	s.hub.Publish(TopicWorkers)
	s.hub.Publish(TopicBills)
	return nil
}

// TasksLink builds the WhatsApp message link listing the worker's
// pending jobs.
func (s *WorkerService) TasksLink(ctx context.Context, id uuid.UUID) (string, error) {
	result, err := s.Ledger(ctx, id, "", true)
	if err != nil {
		return "", err
	}
	if len(result.Entries) == 0 {
		return "", apperror.NewBadRequestError("No pending tasks for this worker")
	}

	tasks := make([]whatsapp.Task, len(result.Entries))
	for i, e := range result.Entries {
		tasks[i] = whatsapp.Task{
			BillNo:       e.BillNo,
			Name:         e.Name,
			DeliveryDate: e.DeliveryDate,
			WorkerRate:   e.WorkerRate,
		}
	}
	link := whatsapp.Link(result.Worker.Mobile, whatsapp.WorkerTasks(result.Worker.Name, tasks))
	if link == "" {
		return "", apperror.NewBadRequestError("Worker has no mobile number on file")
	}
	return link, nil
}
