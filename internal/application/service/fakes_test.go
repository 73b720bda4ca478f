package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	"github.com/alhuzaifa/tailor-api/internal/domain/repository"
)

// In-memory repositories for service tests.

type fakeBillRepo struct {
	bills     map[uuid.UUID]*entity.Bill
	order     []uuid.UUID // creation order
	seq       int64
	seqPrefix string
	deleted   []uuid.UUID
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]*entity.Bill), seq: 1000}
}

func (r *fakeBillRepo) Create(_ context.Context, bill *entity.Bill) error {
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	for i := range bill.Items {
		if bill.Items[i].ID == uuid.Nil {
			bill.Items[i].ID = uuid.New()
		}
		bill.Items[i].BillID = bill.ID
	}
	r.bills[bill.ID] = bill
	r.order = append(r.order, bill.ID)
	return nil
}

func (r *fakeBillRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, ok := r.bills[id]
	if !ok {
		return nil, nil
	}
	return bill, nil
}

func (r *fakeBillRepo) GetByBillNo(_ context.Context, billNo string) (*entity.Bill, error) {
	for _, bill := range r.bills {
		if bill.BillNo == billNo {
			return bill, nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) Update(_ context.Context, bill *entity.Bill) error {
	for i := range bill.Items {
		if bill.Items[i].ID == uuid.Nil {
			bill.Items[i].ID = uuid.New()
		}
		bill.Items[i].BillID = bill.ID
	}
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bills, id)
	r.deleted = append(r.deleted, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeBillRepo) List(_ context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	all := r.all()
	return all, int64(len(all)), nil
}

func (r *fakeBillRepo) ListWithCursor(_ context.Context, params *repository.BillCursorFilterParams) ([]entity.Bill, error) {
	return r.all(), nil
}

func (r *fakeBillRepo) ListAll(_ context.Context) ([]entity.Bill, error) {
	return r.all(), nil
}

func (r *fakeBillRepo) all() []entity.Bill {
	bills := make([]entity.Bill, 0, len(r.order))
	for _, id := range r.order {
		bills = append(bills, *r.bills[id])
	}
	return bills
}

func (r *fakeBillRepo) NewestBillNo(_ context.Context) (string, error) {
	if len(r.order) == 0 {
		return "", nil
	}
	return r.bills[r.order[len(r.order)-1]].BillNo, nil
}

func (r *fakeBillRepo) NextBillNo(_ context.Context) (string, error) {
	r.seq++
	return r.seqPrefix + strconv.FormatInt(r.seq, 10), nil
}

func (r *fakeBillRepo) UpdateItem(_ context.Context, item *entity.BillItem) error {
	bill, ok := r.bills[item.BillID]
	if !ok {
		return nil
	}
	for i := range bill.Items {
		if bill.Items[i].ID == item.ID {
			bill.Items[i] = *item
			return nil
		}
	}
	return nil
}

func (r *fakeBillRepo) GetItem(_ context.Context, itemID uuid.UUID) (*entity.BillItem, error) {
	for _, bill := range r.bills {
		for i := range bill.Items {
			if bill.Items[i].ID == itemID {
				item := bill.Items[i]
				item.Bill = bill
				return &item, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) AssignAll(_ context.Context, billID uuid.UUID, workerName string) error {
	bill, ok := r.bills[billID]
	if !ok {
		return nil
	}
	bill.AssignedTo = workerName
	for i := range bill.Items {
		bill.Items[i].AssignedTo = workerName
	}
	return nil
}

func (r *fakeBillRepo) ItemsAssignedTo(_ context.Context, workerName string) ([]entity.BillItem, error) {
	var items []entity.BillItem
	for _, id := range r.order {
		bill := r.bills[id]
		for _, item := range bill.Items {
			if item.AssignedTo == workerName {
				item.Bill = bill
				items = append(items, item)
			}
		}
	}
	return items, nil
}

type fakeWorkerRepo struct {
	workers map[uuid.UUID]*entity.Worker
	manual  map[uuid.UUID]*entity.ManualItem
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{
		workers: make(map[uuid.UUID]*entity.Worker),
		manual:  make(map[uuid.UUID]*entity.ManualItem),
	}
}

func (r *fakeWorkerRepo) Create(_ context.Context, worker *entity.Worker) error {
	if worker.ID == uuid.Nil {
		worker.ID = uuid.New()
	}
	r.workers[worker.ID] = worker
	return nil
}

func (r *fakeWorkerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Worker, error) {
	worker, ok := r.workers[id]
	if !ok {
		return nil, nil
	}
	return worker, nil
}

func (r *fakeWorkerRepo) GetByName(_ context.Context, name string) (*entity.Worker, error) {
	for _, worker := range r.workers {
		if worker.Name == name {
			return worker, nil
		}
	}
	return nil, nil
}

func (r *fakeWorkerRepo) Update(_ context.Context, worker *entity.Worker) error {
	r.workers[worker.ID] = worker
	return nil
}

func (r *fakeWorkerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.workers, id)
	for mid, item := range r.manual {
		if item.WorkerID == id {
			delete(r.manual, mid)
		}
	}
	return nil
}

func (r *fakeWorkerRepo) List(_ context.Context) ([]entity.Worker, error) {
	workers := make([]entity.Worker, 0, len(r.workers))
	for _, worker := range r.workers {
		workers = append(workers, *worker)
	}
	sort.Slice(workers, func(i, j int) bool { return workers[i].Name < workers[j].Name })
	return workers, nil
}

func (r *fakeWorkerRepo) CreateManualItem(_ context.Context, item *entity.ManualItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.manual[item.ID] = item
	return nil
}

func (r *fakeWorkerRepo) GetManualItem(_ context.Context, id uuid.UUID) (*entity.ManualItem, error) {
	item, ok := r.manual[id]
	if !ok {
		return nil, nil
	}
	return item, nil
}

func (r *fakeWorkerRepo) UpdateManualItem(_ context.Context, item *entity.ManualItem) error {
	r.manual[item.ID] = item
	return nil
}

func (r *fakeWorkerRepo) DeleteManualItem(_ context.Context, id uuid.UUID) error {
	delete(r.manual, id)
	return nil
}

func (r *fakeWorkerRepo) ManualItemsForWorker(_ context.Context, workerID uuid.UUID) ([]entity.ManualItem, error) {
	var items []entity.ManualItem
	for _, item := range r.manual {
		if item.WorkerID == workerID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.FavouriteCustomer
	profiles  map[uuid.UUID]*entity.MeasurementProfile
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers: make(map[string]*entity.FavouriteCustomer),
		profiles:  make(map[uuid.UUID]*entity.MeasurementProfile),
	}
}

func (r *fakeCustomerRepo) Upsert(_ context.Context, customer *entity.FavouriteCustomer) error {
	r.customers[customer.Mobile] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByMobile(_ context.Context, mobile string) (*entity.FavouriteCustomer, error) {
	customer, ok := r.customers[mobile]
	if !ok {
		return nil, nil
	}
	return customer, nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, mobile string) error {
	delete(r.customers, mobile)
	for id, profile := range r.profiles {
		if profile.CustomerMobile == mobile {
			delete(r.profiles, id)
		}
	}
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context) ([]entity.FavouriteCustomer, error) {
	customers := make([]entity.FavouriteCustomer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, *customer)
	}
	return customers, nil
}

func (r *fakeCustomerRepo) CreateProfile(_ context.Context, profile *entity.MeasurementProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeCustomerRepo) GetProfile(_ context.Context, id uuid.UUID) (*entity.MeasurementProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	return profile, nil
}

func (r *fakeCustomerRepo) UpdateProfile(_ context.Context, profile *entity.MeasurementProfile) error {
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeCustomerRepo) DeleteProfile(_ context.Context, id uuid.UUID) error {
	delete(r.profiles, id)
	return nil
}

func (r *fakeCustomerRepo) ProfilesForCustomer(_ context.Context, mobile string) ([]entity.MeasurementProfile, error) {
	var profiles []entity.MeasurementProfile
	for _, profile := range r.profiles {
		if profile.CustomerMobile == mobile {
			profiles = append(profiles, *profile)
		}
	}
	return profiles, nil
}

type fakeSampleRepo struct {
	samples map[uuid.UUID]*entity.Sample
	order   []uuid.UUID // creation order
}

func newFakeSampleRepo() *fakeSampleRepo {
	return &fakeSampleRepo{samples: make(map[uuid.UUID]*entity.Sample)}
}

func (r *fakeSampleRepo) Create(_ context.Context, sample *entity.Sample) error {
	if sample.ID == uuid.Nil {
		sample.ID = uuid.New()
	}
	r.samples[sample.ID] = sample
	r.order = append(r.order, sample.ID)
	return nil
}

func (r *fakeSampleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sample, error) {
	sample, ok := r.samples[id]
	if !ok {
		return nil, nil
	}
	return sample, nil
}

func (r *fakeSampleRepo) Update(_ context.Context, sample *entity.Sample) error {
	r.samples[sample.ID] = sample
	return nil
}

func (r *fakeSampleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.samples, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeSampleRepo) List(_ context.Context) ([]entity.Sample, error) {
	samples := make([]entity.Sample, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		samples = append(samples, *r.samples[r.order[i]])
	}
	return samples, nil
}

type fakeAlterationRepo struct {
	alterations map[uuid.UUID]*entity.Alteration
}

func newFakeAlterationRepo() *fakeAlterationRepo {
	return &fakeAlterationRepo{alterations: make(map[uuid.UUID]*entity.Alteration)}
}

func (r *fakeAlterationRepo) Create(_ context.Context, alteration *entity.Alteration) error {
	if alteration.ID == uuid.Nil {
		alteration.ID = uuid.New()
	}
	r.alterations[alteration.ID] = alteration
	return nil
}

func (r *fakeAlterationRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Alteration, error) {
	alteration, ok := r.alterations[id]
	if !ok {
		return nil, nil
	}
	return alteration, nil
}

func (r *fakeAlterationRepo) Update(_ context.Context, alteration *entity.Alteration) error {
	r.alterations[alteration.ID] = alteration
	return nil
}

func (r *fakeAlterationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.alterations, id)
	return nil
}

func (r *fakeAlterationRepo) List(_ context.Context) ([]entity.Alteration, error) {
	var pending, ready []entity.Alteration
	for _, alteration := range r.alterations {
		if alteration.IsReady {
			ready = append(ready, *alteration)
		} else {
			pending = append(pending, *alteration)
		}
	}
	return append(pending, ready...), nil
}

func (r *fakeAlterationRepo) Search(_ context.Context, query string) ([]entity.Alteration, error) {
	var matches []entity.Alteration
	for _, alteration := range r.alterations {
		if alteration.BillNo == query || alteration.Mobile == query {
			matches = append(matches, *alteration)
		}
	}
	return matches, nil
}
