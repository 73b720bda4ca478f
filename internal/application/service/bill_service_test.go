package service

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	"github.com/alhuzaifa/tailor-api/internal/domain/enum"
	"github.com/alhuzaifa/tailor-api/internal/realtime"
	"github.com/alhuzaifa/tailor-api/pkg/apperror"
	"github.com/alhuzaifa/tailor-api/pkg/pagination"
)

const tolerance = 1e-9

func newBillService(mode enum.BillNoMode) (*BillService, *fakeBillRepo, *fakeWorkerRepo, *fakeCustomerRepo) {
	billRepo := newFakeBillRepo()
	workerRepo := newFakeWorkerRepo()
	customerRepo := newFakeCustomerRepo()
	svc := NewBillService(billRepo, workerRepo, customerRepo, realtime.NewHub(), mode)
	return svc, billRepo, workerRepo, customerRepo
}

func TestCreateBillComputesTotals(t *testing.T) {
	svc, _, _, _ := newBillService(enum.BillNoModeAtomic)

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		CustomerName:   "Ahmed",
		Mobile:         "+971501234567",
		OrderDate:      "2026-03-01",
		DeliveryDate:   "2026-03-20",
		AdvancePayment: 50,
		Items: []BillItemInput{
			{Name: "Kandura", Price: 100},
			{Name: "Suit", Price: 200},
		},
	})
	if err != nil {
		t.Fatalf("CreateBill returned error: %v", err)
	}

	if math.Abs(bill.TotalOriginal-300) > tolerance {
		t.Errorf("TotalOriginal = %v, want 300", bill.TotalOriginal)
	}
	if math.Abs(bill.TotalVat-15) > tolerance {
		t.Errorf("TotalVat = %v, want 15", bill.TotalVat)
	}
	if math.Abs(bill.TotalAmount-315) > tolerance {
		t.Errorf("TotalAmount = %v, want 315", bill.TotalAmount)
	}
	if balance := svc.Balance(bill); math.Abs(balance-265) > tolerance {
		t.Errorf("Balance = %v, want 265", balance)
	}
	if bill.BillNo != "1001" {
		t.Errorf("BillNo = %q, want 1001", bill.BillNo)
	}
	if len(bill.Items) != 2 || bill.Items[0].Position != 0 || bill.Items[1].Position != 1 {
		t.Errorf("items did not keep their positions: %+v", bill.Items)
	}
	if bill.AssignedTo != entity.UnassignedWorker {
		t.Errorf("AssignedTo = %q, want %q", bill.AssignedTo, entity.UnassignedWorker)
	}
}

func TestCreateBillValidation(t *testing.T) {
	svc, _, _, _ := newBillService(enum.BillNoModeAtomic)

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{Mobile: "0501234567"})
	if err == nil {
		t.Fatal("expected validation error for missing customer name")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 {
		t.Errorf("error code = %d, want 422", appErr.Code)
	}

	_, err = svc.CreateBill(context.Background(), &CreateBillInput{
		CustomerName: "Ahmed",
		Mobile:       "0501234567",
		OrderDate:    "01/03/2026",
		Items:        []BillItemInput{{Name: "Kandura", Price: 100}},
	})
	if err == nil {
		t.Fatal("expected validation error for malformed date")
	}

	_, err = svc.CreateBill(context.Background(), &CreateBillInput{
		CustomerName: "Ahmed",
		Mobile:       "0501234567",
	})
	if err == nil {
		t.Fatal("expected validation error for a bill with no items")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 422 {
		t.Errorf("error code = %d, want 422", appErr.Code)
	}
}

func TestLegacyBillNoIncrements(t *testing.T) {
	svc, _, _, _ := newBillService(enum.BillNoModeLegacy)
	ctx := context.Background()

	first, err := svc.CreateBill(ctx, &CreateBillInput{
		CustomerName: "A", Mobile: "1",
		Items: []BillItemInput{{Name: "Kandura", Price: 100}},
	})
	if err != nil {
		t.Fatalf("CreateBill returned error: %v", err)
	}
	if first.BillNo != "1001" {
		t.Errorf("first BillNo = %q, want 1001 on an empty ledger", first.BillNo)
	}

	second, err := svc.CreateBill(ctx, &CreateBillInput{
		CustomerName: "B", Mobile: "2",
		Items: []BillItemInput{{Name: "Suit", Price: 200}},
	})
	if err != nil {
		t.Fatalf("CreateBill returned error: %v", err)
	}
	if second.BillNo != "1002" {
		t.Errorf("second BillNo = %q, want 1002", second.BillNo)
	}
}

func TestAtomicBillNoCarriesSequencePrefix(t *testing.T) {
	svc, billRepo, _, _ := newBillService(enum.BillNoModeAtomic)
	billRepo.seqPrefix = "AH-"

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		CustomerName: "Ahmed",
		Mobile:       "0501234567",
		Items:        []BillItemInput{{Name: "Kandura", Price: 100}},
	})
	if err != nil {
		t.Fatalf("CreateBill returned error: %v", err)
	}
	if bill.BillNo != "AH-1001" {
		t.Errorf("BillNo = %q, want AH-1001", bill.BillNo)
	}
}

func TestCreateFavouriteBillFilesCustomer(t *testing.T) {
	svc, _, _, customerRepo := newBillService(enum.BillNoModeAtomic)

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		CustomerName: "Ahmed",
		Mobile:       "+971 50-123 4567",
		IsFavorite:   true,
		Items:        []BillItemInput{{Name: "Kandura", Price: 100}},
	})
	if err != nil {
		t.Fatalf("CreateBill returned error: %v", err)
	}

	customer := customerRepo.customers["971501234567"]
	if customer == nil {
		t.Fatal("favourite customer was not filed under the normalized mobile")
	}
	if customer.CustomerName != "Ahmed" || customer.RawMobile != "+971 50-123 4567" {
		t.Errorf("favourite customer = %+v", customer)
	}
}

func TestUpdateItemPriceRecomputesTotals(t *testing.T) {
	svc, _, _, _ := newBillService(enum.BillNoModeAtomic)
	ctx := context.Background()

	bill, err := svc.CreateBill(ctx, &CreateBillInput{
		CustomerName: "Ahmed",
		Mobile:       "0501234567",
		Items:        []BillItemInput{{Name: "Kandura", Price: 100}},
	})
	if err != nil {
		t.Fatalf("CreateBill returned error: %v", err)
	}

	newPrice := 200.0
	updated, err := svc.UpdateItem(ctx, bill.Items[0].ID, &UpdateItemInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("UpdateItem returned error: %v", err)
	}
	if math.Abs(updated.TotalAmount-210) > tolerance {
		t.Errorf("TotalAmount = %v, want 210 after repricing", updated.TotalAmount)
	}
}

func TestUpdateBillReplacesItems(t *testing.T) {
	svc, billRepo, workerRepo, _ := newBillService(enum.BillNoModeAtomic)
	ctx := context.Background()

	bill, err := svc.CreateBill(ctx, &CreateBillInput{
		CustomerName: "Ahmed",
		Mobile:       "0501234567",
		Items:        []BillItemInput{{Name: "Kandura", Price: 100}, {Name: "Abaya", Price: 200}},
	})
	if err != nil {
		t.Fatalf("CreateBill returned error: %v", err)
	}
	workerRepo.Create(ctx, &entity.Worker{Name: "Ali"})
	if _, err := svc.AssignWorker(ctx, bill.ID, "Ali"); err != nil {
		t.Fatal(err)
	}
	firstItemID := billRepo.bills[bill.ID].Items[0].ID

	updated, err := svc.UpdateBill(ctx, bill.ID, &UpdateBillInput{
		Items: []BillItemInput{{Name: "Kandura", Price: 150}},
	})
	if err != nil {
		t.Fatalf("UpdateBill returned error: %v", err)
	}

	stored := billRepo.bills[bill.ID]
	if len(stored.Items) != 1 {
		t.Fatalf("got %d items after replacement, want 1: %+v", len(stored.Items), stored.Items)
	}
	if stored.Items[0].Name != "Kandura" || math.Abs(stored.Items[0].Price-150) > tolerance {
		t.Errorf("stored item = %+v, want Kandura at 150", stored.Items[0])
	}
	if math.Abs(updated.TotalAmount-157.5) > tolerance {
		t.Errorf("TotalAmount = %v, want 157.5 from the replaced list", updated.TotalAmount)
	}
	if stored.Items[0].ID != firstItemID {
		t.Errorf("item at position 0 did not keep its row id")
	}
	if stored.Items[0].AssignedTo != "Ali" {
		t.Errorf("item at position 0 lost its worker: AssignedTo = %q", stored.Items[0].AssignedTo)
	}
}

func TestAssignWorker(t *testing.T) {
	svc, billRepo, workerRepo, _ := newBillService(enum.BillNoModeAtomic)
	ctx := context.Background()

	bill, err := svc.CreateBill(ctx, &CreateBillInput{
		CustomerName: "Ahmed",
		Mobile:       "0501234567",
		Items:        []BillItemInput{{Name: "Kandura", Price: 100}, {Name: "Suit", Price: 200}},
	})
	if err != nil {
		t.Fatalf("CreateBill returned error: %v", err)
	}

	if _, err := svc.AssignWorker(ctx, bill.ID, "Ali"); err == nil {
		t.Fatal("expected not found error for unknown worker")
	}

	workerRepo.Create(ctx, &entity.Worker{Name: "Ali"})
	assigned, err := svc.AssignWorker(ctx, bill.ID, "Ali")
	if err != nil {
		t.Fatalf("AssignWorker returned error: %v", err)
	}
	if assigned.AssignedTo != "Ali" {
		t.Errorf("bill AssignedTo = %q, want Ali", assigned.AssignedTo)
	}
	for _, item := range billRepo.bills[bill.ID].Items {
		if item.AssignedTo != "Ali" {
			t.Errorf("item %q AssignedTo = %q, want Ali", item.Name, item.AssignedTo)
		}
	}
}

func TestListBillsTagFilter(t *testing.T) {
	svc, _, _, _ := newBillService(enum.BillNoModeAtomic)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	// Urgent: due in three days, still pending.
	if _, err := svc.CreateBill(ctx, &CreateBillInput{
		CustomerName: "Urgent Customer",
		Mobile:       "1",
		DeliveryDate: "2026-03-13",
		Items:        []BillItemInput{{Name: "Kandura", Price: 100}},
	}); err != nil {
		t.Fatal(err)
	}
	// Relaxed: due in a month.
	if _, err := svc.CreateBill(ctx, &CreateBillInput{
		CustomerName: "Relaxed Customer",
		Mobile:       "2",
		DeliveryDate: "2026-04-10",
		Items:        []BillItemInput{{Name: "Suit", Price: 200}},
	}); err != nil {
		t.Fatal(err)
	}
	// Delivered.
	delivered, err := svc.CreateBill(ctx, &CreateBillInput{
		CustomerName: "Done Customer",
		Mobile:       "3",
		DeliveryDate: "2026-03-12",
		Items:        []BillItemInput{{Name: "Abaya", Price: 150}},
	})
	if err != nil {
		t.Fatal(err)
	}
	flag := true
	if _, err := svc.UpdateBill(ctx, delivered.ID, &UpdateBillInput{Delivered: &flag}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		tag       enum.BillTag
		wantNames []string
	}{
		{tag: enum.BillTagUrgent, wantNames: []string{"Urgent Customer"}},
		{tag: enum.BillTagDone, wantNames: []string{"Done Customer"}},
		{tag: enum.BillTagUndelivered, wantNames: []string{"Urgent Customer", "Relaxed Customer"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			result, err := svc.ListBills(ctx, &ListBillsInput{
				Pagination: pagination.DefaultPagination(),
				Tag:        tt.tag,
			})
			if err != nil {
				t.Fatalf("ListBills returned error: %v", err)
			}
			if len(result.Items) != len(tt.wantNames) {
				t.Fatalf("got %d bills, want %d", len(result.Items), len(tt.wantNames))
			}
			for _, want := range tt.wantNames {
				found := false
				for _, bill := range result.Items {
					if bill.CustomerName == want {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("missing bill for %q", want)
				}
			}
		})
	}
}

func TestDeleteBill(t *testing.T) {
	svc, billRepo, _, _ := newBillService(enum.BillNoModeAtomic)
	ctx := context.Background()

	bill, err := svc.CreateBill(ctx, &CreateBillInput{
		CustomerName: "Ahmed", Mobile: "1",
		Items: []BillItemInput{{Name: "Kandura", Price: 100}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteBill(ctx, bill.ID); err != nil {
		t.Fatalf("DeleteBill returned error: %v", err)
	}
	if _, err := svc.GetBill(ctx, bill.ID); err == nil {
		t.Error("bill still readable after delete")
	}
	if len(billRepo.deleted) != 1 || billRepo.deleted[0] != bill.ID {
		t.Errorf("repo delete not invoked for %s", bill.ID)
	}
}

func TestInvoiceLink(t *testing.T) {
	svc, _, _, _ := newBillService(enum.BillNoModeAtomic)

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		CustomerName:   "Ahmed",
		Mobile:         "+971501234567",
		AdvancePayment: 50,
		Items:          []BillItemInput{{Name: "Kandura", Price: 100}, {Name: "Suit", Price: 200}},
	})
	if err != nil {
		t.Fatal(err)
	}

	link := svc.InvoiceLink(bill)
	if !strings.HasPrefix(link, "https://wa.me/971501234567?text=") {
		t.Errorf("InvoiceLink = %q", link)
	}
}
