package ledger

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
)

const tolerance = 1e-9

func makeBill(billNo string) *entity.Bill {
	return &entity.Bill{
		ID:           uuid.New(),
		BillNo:       billNo,
		DeliveryDate: "2026-04-01",
	}
}

func TestMergeAndTotals(t *testing.T) {
	bill := makeBill("1001")
	items := []entity.BillItem{
		{
			ID:         uuid.New(),
			BillID:     bill.ID,
			Position:   0,
			Name:       "Kandura stitching",
			Price:      150,
			AssignedTo: "Ali",
			WorkerRate: 40,
			Bill:       bill,
		},
	}
	manual := []entity.ManualItem{
		{
			ID:         uuid.New(),
			BillNo:     "walk-in",
			Name:       "Hem adjustment",
			WorkerRate: 60,
			MoneyPaid:  20,
		},
	}

	entries := Merge(items, manual)
	if len(entries) != 2 {
		t.Fatalf("Merge returned %d entries, want 2", len(entries))
	}

	if entries[0].Source != SourceBill {
		t.Errorf("entries[0].Source = %v, want %v", entries[0].Source, SourceBill)
	}
	if entries[0].BillNo != "1001" || entries[0].DeliveryDate != "2026-04-01" {
		t.Errorf("bill entry did not inherit bill fields: %+v", entries[0])
	}
	if entries[1].Source != SourceManual {
		t.Errorf("entries[1].Source = %v, want %v", entries[1].Source, SourceManual)
	}
	if !entries[1].SentToWorker {
		t.Error("manual entries must always count as sent to the worker")
	}

	totals := ComputeTotals(entries)
	if math.Abs(totals.TotalWork-100) > tolerance {
		t.Errorf("TotalWork = %v, want 100", totals.TotalWork)
	}
	if math.Abs(totals.TotalPaid-20) > tolerance {
		t.Errorf("TotalPaid = %v, want 20", totals.TotalPaid)
	}
	if math.Abs(totals.Balance-80) > tolerance {
		t.Errorf("Balance = %v, want 80", totals.Balance)
	}
}

func TestFilter(t *testing.T) {
	entries := []Entry{
		{Name: "Kandura stitching", BillNo: "1001", WorkerDone: false},
		{Name: "Suit jacket", BillNo: "1002", WorkerDone: true},
		{Name: "Abaya embroidery", BillNo: "2001", WorkerDone: false},
	}

	tests := []struct {
		name        string
		query       string
		pendingOnly bool
		wantNames   []string
	}{
		{
			name:      "empty query keeps everything",
			wantNames: []string{"Kandura stitching", "Suit jacket", "Abaya embroidery"},
		},
		{
			name:      "query matches name case-insensitively",
			query:     "SUIT",
			wantNames: []string{"Suit jacket"},
		},
		{
			name:      "query matches bill number substring",
			query:     "100",
			wantNames: []string{"Kandura stitching", "Suit jacket"},
		},
		{
			name:        "pending only drops finished work",
			pendingOnly: true,
			wantNames:   []string{"Kandura stitching", "Abaya embroidery"},
		},
		{
			name:        "query and pending combine",
			query:       "100",
			pendingOnly: true,
			wantNames:   []string{"Kandura stitching"},
		},
		{
			name:      "no match yields empty slice",
			query:     "thobe",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(entries, tt.query, tt.pendingOnly)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("Filter returned %d entries, want %d", len(got), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if got[i].Name != want {
					t.Errorf("entry %d = %q, want %q", i, got[i].Name, want)
				}
			}
		})
	}
}

func TestTotalsUnclamped(t *testing.T) {
	entries := []Entry{{WorkerRate: 30, MoneyPaid: 50}}
	totals := ComputeTotals(entries)
	if math.Abs(totals.Balance-(-20)) > tolerance {
		t.Errorf("Balance = %v, want -20", totals.Balance)
	}
}
