// Package ledger builds the per-worker task ledger by merging bill items
// assigned to a worker with the worker's manually recorded jobs, and
// computes the payment totals shown on the worker page.
package ledger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
)

// Source tells which store an entry came from.
type Source string

const (
	SourceBill   Source = "bill"
	SourceManual Source = "manual"
)

// Entry is one row in a worker's ledger. Bill-backed entries carry the
// bill and item identifiers; manual entries carry only ManualID.
type Entry struct {
	Source Source `json:"source"`

	BillID       uuid.UUID `json:"billId,omitempty"`
	BillNo       string    `json:"billNo,omitempty"`
	ItemID       uuid.UUID `json:"itemId,omitempty"`
	ItemIndex    int       `json:"itemIndex"`
	DeliveryDate string    `json:"deliveryDate,omitempty"`

	ManualID uuid.UUID `json:"manualId,omitempty"`

	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Completed    bool    `json:"completed"`
	SentToWorker bool    `json:"sentToWorker"`
	WorkerDone   bool    `json:"workerDone"`
	WorkerRate   float64 `json:"workerRate"`
	MoneyPaid    float64 `json:"moneyPaid"`
}

// Totals is the payment summary over a set of entries. Balance is not
// clamped; overpaying a worker shows as a negative balance.
type Totals struct {
	TotalWork float64 `json:"totalWork"`
	TotalPaid float64 `json:"totalPaid"`
	Balance   float64 `json:"balance"`
}

// FromBillItem converts an assigned bill item into a ledger entry. The
// item's parent bill must be preloaded.
func FromBillItem(item entity.BillItem, bill *entity.Bill) Entry {
	e := Entry{
		Source:       SourceBill,
		ItemID:       item.ID,
		ItemIndex:    item.Position,
		Name:         item.Name,
		Price:        item.Price,
		Completed:    item.Completed,
		SentToWorker: item.SentToWorker,
		WorkerDone:   item.WorkerDone,
		WorkerRate:   item.WorkerRate,
		MoneyPaid:    item.MoneyPaid,
	}
	if bill != nil {
		e.BillID = bill.ID
		e.BillNo = bill.BillNo
		e.DeliveryDate = bill.DeliveryDate
	}
	return e
}

// FromManualItem converts a manually recorded job into a ledger entry.
// Manual jobs were handed to the worker directly, so they always count
// as sent.
func FromManualItem(item entity.ManualItem) Entry {
	return Entry{
		Source:       SourceManual,
		ManualID:     item.ID,
		BillNo:       item.BillNo,
		DeliveryDate: item.DeliveryDate,
		Name:         item.Name,
		Completed:    item.WorkerDone,
		SentToWorker: true,
		WorkerDone:   item.WorkerDone,
		WorkerRate:   item.WorkerRate,
		MoneyPaid:    item.MoneyPaid,
	}
}

// Merge produces the full ledger: bill-backed entries first in the
// order given, then manual entries.
func Merge(items []entity.BillItem, manual []entity.ManualItem) []Entry {
	entries := make([]Entry, 0, len(items)+len(manual))
	for _, item := range items {
		entries = append(entries, FromBillItem(item, item.Bill))
	}
	for _, m := range manual {
		entries = append(entries, FromManualItem(m))
	}
	return entries
}

// Filter narrows a ledger. A non-empty query keeps entries whose name
// or bill number contains it, case-insensitively. pendingOnly keeps
// entries the worker has not finished.
func Filter(entries []Entry, query string, pendingOnly bool) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if pendingOnly && e.WorkerDone {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Name), query) &&
			!strings.Contains(strings.ToLower(e.BillNo), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ComputeTotals sums the rates and payments over the entries.
func ComputeTotals(entries []Entry) Totals {
	var t Totals
	for _, e := range entries {
		t.TotalWork += e.WorkerRate
		t.TotalPaid += e.MoneyPaid
	}
	t.Balance = t.TotalWork - t.TotalPaid
	return t
}
