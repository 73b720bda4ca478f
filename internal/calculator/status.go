package calculator

import (
	"math"
	"time"
)

// UrgencyWindowDays is how many days before the delivery date a bill
// starts counting as urgent.
const UrgencyWindowDays = 5

// DateLayout is the storage format for order and delivery dates.
const DateLayout = "2006-01-02"

// BillFacts carries the raw fields the classifier reads off a bill.
type BillFacts struct {
	Delivered    bool
	Status       string // legacy text status, "Delivered" counts as delivered
	IsUrgent     bool
	DeliveryDate string // DateLayout, may be empty or malformed
	ItemsDone    []bool // completion flag per item
}

// IsDelivered reports whether the bill has been handed over, honouring
// both the boolean flag and the legacy text status.
func IsDelivered(f BillFacts) bool {
	return f.Delivered || f.Status == "Delivered"
}

// AllItemsReady reports whether every item is completed. A bill with no
// items is never ready.
func AllItemsReady(f BillFacts) bool {
	if len(f.ItemsDone) == 0 {
		return false
	}
	for _, done := range f.ItemsDone {
		if !done {
			return false
		}
	}
	return true
}

// DaysUntil returns the whole days remaining until the delivery date,
// rounded up, and false when the date cannot be parsed. Overdue bills
// return a negative count.
func DaysUntil(deliveryDate string, now time.Time) (int, bool) {
	due, err := time.Parse(DateLayout, deliveryDate)
	if err != nil {
		return 0, false
	}
	hours := due.Sub(now).Hours()
	return int(math.Ceil(hours / 24)), true
}

// IsUrgent classifies a bill as urgent. Delivered bills and bills whose
// items are all ready are never urgent. Otherwise the manual urgent flag
// wins, then the delivery date: within the urgency window or already
// overdue counts as urgent.
func IsUrgent(f BillFacts, now time.Time) bool {
	if IsDelivered(f) || AllItemsReady(f) {
		return false
	}
	if f.IsUrgent {
		return true
	}
	days, ok := DaysUntil(f.DeliveryDate, now)
	return ok && days <= UrgencyWindowDays
}
