package calculator

import (
	"testing"
	"time"
)

func TestIsUrgent(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		facts BillFacts
		want  bool
	}{
		{
			name:  "delivery five days out is urgent",
			facts: BillFacts{DeliveryDate: "2026-03-15", ItemsDone: []bool{false}},
			want:  true,
		},
		{
			name:  "delivery six days out is not urgent",
			facts: BillFacts{DeliveryDate: "2026-03-16", ItemsDone: []bool{false}},
			want:  false,
		},
		{
			name:  "overdue delivery is urgent",
			facts: BillFacts{DeliveryDate: "2026-03-01", ItemsDone: []bool{false}},
			want:  true,
		},
		{
			name:  "manual urgent flag wins regardless of date",
			facts: BillFacts{IsUrgent: true, DeliveryDate: "2026-06-01", ItemsDone: []bool{false}},
			want:  true,
		},
		{
			name:  "delivered bill is never urgent",
			facts: BillFacts{Delivered: true, IsUrgent: true, DeliveryDate: "2026-03-11", ItemsDone: []bool{false}},
			want:  false,
		},
		{
			name:  "legacy delivered status is never urgent",
			facts: BillFacts{Status: "Delivered", IsUrgent: true, DeliveryDate: "2026-03-11", ItemsDone: []bool{false}},
			want:  false,
		},
		{
			name:  "all items ready is never urgent",
			facts: BillFacts{IsUrgent: true, DeliveryDate: "2026-03-11", ItemsDone: []bool{true, true}},
			want:  false,
		},
		{
			name:  "malformed date falls back to the manual flag only",
			facts: BillFacts{DeliveryDate: "soon", ItemsDone: []bool{false}},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUrgent(tt.facts, now); got != tt.want {
				t.Errorf("IsUrgent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllItemsReady(t *testing.T) {
	tests := []struct {
		name  string
		items []bool
		want  bool
	}{
		{name: "empty bill is not ready", items: nil, want: false},
		{name: "one pending item", items: []bool{true, false}, want: false},
		{name: "everything completed", items: []bool{true, true, true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllItemsReady(BillFacts{ItemsDone: tt.items}); got != tt.want {
				t.Errorf("AllItemsReady() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	days, ok := DaysUntil("2026-03-15", now)
	if !ok || days != 5 {
		t.Errorf("DaysUntil(2026-03-15) = %v, %v, want 5, true", days, ok)
	}

	days, ok = DaysUntil("2026-03-08", now)
	if !ok || days != -2 {
		t.Errorf("DaysUntil(2026-03-08) = %v, %v, want -2, true", days, ok)
	}

	if _, ok := DaysUntil("not-a-date", now); ok {
		t.Error("DaysUntil should report failure for malformed dates")
	}
}
