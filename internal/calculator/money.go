package calculator

import (
	"math"
	"strconv"
	"strings"
)

// VatRate is the UAE VAT rate applied to every billed item.
const VatRate = 0.05

// LineItem is a priced line on a bill
type LineItem struct {
	Name  string
	Price float64
}

// BillTotals holds the computed monetary summary of a bill
type BillTotals struct {
	Subtotal   float64
	Vat        float64
	GrandTotal float64
	Balance    float64
}

// DraftTotals holds the live summary shown while an order is being entered
type DraftTotals struct {
	Subtotal      float64
	Vat           float64
	GrandTotal    float64
	PendingAmount float64
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseAmount reads a hand-typed money field. Anything that does not
// parse as a number counts as zero, matching how the paper ledger
// treats a blank or scribbled column.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ItemVat returns the VAT portion of a single item at full precision.
// Rounding happens once on the summed totals, not per item.
func ItemVat(price float64) float64 {
	return price * VatRate
}

// ItemTotal returns an item's price with VAT at full precision.
func ItemTotal(price float64) float64 {
	return price + ItemVat(price)
}

// ComputeBillTotals sums the items, applies VAT and subtracts the advance.
// Balance is NOT clamped: an advance above the grand total yields a
// negative balance, which the ledger shows as money owed back.
func ComputeBillTotals(items []LineItem, advance float64) BillTotals {
	var subtotal, vat float64
	for _, item := range items {
		subtotal += item.Price
		vat += ItemVat(item.Price)
	}
	grandTotal := subtotal + vat
	return BillTotals{
		Subtotal:   Round2(subtotal),
		Vat:        Round2(vat),
		GrandTotal: Round2(grandTotal),
		Balance:    Round2(grandTotal - advance),
	}
}

// ComputeDraftTotals mirrors ComputeBillTotals for the order-entry view,
// where the pending amount is clamped at zero so an overpaying customer
// sees nothing left to pay rather than a negative figure.
func ComputeDraftTotals(items []LineItem, advance float64) DraftTotals {
	totals := ComputeBillTotals(items, advance)
	return DraftTotals{
		Subtotal:      totals.Subtotal,
		Vat:           totals.Vat,
		GrandTotal:    totals.GrandTotal,
		PendingAmount: math.Max(0, totals.Balance),
	}
}
