// Package whatsapp builds wa.me share links and the shop's customer and
// worker notification messages.
package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	shopName     = "Al Huzaifa Tailoring & Emb"
	shopLocation = "https://maps.app.goo.gl/MdLo7UhY8bq5LfT89?g_st=iwb"
)

// NormalizePhone strips everything but digits so "+971 50-123 4567"
// becomes a number wa.me accepts.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link builds a wa.me URL that opens a chat with the message prefilled.
// It returns "" when the phone number contains no digits.
func Link(phone, message string) string {
	digits := NormalizePhone(phone)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}

// InvoiceLine is one priced item on an invoice message.
type InvoiceLine struct {
	Name  string
	Price float64 // pre-VAT
}

// amount formats money the way the shop writes it, without trailing zeros.
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// OrderGreeting is the bilingual thank-you sent right after a bill is
// created.
func OrderGreeting() string {
	return "Thank you for choosing Al Huzaifa Tailoring and Emb\n" +
		"نشكركم لاختياركم خدمات الخياطة والتطريز من الحذيفة"
}

// InvoiceSummary renders the shareable invoice: each item priced with
// VAT included, then the total, advance and outstanding balance.
func InvoiceSummary(billNo, customerName, deliveryDate string, lines []InvoiceLine, totalAmount, advance float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*AL HUZAIFA TAILORING*\nOrder #%s\nCustomer: %s\nDue: %s\n\n*ITEMS:*\n",
		billNo, customerName, deliveryDate)
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s - AED %.2f (Inc. VAT)\n", i+1, line.Name, line.Price*1.05)
	}
	fmt.Fprintf(&b, "\nTotal: AED %s\nAdvance: AED %s\n*Balance: AED %s*",
		amount(totalAmount), amount(advance), amount(totalAmount-advance))
	return b.String()
}

// ReadyForPickup tells the customer their order is done, with the
// balance due and directions to the shop.
func ReadyForPickup(customerName, billNo string, balanceDue float64) string {
	return fmt.Sprintf(`Dear %s,

Your clothes with Bill No: #%s is ready for pickup. Please visit %s to collect it.
Balance Due: AED %s

ملابسك التي تحمل رقم الفاتورة جاهزة للاستلام

Location 📍
%s

Al Mujarah St.
Near Darwish Masjid
Sharjah, UAE.`, customerName, billNo, shopName, amount(balanceDue), shopLocation)
}

// Task is one pending job listed in a worker notification.
type Task struct {
	BillNo       string
	Name         string
	DeliveryDate string
	WorkerRate   float64
}

// WorkerTasks lists a worker's pending jobs with due dates and rates.
func WorkerTasks(workerName string, tasks []Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Tasks for %s* 🧵\n\n", workerName)
	for i, task := range tasks {
		due := task.DeliveryDate
		if due == "" {
			due = "N/A"
		}
		fmt.Fprintf(&b, "%d. *Bill #%s* - %s\n", i+1, task.BillNo, task.Name)
		fmt.Fprintf(&b, "   📅 Due: %s\n", due)
		fmt.Fprintf(&b, "   💰 Rate: %s\n\n", amount(task.WorkerRate))
	}
	return b.String()
}

// SampleArrival announces a new design sample to a favourite customer.
// The photo itself is shared from the device, so the text points the
// customer at the staff for it.
func SampleArrival(name string, price float64) string {
	return fmt.Sprintf("✨ *New Arrival: %s* ✨\n💰 Price: AED %s\n\nCheck this out at Al Huzaifa!\n\n(Please ask staff for photo)",
		name, amount(price))
}

// AlterationReady tells the customer their alteration is done.
func AlterationReady(customerName, billNo string) string {
	return fmt.Sprintf("Dear %s,\n\nYour alteration for Bill #%s is now completed and ready for pickup.\n\nThank you,\nAl Huzaifa Tailoring",
		customerName, billNo)
}
