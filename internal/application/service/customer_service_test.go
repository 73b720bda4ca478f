package service

import (
	"context"
	"testing"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
)

func TestAddFavouriteNormalizesMobile(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo(), newFakeBillRepo())
	ctx := context.Background()

	customer, err := svc.AddFavourite(ctx, &FavouriteInput{
		CustomerName: "Ahmed",
		Mobile:       "+971 50-123 4567",
	})
	if err != nil {
		t.Fatalf("AddFavourite returned error: %v", err)
	}
	if customer.Mobile != "971501234567" {
		t.Errorf("Mobile = %q, want digits only", customer.Mobile)
	}

	// Re-adding under a different spelling of the same number updates
	// the record instead of duplicating it.
	if _, err := svc.AddFavourite(ctx, &FavouriteInput{
		CustomerName: "Ahmed K.",
		Mobile:       "971501234567",
	}); err != nil {
		t.Fatal(err)
	}
	got, err := svc.GetFavourite(ctx, "+971-50-123-4567")
	if err != nil {
		t.Fatal(err)
	}
	if got.CustomerName != "Ahmed K." {
		t.Errorf("CustomerName = %q, want refreshed name", got.CustomerName)
	}

	if _, err := svc.AddFavourite(ctx, &FavouriteInput{CustomerName: "X", Mobile: "no digits"}); err == nil {
		t.Error("expected validation error for digit-free mobile")
	}
}

func TestCustomerBillsMatchByNormalizedMobile(t *testing.T) {
	billRepo := newFakeBillRepo()
	svc := NewCustomerService(newFakeCustomerRepo(), billRepo)
	ctx := context.Background()

	if _, err := svc.AddFavourite(ctx, &FavouriteInput{CustomerName: "Ahmed", Mobile: "+971 50 123 4567"}); err != nil {
		t.Fatal(err)
	}

	bills := []*entity.Bill{
		{BillNo: "1001", CustomerName: "Ahmed", Mobile: "0501234567"},
		{BillNo: "1002", CustomerName: "Ahmed", Mobile: "971-50-123-4567"},
		{BillNo: "1003", CustomerName: "Someone Else", Mobile: "0559876543"},
	}
	for _, bill := range bills {
		if err := billRepo.Create(ctx, bill); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.Bills(ctx, "971501234567")
	if err != nil {
		t.Fatalf("Bills returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d bills, want 1", len(got))
	}
	if got[0].BillNo != "1002" {
		t.Errorf("BillNo = %q, want %q", got[0].BillNo, "1002")
	}

	if _, err := svc.Bills(ctx, "0590000000"); err == nil {
		t.Error("expected not found for an unknown customer")
	}
}

func TestMeasurementProfiles(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo(), newFakeBillRepo())
	ctx := context.Background()

	if _, err := svc.AddFavourite(ctx, &FavouriteInput{CustomerName: "Ahmed", Mobile: "0501234567"}); err != nil {
		t.Fatal(err)
	}

	profile, err := svc.AddProfile(ctx, "0501234567", &MeasurementInput{
		Name:   "Summer Kandura",
		Length: "58",
		Chest:  "42",
	})
	if err != nil {
		t.Fatalf("AddProfile returned error: %v", err)
	}

	update := &MeasurementInput{Name: "Summer Kandura", Length: "59", Chest: "42", Waist: "38"}
	updated, err := svc.UpdateProfile(ctx, profile.ID, update)
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Length != "59" || updated.Waist != "38" {
		t.Errorf("profile not updated: %+v", updated)
	}

	profiles, err := svc.ListProfiles(ctx, "0501234567")
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(profiles))
	}

	if err := svc.DeleteProfile(ctx, profile.ID); err != nil {
		t.Fatalf("DeleteProfile returned error: %v", err)
	}
	if _, err := svc.AddProfile(ctx, "0599999999", &MeasurementInput{Name: "X"}); err == nil {
		t.Error("expected not found for an unknown customer")
	}
}
