package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	"github.com/alhuzaifa/tailor-api/internal/domain/repository"
	"github.com/alhuzaifa/tailor-api/pkg/apperror"
	"github.com/alhuzaifa/tailor-api/pkg/whatsapp"
)

// CustomerService handles the favourites book and measurement profiles
type CustomerService struct {
	customerRepo repository.CustomerRepository
	billRepo     repository.BillRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, billRepo repository.BillRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, billRepo: billRepo}
}

// FavouriteInput represents the add favourite input
type FavouriteInput struct {
	CustomerName string
	Mobile       string
}

// MeasurementInput represents a measurement profile's fields
type MeasurementInput struct {
	Name     string
	Length   string
	Shoulder string
	Chest    string
	Waist    string
	Hip      string
	Sleeves  string
	Neck     string
	Armhole  string
	Cuff     string
	Bottom   string
}

// AddFavourite files a customer in the favourites book under their
// normalized mobile. Re-adding refreshes the name.
func (s *CustomerService) AddFavourite(ctx context.Context, input *FavouriteInput) (*entity.FavouriteCustomer, error) {
	var fieldErrors []apperror.FieldError
	if input.CustomerName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customerName", Message: "Customer name is required"})
	}
	mobile := whatsapp.NormalizePhone(input.Mobile)
	if mobile == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "mobile", Message: "A mobile number with digits is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	customer := &entity.FavouriteCustomer{
		Mobile:       mobile,
		CustomerName: input.CustomerName,
		RawMobile:    input.Mobile,
	}
	if err := s.customerRepo.Upsert(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetFavourite looks a customer up by any spelling of their mobile.
func (s *CustomerService) GetFavourite(ctx context.Context, mobile string) (*entity.FavouriteCustomer, error) {
	customer, err := s.customerRepo.GetByMobile(ctx, whatsapp.NormalizePhone(mobile))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Favourite customer")
	}
	return customer, nil
}

// ListFavourites returns the favourites book ordered by name.
func (s *CustomerService) ListFavourites(ctx context.Context) ([]entity.FavouriteCustomer, error) {
	return s.customerRepo.List(ctx)
}

// RemoveFavourite drops a customer and their measurement profiles.
func (s *CustomerService) RemoveFavourite(ctx context.Context, mobile string) error {
	customer, err := s.GetFavourite(ctx, mobile)
	if err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, customer.Mobile)
}

// Bills returns a favourite customer's order history, matched by
// digit-normalized mobile equality, newest first.
func (s *CustomerService) Bills(ctx context.Context, mobile string) ([]entity.Bill, error) {
	customer, err := s.GetFavourite(ctx, mobile)
	if err != nil {
		return nil, err
	}

	all, err := s.billRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	bills := make([]entity.Bill, 0)
	for _, bill := range all {
		if whatsapp.NormalizePhone(bill.Mobile) == customer.Mobile {
			bills = append(bills, bill)
		}
	}
	return bills, nil
}

// AddProfile saves a named set of measurements for a customer.
func (s *CustomerService) AddProfile(ctx context.Context, mobile string, input *MeasurementInput) (*entity.MeasurementProfile, error) {
	customer, err := s.GetFavourite(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Profile name is required"},
		})
	}

	profile := &entity.MeasurementProfile{CustomerMobile: customer.Mobile}
	applyMeasurements(profile, input)
	if err := s.customerRepo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfile replaces a profile's name and measurements.
func (s *CustomerService) UpdateProfile(ctx context.Context, id uuid.UUID, input *MeasurementInput) (*entity.MeasurementProfile, error) {
	profile, err := s.customerRepo.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Measurement profile")
	}
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Profile name is required"},
		})
	}

	applyMeasurements(profile, input)
	if err := s.customerRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteProfile removes one measurement profile.
func (s *CustomerService) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	profile, err := s.customerRepo.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	if profile == nil {
		return apperror.NewNotFoundError("Measurement profile")
	}
	return s.customerRepo.DeleteProfile(ctx, id)
}

// ListProfiles returns a customer's measurement profiles.
func (s *CustomerService) ListProfiles(ctx context.Context, mobile string) ([]entity.MeasurementProfile, error) {
	customer, err := s.GetFavourite(ctx, mobile)
	if err != nil {
		return nil, err
	}
	return s.customerRepo.ProfilesForCustomer(ctx, customer.Mobile)
}

func applyMeasurements(profile *entity.MeasurementProfile, input *MeasurementInput) {
	profile.Name = input.Name
	profile.Length = input.Length
	profile.Shoulder = input.Shoulder
	profile.Chest = input.Chest
	profile.Waist = input.Waist
	profile.Hip = input.Hip
	profile.Sleeves = input.Sleeves
	profile.Neck = input.Neck
	profile.Armhole = input.Armhole
	profile.Cuff = input.Cuff
	profile.Bottom = input.Bottom
}
