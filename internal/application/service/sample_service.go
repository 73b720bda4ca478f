package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	"github.com/alhuzaifa/tailor-api/internal/domain/repository"
	"github.com/alhuzaifa/tailor-api/internal/realtime"
	"github.com/alhuzaifa/tailor-api/pkg/apperror"
	"github.com/alhuzaifa/tailor-api/pkg/whatsapp"
)

// SampleService handles the design sample catalog
type SampleService struct {
	sampleRepo repository.SampleRepository
	hub        *realtime.Hub
}

// NewSampleService creates a new sample service
func NewSampleService(sampleRepo repository.SampleRepository, hub *realtime.Hub) *SampleService {
	return &SampleService{sampleRepo: sampleRepo, hub: hub}
}

// SampleInput represents the create sample input
type SampleInput struct {
	Name  string
	Price float64
	Image string
}

// SamplePatch patches a sample. Nil fields are left untouched.
type SamplePatch struct {
	Name       *string
	Price      *float64
	Image      *string
	OutOfStock *bool
}

// CreateSample files a design photo in the catalog.
func (s *SampleService) CreateSample(ctx context.Context, input *SampleInput) (*entity.Sample, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Sample name is required"})
	}
	if input.Image == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "image", Message: "Sample image is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	sample := &entity.Sample{
		Name:  input.Name,
		Price: input.Price,
		Image: input.Image,
	}
	if err := s.sampleRepo.Create(ctx, sample); err != nil {
		return nil, err
	}
	s.hub.Publish(TopicSamples)
	return sample, nil
}

// GetSample returns one sample.
func (s *SampleService) GetSample(ctx context.Context, id uuid.UUID) (*entity.Sample, error) {
	sample, err := s.sampleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sample == nil {
		return nil, apperror.NewNotFoundError("Sample")
	}
	return sample, nil
}

// ListSamples returns the catalog newest first.
func (s *SampleService) ListSamples(ctx context.Context) ([]entity.Sample, error) {
	return s.sampleRepo.List(ctx)
}

// UpdateSample patches a sample, including the out-of-stock toggle.
func (s *SampleService) UpdateSample(ctx context.Context, id uuid.UUID, patch *SamplePatch) (*entity.Sample, error) {
	sample, err := s.GetSample(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		sample.Name = *patch.Name
	}
	if patch.Price != nil {
		sample.Price = *patch.Price
	}
	if patch.Image != nil {
		sample.Image = *patch.Image
	}
	if patch.OutOfStock != nil {
		sample.OutOfStock = *patch.OutOfStock
	}

	if err := s.sampleRepo.Update(ctx, sample); err != nil {
		return nil, err
	}
	s.hub.Publish(TopicSamples)
	return sample, nil
}

// DeleteSample drops a design from the catalog.
func (s *SampleService) DeleteSample(ctx context.Context, id uuid.UUID) error {
	sample, err := s.GetSample(ctx, id)
	if err != nil {
		return err
	}
	if err := s.sampleRepo.Delete(ctx, sample.ID); err != nil {
		return err
	}
	s.hub.Publish(TopicSamples)
	return nil
}

// ShareLink builds the WhatsApp broadcast link announcing a sample to
// one customer.
func (s *SampleService) ShareLink(ctx context.Context, id uuid.UUID, mobile string) (string, error) {
	sample, err := s.GetSample(ctx, id)
	if err != nil {
		return "", err
	}
	link := whatsapp.Link(mobile, whatsapp.SampleArrival(sample.Name, sample.Price))
	if link == "" {
		return "", apperror.NewBadRequestError("A mobile number with digits is required")
	}
	return link, nil
}
