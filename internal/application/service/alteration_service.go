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

// AlterationService handles alteration job tracking
type AlterationService struct {
	alterationRepo repository.AlterationRepository
	hub            *realtime.Hub
}

// NewAlterationService creates a new alteration service
func NewAlterationService(alterationRepo repository.AlterationRepository, hub *realtime.Hub) *AlterationService {
	return &AlterationService{alterationRepo: alterationRepo, hub: hub}
}

// AlterationInput represents the create alteration input
type AlterationInput struct {
	BillNo       string
	CustomerName string
	Mobile       string
	Problem      string
}

// AlterationPatch patches an alteration. Nil fields are left untouched.
type AlterationPatch struct {
	BillNo       *string
	CustomerName *string
	Mobile       *string
	Problem      *string
	IsReady      *bool
}

// CreateAlteration records an alteration job.
func (s *AlterationService) CreateAlteration(ctx context.Context, input *AlterationInput) (*entity.Alteration, error) {
	var fieldErrors []apperror.FieldError
	if input.CustomerName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customerName", Message: "Customer name is required"})
	}
	if input.Problem == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "problem", Message: "Problem description is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	alteration := &entity.Alteration{
		BillNo:       input.BillNo,
		CustomerName: input.CustomerName,
		Mobile:       input.Mobile,
		Problem:      input.Problem,
	}
	if err := s.alterationRepo.Create(ctx, alteration); err != nil {
		return nil, err
	}
	s.hub.Publish(TopicAlterations)
	return alteration, nil
}

// GetAlteration returns one alteration.
func (s *AlterationService) GetAlteration(ctx context.Context, id uuid.UUID) (*entity.Alteration, error) {
	alteration, err := s.alterationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alteration == nil {
		return nil, apperror.NewNotFoundError("Alteration")
	}
	return alteration, nil
}

// ListAlterations returns all alterations, pending work first.
func (s *AlterationService) ListAlterations(ctx context.Context) ([]entity.Alteration, error) {
	return s.alterationRepo.List(ctx)
}

// SearchAlterations matches the bill number or mobile exactly.
func (s *AlterationService) SearchAlterations(ctx context.Context, query string) ([]entity.Alteration, error) {
	if query == "" {
		return s.alterationRepo.List(ctx)
	}
	return s.alterationRepo.Search(ctx, query)
}

// UpdateAlteration patches an alteration, including the ready toggle.
func (s *AlterationService) UpdateAlteration(ctx context.Context, id uuid.UUID, patch *AlterationPatch) (*entity.Alteration, error) {
	alteration, err := s.GetAlteration(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.BillNo != nil {
		alteration.BillNo = *patch.BillNo
	}
	if patch.CustomerName != nil {
		alteration.CustomerName = *patch.CustomerName
	}
	if patch.Mobile != nil {
		alteration.Mobile = *patch.Mobile
	}
	if patch.Problem != nil {
		alteration.Problem = *patch.Problem
	}
	if patch.IsReady != nil {
		alteration.IsReady = *patch.IsReady
	}

	if err := s.alterationRepo.Update(ctx, alteration); err != nil {
		return nil, err
	}
	s.hub.Publish(TopicAlterations)
	return alteration, nil
}

// DeleteAlteration removes an alteration job.
func (s *AlterationService) DeleteAlteration(ctx context.Context, id uuid.UUID) error {
	alteration, err := s.GetAlteration(ctx, id)
	if err != nil {
		return err
	}
	if err := s.alterationRepo.Delete(ctx, alteration.ID); err != nil {
		return err
	}
	s.hub.Publish(TopicAlterations)
	return nil
}

// ReadyLink builds the WhatsApp pickup message link for an alteration.
func (s *AlterationService) ReadyLink(ctx context.Context, id uuid.UUID) (string, error) {
	alteration, err := s.GetAlteration(ctx, id)
	if err != nil {
		return "", err
	}
	link := whatsapp.Link(alteration.Mobile, whatsapp.AlterationReady(alteration.CustomerName, alteration.BillNo))
	if link == "" {
		return "", apperror.NewBadRequestError("No mobile number found for this customer")
	}
	return link, nil
}
