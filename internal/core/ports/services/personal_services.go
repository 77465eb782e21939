package services

import (
	"context"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/SscSPs/comandas_backend/internal/dto"
)

// PersonalReaderSvc defines read operations for personnel
type PersonalReaderSvc interface {
	GetPersonal(ctx context.Context, personalID string) (*domain.Personal, error)
	ListPersonal(ctx context.Context, params dto.ListPersonalParams) ([]domain.Personal, error)
}

// PersonalWriterSvc defines write operations for personnel
type PersonalWriterSvc interface {
	CreatePersonal(ctx context.Context, req dto.CreatePersonalRequest, actorID string) (*domain.Personal, error)
	UpdatePersonal(ctx context.Context, personalID string, req dto.UpdatePersonalRequest, actorID string) (*domain.Personal, error)
	SetPassword(ctx context.Context, personalID string, req dto.SetPasswordRequest, actorID string) error
	// DeactivatePersonal clears the active flag. Existing tokens stop validating immediately.
	DeactivatePersonal(ctx context.Context, personalID string, actorID string) error
}

// PersonalSvcFacade combines all personnel service interfaces
type PersonalSvcFacade interface {
	PersonalReaderSvc
	PersonalWriterSvc
}
