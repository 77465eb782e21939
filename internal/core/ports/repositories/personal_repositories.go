package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
)

// PersonalReader defines read operations for personnel records
type PersonalReader interface {
	// FindPersonalByID returns the record regardless of its active flag.
	FindPersonalByID(ctx context.Context, personalID string) (*domain.Personal, error)
	// FindActivePersonalByID returns apperrors.ErrNotFound for inactive or deleted records.
	FindActivePersonalByID(ctx context.Context, personalID string) (*domain.Personal, error)
	// FindActivePersonalByEmail matches the email case-insensitively.
	FindActivePersonalByEmail(ctx context.Context, email string) (*domain.Personal, error)
	ListPersonal(ctx context.Context, filter domain.PersonalFilter) ([]domain.Personal, error)
}

// PersonalWriter defines write operations for personnel records
type PersonalWriter interface {
	SavePersonal(ctx context.Context, personal domain.Personal) error
	UpdatePersonal(ctx context.Context, personal domain.Personal) error
	UpdatePasswordHash(ctx context.Context, personalID, hash string, updatedAt time.Time, updatedBy string) error
	DeactivatePersonal(ctx context.Context, personalID string, deactivatedAt time.Time, deactivatedBy string) error
}

// PersonalRepositoryFacade combines all personnel repository interfaces
type PersonalRepositoryFacade interface {
	PersonalReader
	PersonalWriter
}
