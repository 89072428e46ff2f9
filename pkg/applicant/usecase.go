package applicant

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase covers ingestion and lookup of scan records. Listing is the history
// service's job; it composes this package's repository with skill matching.
type UseCase interface {
	Create(ctx context.Context, a Applicant) (Applicant, error)
	Get(ctx context.Context, id uuid.UUID) (Applicant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ErrValidation signals a rejected ingestion payload.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

// Create persists one scan record. The resume reference is the only required
// field; contact fields are stored as extracted, even when empty.
func (s *service) Create(ctx context.Context, a Applicant) (Applicant, error) {
	a.Resume = strings.TrimSpace(a.Resume)
	if a.Resume == "" {
		return Applicant{}, ErrValidation("resume reference is required")
	}
	cleaned := make([]string, 0, len(a.Skills))
	for _, sk := range a.Skills {
		sk = strings.TrimSpace(sk)
		if sk != "" {
			cleaned = append(cleaned, sk)
		}
	}
	a.Skills = cleaned
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := s.repo.Create(ctx, a); err != nil {
		return Applicant{}, err
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Applicant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
