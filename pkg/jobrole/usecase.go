package jobrole

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase covers administration of job roles and their required skills.
type UseCase interface {
	Create(ctx context.Context, name string, skills []string) (JobRole, error)
	Get(ctx context.Context, id uuid.UUID) (JobRole, error)
	List(ctx context.Context) ([]JobRole, error)
	Update(ctx context.Context, id uuid.UUID, name string, skills []string) (JobRole, error)
	Delete(ctx context.Context, id uuid.UUID) (JobRole, error)
}

// ErrValidation signals a rejected create/update payload.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, name string, skills []string) (JobRole, error) {
	name, skills, err := validate(name, skills)
	if err != nil {
		return JobRole{}, err
	}
	now := time.Now().UTC()
	r := JobRole{
		ID:        uuid.New(),
		Name:      name,
		Skills:    skills,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return JobRole{}, err
	}
	return r, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (JobRole, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]JobRole, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, name string, skills []string) (JobRole, error) {
	name, skills, err := validate(name, skills)
	if err != nil {
		return JobRole{}, err
	}
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return JobRole{}, err
	}
	r.Name = name
	r.Skills = skills
	r.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, r); err != nil {
		return JobRole{}, err
	}
	return r, nil
}

// Delete removes the role and returns its last state. Applicant records are
// untouched: matching compares skills by value, not by reference.
func (s *service) Delete(ctx context.Context, id uuid.UUID) (JobRole, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return JobRole{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return JobRole{}, err
	}
	return r, nil
}

// validate trims the name and every skill, drops empty skills, and rejects
// an empty name or an empty resulting skill list. Matching against a role
// with zero required skills would divide by zero, so it is refused here.
func validate(name string, skills []string) (string, []string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, ErrValidation("name is required")
	}
	cleaned := make([]string, 0, len(skills))
	for _, sk := range skills {
		sk = strings.TrimSpace(sk)
		if sk != "" {
			cleaned = append(cleaned, sk)
		}
	}
	if len(cleaned) == 0 {
		return "", nil, ErrValidation("at least one skill is required")
	}
	return name, cleaned, nil
}
