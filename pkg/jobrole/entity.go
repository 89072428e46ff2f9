package jobrole

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JobRole is a named set of required skills applicants are matched against.
type JobRole struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ErrNotFound is returned when a job role id does not exist.
var ErrNotFound = errors.New("job role not found")

// Repository is the persistence port for job roles. The set is expected to
// stay small (tens of roles), so List is unpaginated.
type Repository interface {
	Create(ctx context.Context, r JobRole) error
	GetByID(ctx context.Context, id uuid.UUID) (JobRole, error)
	List(ctx context.Context) ([]JobRole, error)
	Update(ctx context.Context, r JobRole) error
	Delete(ctx context.Context, id uuid.UUID) error
}
