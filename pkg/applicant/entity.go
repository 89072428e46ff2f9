package applicant

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Applicant is one scan record: contact fields and skills extracted from a
// resume upload, plus the stored file it came from. Contact fields may be
// empty when extraction failed upstream.
type Applicant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Skills    []string  `json:"skills"`
	Resume    string    `json:"resume"` // stored filename, stable for the record's lifetime
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ErrNotFound is returned when an applicant id does not exist.
var ErrNotFound = errors.New("applicant not found")

// ListQuery selects a page of applicants. Search filters case-insensitively
// by substring over name, email and phone; empty means no filter.
type ListQuery struct {
	Limit  int
	Offset int
	Search string
}

// Repository is the persistence port for scan records. List returns the page
// in creation order (most recent first, id as tiebreak) together with the
// total count of the filtered set.
type Repository interface {
	Create(ctx context.Context, a Applicant) error
	GetByID(ctx context.Context, id uuid.UUID) (Applicant, error)
	List(ctx context.Context, q ListQuery) ([]Applicant, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
