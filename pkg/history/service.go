package history

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vbncursed/skillscan/pkg/applicant"
	"github.com/vbncursed/skillscan/pkg/jobrole"
	"github.com/vbncursed/skillscan/pkg/skills"
)

// Entry is one row of the scan history: the applicant record plus, when a
// job role was selected, its match percentage against that role.
type Entry struct {
	applicant.Applicant
	MatchPercentage *float64 `json:"matchPercentage,omitempty"`
}

// Query selects a page of the scan history. Page is 1-indexed. Search
// filters case-insensitively over name, email and phone. JobRoleID, when
// set, annotates each returned row with a match percentage; it never
// affects filtering, ordering or the total.
type Query struct {
	Page      int
	PageSize  int
	Search    string
	JobRoleID *uuid.UUID
}

// ErrValidation signals an out-of-range page or page size.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// UseCase is the read side of the scan history.
type UseCase interface {
	List(ctx context.Context, q Query) ([]Entry, int, error)
}

type service struct {
	applicants applicant.Repository
	roles      jobrole.Repository
}

func NewService(applicants applicant.Repository, roles jobrole.Repository) UseCase {
	return &service{applicants: applicants, roles: roles}
}

// List returns the requested page in creation order (most recent first) and
// the total count of the filtered set. A page past the end returns an empty
// slice, not an error, so clients can page freely off the total.
func (s *service) List(ctx context.Context, q Query) ([]Entry, int, error) {
	if q.Page < 1 {
		return nil, 0, ErrValidation("page must be >= 1")
	}
	if q.PageSize < 1 {
		return nil, 0, ErrValidation("pageSize must be >= 1")
	}

	var role *jobrole.JobRole
	if q.JobRoleID != nil {
		r, err := s.roles.GetByID(ctx, *q.JobRoleID)
		if err != nil {
			return nil, 0, err
		}
		role = &r
	}

	items, total, err := s.applicants.List(ctx, applicant.ListQuery{
		Limit:  q.PageSize,
		Offset: (q.Page - 1) * q.PageSize,
		Search: strings.TrimSpace(q.Search),
	})
	if err != nil {
		return nil, 0, err
	}

	entries := make([]Entry, 0, len(items))
	for _, a := range items {
		e := Entry{Applicant: a}
		if role != nil {
			pct := skills.Compare(a.Skills, role.Skills).Percentage
			e.MatchPercentage = &pct
		}
		entries = append(entries, e)
	}
	return entries, total, nil
}
