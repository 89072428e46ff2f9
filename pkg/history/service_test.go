package history

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbncursed/skillscan/pkg/applicant"
	"github.com/vbncursed/skillscan/pkg/jobrole"
)

// memApplicants implements applicant.Repository with the same observable
// contract as the Postgres repo: substring search over name/email/phone,
// creation order newest first, limit/offset slicing, filtered total.
type memApplicants struct {
	records []applicant.Applicant
}

func (m *memApplicants) Create(_ context.Context, a applicant.Applicant) error {
	m.records = append(m.records, a)
	return nil
}

func (m *memApplicants) GetByID(_ context.Context, id uuid.UUID) (applicant.Applicant, error) {
	for _, a := range m.records {
		if a.ID == id {
			return a, nil
		}
	}
	return applicant.Applicant{}, applicant.ErrNotFound
}

func (m *memApplicants) Delete(_ context.Context, id uuid.UUID) error {
	for i, a := range m.records {
		if a.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return applicant.ErrNotFound
}

func (m *memApplicants) List(_ context.Context, q applicant.ListQuery) ([]applicant.Applicant, int, error) {
	var filtered []applicant.Applicant
	needle := strings.ToLower(q.Search)
	for _, a := range m.records {
		if needle == "" ||
			strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strings.ToLower(a.Email), needle) ||
			strings.Contains(strings.ToLower(a.Phone), needle) {
			filtered = append(filtered, a)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	total := len(filtered)
	if q.Offset >= total {
		return nil, total, nil
	}
	end := q.Offset + q.Limit
	if end > total {
		end = total
	}
	return filtered[q.Offset:end], total, nil
}

type memRoles struct {
	roles map[uuid.UUID]jobrole.JobRole
}

func (m *memRoles) Create(_ context.Context, r jobrole.JobRole) error {
	m.roles[r.ID] = r
	return nil
}

func (m *memRoles) GetByID(_ context.Context, id uuid.UUID) (jobrole.JobRole, error) {
	r, ok := m.roles[id]
	if !ok {
		return jobrole.JobRole{}, jobrole.ErrNotFound
	}
	return r, nil
}

func (m *memRoles) List(_ context.Context) ([]jobrole.JobRole, error) { return nil, nil }
func (m *memRoles) Update(_ context.Context, r jobrole.JobRole) error { return nil }
func (m *memRoles) Delete(_ context.Context, id uuid.UUID) error      { return nil }

func seed(t *testing.T, n int) (*memApplicants, *memRoles) {
	t.Helper()
	apps := &memApplicants{}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		require.NoError(t, apps.Create(context.Background(), applicant.Applicant{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("Applicant %02d", i),
			Email:     fmt.Sprintf("a%02d@example.com", i),
			Phone:     fmt.Sprintf("+1555%04d", i),
			Skills:    []string{"Go", "SQL"},
			Resume:    fmt.Sprintf("scan-%02d.pdf", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	return apps, &memRoles{roles: map[uuid.UUID]jobrole.JobRole{}}
}

func TestListPaginationCoversAllRecordsOnce(t *testing.T) {
	apps, roles := seed(t, 23)
	svc := NewService(apps, roles)
	ctx := context.Background()

	seen := map[uuid.UUID]bool{}
	pageSize := 5
	for page := 1; page <= 5; page++ {
		entries, total, err := svc.List(ctx, Query{Page: page, PageSize: pageSize})
		require.NoError(t, err)
		assert.Equal(t, 23, total)
		for _, e := range entries {
			assert.False(t, seen[e.ID], "record returned twice")
			seen[e.ID] = true
		}
	}
	assert.Len(t, seen, 23)
}

func TestListOrderIsNewestFirstAndStable(t *testing.T) {
	apps, roles := seed(t, 10)
	svc := NewService(apps, roles)
	ctx := context.Background()

	first, _, err := svc.List(ctx, Query{Page: 1, PageSize: 10})
	require.NoError(t, err)
	for i := 1; i < len(first); i++ {
		assert.True(t, !first[i].CreatedAt.After(first[i-1].CreatedAt))
	}

	again, _, err := svc.List(ctx, Query{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestListPageBeyondRange(t *testing.T) {
	apps, roles := seed(t, 7)
	svc := NewService(apps, roles)

	entries, total, err := svc.List(context.Background(), Query{Page: 4, PageSize: 5})
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 7, total)
}

func TestListRejectsInvalidPaging(t *testing.T) {
	apps, roles := seed(t, 1)
	svc := NewService(apps, roles)
	ctx := context.Background()

	var ve ErrValidation
	_, _, err := svc.List(ctx, Query{Page: 0, PageSize: 10})
	assert.ErrorAs(t, err, &ve)
	_, _, err = svc.List(ctx, Query{Page: 1, PageSize: 0})
	assert.ErrorAs(t, err, &ve)
}

func TestListSearchFilter(t *testing.T) {
	apps, roles := seed(t, 3)
	require.NoError(t, apps.Create(context.Background(), applicant.Applicant{
		ID:        uuid.New(),
		Name:      "Jane Doe",
		Email:     "jane.doe@example.com",
		Resume:    "jane.pdf",
		CreatedAt: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}))
	svc := NewService(apps, roles)
	ctx := context.Background()

	entries, total, err := svc.List(ctx, Query{Page: 1, PageSize: 10, Search: "jane"})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "Jane Doe", entries[0].Name)

	_, total, err = svc.List(ctx, Query{Page: 1, PageSize: 10, Search: "xyz"})
	require.NoError(t, err)
	assert.Zero(t, total)

	// whitespace-only search means no filter
	_, total, err = svc.List(ctx, Query{Page: 1, PageSize: 10, Search: "   "})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestListMatchAnnotation(t *testing.T) {
	apps, roles := seed(t, 2)
	ctx := context.Background()

	role := jobrole.JobRole{ID: uuid.New(), Name: "Backend Engineer", Skills: []string{"Go", "SQL", "Docker"}}
	require.NoError(t, roles.Create(ctx, role))
	svc := NewService(apps, roles)

	entries, total, err := svc.List(ctx, Query{Page: 1, PageSize: 10, JobRoleID: &role.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, e := range entries {
		require.NotNil(t, e.MatchPercentage)
		// seeded applicants know Go and SQL out of three required skills
		assert.InDelta(t, 200.0/3.0, *e.MatchPercentage, 0.0001)
	}

	// without a role the annotation is absent
	entries, _, err = svc.List(ctx, Query{Page: 1, PageSize: 10})
	require.NoError(t, err)
	for _, e := range entries {
		assert.Nil(t, e.MatchPercentage)
	}
}

func TestListUnknownJobRole(t *testing.T) {
	apps, roles := seed(t, 2)
	svc := NewService(apps, roles)

	missing := uuid.New()
	_, _, err := svc.List(context.Background(), Query{Page: 1, PageSize: 10, JobRoleID: &missing})
	assert.ErrorIs(t, err, jobrole.ErrNotFound)
}

func TestDeletedApplicantDisappearsFromListing(t *testing.T) {
	apps, roles := seed(t, 5)
	svc := NewService(apps, roles)
	ctx := context.Background()

	victim := apps.records[2]
	require.NoError(t, apps.Delete(ctx, victim.ID))

	entries, total, err := svc.List(ctx, Query{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	for _, e := range entries {
		assert.NotEqual(t, victim.ID, e.ID)
	}
}
