package applicant

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	records map[uuid.UUID]Applicant
}

func newFakeRepo() *fakeRepo { return &fakeRepo{records: map[uuid.UUID]Applicant{}} }

func (f *fakeRepo) Create(_ context.Context, a Applicant) error {
	f.records[a.ID] = a
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (Applicant, error) {
	a, ok := f.records[id]
	if !ok {
		return Applicant{}, ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) List(_ context.Context, _ ListQuery) ([]Applicant, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.records[id]; !ok {
		return ErrNotFound
	}
	delete(f.records, id)
	return nil
}

func TestCreateRequiresResumeReference(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	for _, resume := range []string{"", "   "} {
		_, err := svc.Create(ctx, Applicant{Name: "Jane Doe", Resume: resume})
		var ve ErrValidation
		assert.ErrorAs(t, err, &ve)
	}
}

func TestCreateAssignsIdentityAndTimestamps(t *testing.T) {
	svc := NewService(newFakeRepo())
	a, err := svc.Create(context.Background(), Applicant{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Skills: []string{" Go ", "", "SQL"},
		Resume: "scan-1.pdf",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
	assert.Equal(t, []string{"Go", "SQL"}, a.Skills)
}

func TestCreateKeepsEmptyContactFields(t *testing.T) {
	// Extraction may fail upstream; empty contact fields are still valid.
	svc := NewService(newFakeRepo())
	a, err := svc.Create(context.Background(), Applicant{Resume: "scan-2.pdf"})
	require.NoError(t, err)
	assert.Empty(t, a.Name)
	assert.Empty(t, a.Email)
	assert.Empty(t, a.Phone)
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	a, err := svc.Create(ctx, Applicant{Resume: "scan-3.pdf"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, a.ID), ErrNotFound)
}
