package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vbncursed/skillscan/pkg/applicant"
)

// ApplicantRepository stores scan records. Search and pagination are pushed
// down to SQL so a listing never loads the whole collection.
type ApplicantRepository struct {
	pool *pgxpool.Pool
}

func NewApplicantRepository(pool *pgxpool.Pool) (*ApplicantRepository, error) {
	r := &ApplicantRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ApplicantRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS applicants (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	skills TEXT[] NOT NULL DEFAULT '{}',
	resume TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_applicants_created_at ON applicants(created_at DESC, id DESC);
`)
	return err
}

func (r *ApplicantRepository) Create(ctx context.Context, a applicant.Applicant) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO applicants (id, name, email, phone, skills, resume, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, a.ID, a.Name, a.Email, a.Phone, a.Skills, a.Resume, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *ApplicantRepository) GetByID(ctx context.Context, id uuid.UUID) (applicant.Applicant, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, name, email, phone, skills, resume, created_at, updated_at
FROM applicants WHERE id = $1
`, id)
	a, err := scanApplicant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return applicant.Applicant{}, applicant.ErrNotFound
		}
		return applicant.Applicant{}, err
	}
	return a, nil
}

// List returns one page of the filtered set plus its pre-pagination total.
// Ordering is created_at DESC with id as tiebreak, which keeps pages
// non-overlapping while the underlying set is unchanged.
func (r *ApplicantRepository) List(ctx context.Context, q applicant.ListQuery) ([]applicant.Applicant, int, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	where := ""
	args := []any{}
	if q.Search != "" {
		where = `WHERE name ILIKE $1 ESCAPE '\' OR email ILIKE $1 ESCAPE '\' OR phone ILIKE $1 ESCAPE '\'`
		args = append(args, "%"+escapeLike(q.Search)+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM applicants `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPos := len(args) + 1
	args = append(args, q.Limit, q.Offset)
	rows, err := r.pool.Query(ctx, `
SELECT id, name, email, phone, skills, resume, created_at, updated_at
FROM applicants `+where+`
ORDER BY created_at DESC, id DESC
LIMIT $`+strconv.Itoa(limitPos)+` OFFSET $`+strconv.Itoa(limitPos+1),
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var res []applicant.Applicant
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, a)
	}
	return res, total, rows.Err()
}

func (r *ApplicantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM applicants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return applicant.ErrNotFound
	}
	return nil
}

func scanApplicant(row pgx.Row) (applicant.Applicant, error) {
	var a applicant.Applicant
	var created, updated time.Time
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Skills, &a.Resume, &created, &updated); err != nil {
		return applicant.Applicant{}, err
	}
	a.CreatedAt = created.UTC()
	a.UpdatedAt = updated.UTC()
	if a.Skills == nil {
		a.Skills = []string{}
	}
	return a, nil
}

// escapeLike neutralizes LIKE wildcards in user-supplied search terms so a
// search for "100%" matches the literal text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
