package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vbncursed/skillscan/pkg/jobrole"
)

// JobRoleRepository stores job roles and their required skill lists. Skills
// live in a child table keyed by position so the administrator's input order
// survives round trips; matching output aligns positionally with it.
type JobRoleRepository struct {
	pool *pgxpool.Pool
}

func NewJobRoleRepository(pool *pgxpool.Pool) (*JobRoleRepository, error) {
	r := &JobRoleRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobRoleRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS job_roles (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS job_role_skills (
	job_role_id UUID NOT NULL REFERENCES job_roles(id) ON DELETE CASCADE,
	position INT NOT NULL,
	skill TEXT NOT NULL,
	PRIMARY KEY (job_role_id, position)
);
`)
	return err
}

func (r *JobRoleRepository) Create(ctx context.Context, role jobrole.JobRole) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
INSERT INTO job_roles (id, name, created_at, updated_at)
VALUES ($1, $2, $3, $4)
`, role.ID, role.Name, role.CreatedAt, role.UpdatedAt)
	if err != nil {
		return err
	}
	if err := insertSkills(ctx, tx, role.ID, role.Skills); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *JobRoleRepository) Update(ctx context.Context, role jobrole.JobRole) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, `
UPDATE job_roles SET name = $2, updated_at = $3 WHERE id = $1
`, role.ID, role.Name, role.UpdatedAt)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return jobrole.ErrNotFound
	}
	if _, err := tx.Exec(ctx, `DELETE FROM job_role_skills WHERE job_role_id = $1`, role.ID); err != nil {
		return err
	}
	if err := insertSkills(ctx, tx, role.ID, role.Skills); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertSkills(ctx context.Context, tx pgx.Tx, roleID uuid.UUID, skills []string) error {
	for i, skill := range skills {
		_, err := tx.Exec(ctx, `
INSERT INTO job_role_skills (job_role_id, position, skill)
VALUES ($1, $2, $3)
`, roleID, i, skill)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *JobRoleRepository) GetByID(ctx context.Context, id uuid.UUID) (jobrole.JobRole, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, name, created_at, updated_at FROM job_roles WHERE id = $1
`, id)
	var role jobrole.JobRole
	var created, updated time.Time
	if err := row.Scan(&role.ID, &role.Name, &created, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jobrole.JobRole{}, jobrole.ErrNotFound
		}
		return jobrole.JobRole{}, err
	}
	role.CreatedAt = created.UTC()
	role.UpdatedAt = updated.UTC()

	rows, err := r.pool.Query(ctx, `
SELECT skill FROM job_role_skills WHERE job_role_id = $1 ORDER BY position
`, id)
	if err != nil {
		return jobrole.JobRole{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var skill string
		if err := rows.Scan(&skill); err != nil {
			return jobrole.JobRole{}, err
		}
		role.Skills = append(role.Skills, skill)
	}
	return role, rows.Err()
}

func (r *JobRoleRepository) List(ctx context.Context) ([]jobrole.JobRole, error) {
	rows, err := r.pool.Query(ctx, `
SELECT jr.id, jr.name, jr.created_at, jr.updated_at,
	COALESCE(
		json_agg(jrs.skill ORDER BY jrs.position) FILTER (WHERE jrs.skill IS NOT NULL),
		'[]'
	) AS skills
FROM job_roles jr
LEFT JOIN job_role_skills jrs ON jrs.job_role_id = jr.id
GROUP BY jr.id
ORDER BY jr.created_at
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []jobrole.JobRole
	for rows.Next() {
		var role jobrole.JobRole
		var created, updated time.Time
		var skillsJSON []byte
		if err := rows.Scan(&role.ID, &role.Name, &created, &updated, &skillsJSON); err != nil {
			return nil, err
		}
		role.CreatedAt = created.UTC()
		role.UpdatedAt = updated.UTC()
		if err := json.Unmarshal(skillsJSON, &role.Skills); err != nil {
			return nil, err
		}
		res = append(res, role)
	}
	return res, rows.Err()
}

func (r *JobRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM job_roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return jobrole.ErrNotFound
	}
	return nil
}
