package family

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) CreateMember(ctx context.Context, m *Member) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO family_members (user_id, name, relationship, date_of_birth, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		m.UserID, m.Name, m.Relationship, m.DateOfBirth, m.Notes,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create family member: %w", err)
	}
	m.Conditions = []string{}
	return nil
}

func (r *repoPG) ListMembers(ctx context.Context, userID uuid.UUID) ([]*Member, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT fm.id, fm.user_id, fm.name, fm.relationship, fm.date_of_birth, fm.notes,
		       COALESCE(array_agg(fc.condition_name) FILTER (WHERE fc.condition_name IS NOT NULL), '{}') AS conditions
		FROM family_members fm
		LEFT JOIN family_conditions fc ON fm.id = fc.family_member_id
		WHERE fm.user_id = $1 AND fm.deleted_at IS NULL
		GROUP BY fm.id
		ORDER BY fm.created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list family members: %w", err)
	}
	defer rows.Close()

	var items []*Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Relationship, &m.DateOfBirth, &m.Notes, &m.Conditions); err != nil {
			return nil, err
		}
		if m.Conditions == nil {
			m.Conditions = []string{}
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}

func (r *repoPG) AddCondition(ctx context.Context, userID, memberID uuid.UUID, req AddConditionRequest) error {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		SELECT id FROM family_members
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		memberID, userID,
	).Scan(&id)
	if err != nil {
		return ErrNotFound
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO family_conditions (family_member_id, condition_name, age_at_diagnosis, notes)
		VALUES ($1, $2, $3, $4)`,
		memberID, req.ConditionName, req.AgeAtDiagnosis, req.Notes,
	)
	if err != nil {
		return fmt.Errorf("add family condition: %w", err)
	}
	return nil
}

func (r *repoPG) ListConditions(ctx context.Context, userID uuid.UUID) ([]MemberCondition, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT fc.condition_name, fm.relationship, fc.age_at_diagnosis
		FROM family_conditions fc
		JOIN family_members fm ON fc.family_member_id = fm.id
		WHERE fm.user_id = $1 AND fm.deleted_at IS NULL
		ORDER BY fc.created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list family conditions: %w", err)
	}
	defer rows.Close()

	var items []MemberCondition
	for rows.Next() {
		var mc MemberCondition
		if err := rows.Scan(&mc.ConditionName, &mc.Relationship, &mc.AgeAtDiagnosis); err != nil {
			return nil, err
		}
		items = append(items, mc)
	}
	return items, rows.Err()
}
