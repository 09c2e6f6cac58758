package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/crewdeck/crewdeck/modules/core/domain/aggregates/user"
	"github.com/crewdeck/crewdeck/pkg/composables"
)

const (
	selectUserColumns = `id, email, first_name, last_name, role, department, feature_flags, created_at, updated_at`
)

type PgUserRepository struct{}

func NewUserRepository() user.Repository {
	return &PgUserRepository{}
}

func (r *PgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx,
		`SELECT `+selectUserColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx,
		`SELECT `+selectUserColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return scanUser(row)
}

func (r *PgUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx,
		`SELECT `+selectUserColumns+` FROM users ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgUserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx, `
		INSERT INTO users (id, email, first_name, last_name, role, department, feature_flags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+selectUserColumns,
		newOrExistingID(u.ID), u.Email, u.FirstName, u.LastName, string(u.Role), nullableString(u.Department), u.FeatureFlags,
	)
	return scanUser(row)
}

func (r *PgUserRepository) Update(ctx context.Context, u *user.User) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4, role = $5, department = $6, feature_flags = $7, updated_at = now()
		WHERE id = $1`,
		u.ID, u.Email, u.FirstName, u.LastName, string(u.Role), nullableString(u.Department), u.FeatureFlags,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	u, err := mapUser(row)
	if err == pgx.ErrNoRows {
		return nil, user.ErrNotFound
	}
	return u, err
}
