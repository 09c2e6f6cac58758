package persistence

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crewdeck/crewdeck/modules/core/domain/aggregates/user"
	"github.com/crewdeck/crewdeck/pkg/types"
)

func mapUser(row pgx.Row) (*user.User, error) {
	var (
		u          user.User
		role       string
		department pgtype.Text
		flags      []string
	)
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&role,
		&department,
		&flags,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = types.Role(role)
	if department.Valid {
		u.Department = department.String
	}
	u.FeatureFlags = flags
	return &u, nil
}

func nullableString(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func newOrExistingID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}
