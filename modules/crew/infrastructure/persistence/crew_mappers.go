package persistence

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crewdeck/crewdeck/modules/crew/domain/aggregates/technician"
	"github.com/crewdeck/crewdeck/modules/crew/domain/entities/override"
	"github.com/crewdeck/crewdeck/pkg/availability"
	"github.com/crewdeck/crewdeck/pkg/calendar"
)

func mapTechnician(row pgx.Row) (*technician.Technician, error) {
	var (
		t          technician.Technician
		phone      pgtype.Text
		employment string
		skills     []string
	)
	if err := row.Scan(
		&t.ID,
		&t.FirstName,
		&t.LastName,
		&t.Email,
		&phone,
		&t.Department,
		&employment,
		&skills,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if phone.Valid {
		t.Phone = phone.String
	}
	t.Employment = technician.EmploymentKind(employment)
	t.Skills = skills
	return &t, nil
}

func mapOverride(row pgx.Row) (*override.Override, error) {
	var (
		o      override.Override
		date   time.Time
		status string
		note   pgtype.Text
	)
	if err := row.Scan(
		&o.TechnicianID,
		&date,
		&status,
		&note,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	o.Date = date.Format(calendar.DayKeyLayout)
	o.Status = availability.Status(status)
	if note.Valid {
		o.Note = note.String
	}
	return &o, nil
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
