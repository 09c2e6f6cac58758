package technician

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("technician not found")

// EmploymentKind distinguishes staff crew from freelancers booked per
// production.
type EmploymentKind string

const (
	EmploymentStaff     EmploymentKind = "staff"
	EmploymentFreelance EmploymentKind = "freelance"
)

type Technician struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Department string
	Employment EmploymentKind
	Skills     []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (t *Technician) FullName() string {
	if t.FirstName == "" {
		return t.LastName
	}
	if t.LastName == "" {
		return t.FirstName
	}
	return t.FirstName + " " + t.LastName
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Technician, error)
	GetAll(ctx context.Context) ([]*Technician, error)
	GetByDepartment(ctx context.Context, department string) ([]*Technician, error)
	Create(ctx context.Context, data *Technician) (*Technician, error)
	Update(ctx context.Context, data *Technician) error
	Delete(ctx context.Context, id uuid.UUID) error
}
