package override

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/crewdeck/crewdeck/pkg/availability"
)

var ErrNotFound = errors.New("availability override not found")

// Override marks one technician unavailable for day-to-day scheduling on one
// calendar day, with the reason carried as the availability status.
type Override struct {
	TechnicianID uuid.UUID
	Date         string
	Status       availability.Status
	Note         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Key is the technician-day identity the realtime store indexes by.
func (o *Override) Key() string {
	return availability.Key(o.TechnicianID.String(), o.Date)
}

type Repository interface {
	GetAll(ctx context.Context) ([]*Override, error)
	GetRange(ctx context.Context, from, to string) ([]*Override, error)
	GetByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*Override, error)
	Upsert(ctx context.Context, data *Override) (*Override, error)
	Delete(ctx context.Context, technicianID uuid.UUID, date string) error
}
