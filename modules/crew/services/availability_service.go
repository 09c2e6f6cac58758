package services

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/crewdeck/crewdeck/modules/crew/domain/entities/override"
	"github.com/crewdeck/crewdeck/pkg/availability"
	"github.com/crewdeck/crewdeck/pkg/calendar"
	"github.com/crewdeck/crewdeck/pkg/composables"
	"github.com/crewdeck/crewdeck/pkg/eventbus"
)

var (
	ErrInvalidStatus = errors.New("invalid availability status")
	ErrInvalidDate   = errors.New("date must be an ISO day, e.g. 2026-08-28")
)

type AvailabilityService struct {
	repo      override.Repository
	publisher eventbus.EventBus
}

func NewAvailabilityService(repo override.Repository, publisher eventbus.EventBus) *AvailabilityService {
	return &AvailabilityService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *AvailabilityService) GetAll(ctx context.Context) ([]*override.Override, error) {
	return s.repo.GetAll(ctx)
}

func (s *AvailabilityService) GetRange(ctx context.Context, from, to string) ([]*override.Override, error) {
	if err := validateDate(from); err != nil {
		return nil, err
	}
	if err := validateDate(to); err != nil {
		return nil, err
	}
	return s.repo.GetRange(ctx, from, to)
}

func (s *AvailabilityService) GetByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*override.Override, error) {
	return s.repo.GetByTechnician(ctx, technicianID)
}

func (s *AvailabilityService) SetOverride(ctx context.Context, data *override.Override) (*override.Override, error) {
	if !data.Status.Valid() {
		return nil, errors.Wrap(ErrInvalidStatus, string(data.Status))
	}
	if err := validateDate(data.Date); err != nil {
		return nil, err
	}
	return composables.InTxResult(ctx, func(txCtx context.Context) (*override.Override, error) {
		saved, err := s.repo.Upsert(txCtx, data)
		if err != nil {
			return nil, err
		}
		s.publisher.Publish(override.NewSetEvent(saved))
		return saved, nil
	})
}

func (s *AvailabilityService) RemoveOverride(ctx context.Context, technicianID uuid.UUID, date string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	return composables.InTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Delete(txCtx, technicianID, date); err != nil {
			return err
		}
		s.publisher.Publish(override.NewRemovedEvent(&override.Override{
			TechnicianID: technicianID,
			Date:         date,
		}))
		return nil
	})
}

// Snapshot materializes every stored override into the keyed form the
// realtime store holds. Used to prime the store at startup.
func (s *AvailabilityService) Snapshot(ctx context.Context) (map[string]availability.Status, error) {
	overrides, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]availability.Status, len(overrides))
	for _, o := range overrides {
		entries[o.Key()] = o.Status
	}
	return entries, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(calendar.DayKeyLayout, date); err != nil {
		return errors.Wrap(ErrInvalidDate, date)
	}
	return nil
}
