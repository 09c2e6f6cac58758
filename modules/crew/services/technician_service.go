package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/crewdeck/crewdeck/modules/crew/domain/aggregates/technician"
	"github.com/crewdeck/crewdeck/pkg/composables"
	"github.com/crewdeck/crewdeck/pkg/eventbus"
)

type TechnicianService struct {
	repo      technician.Repository
	publisher eventbus.EventBus
}

func NewTechnicianService(repo technician.Repository, publisher eventbus.EventBus) *TechnicianService {
	return &TechnicianService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *TechnicianService) GetByID(ctx context.Context, id uuid.UUID) (*technician.Technician, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TechnicianService) GetAll(ctx context.Context) ([]*technician.Technician, error) {
	return s.repo.GetAll(ctx)
}

func (s *TechnicianService) GetByDepartment(ctx context.Context, department string) ([]*technician.Technician, error) {
	return s.repo.GetByDepartment(ctx, department)
}

func (s *TechnicianService) Create(ctx context.Context, data *technician.Technician) (*technician.Technician, error) {
	return composables.InTxResult(ctx, func(txCtx context.Context) (*technician.Technician, error) {
		created, err := s.repo.Create(txCtx, data)
		if err != nil {
			return nil, err
		}
		s.publisher.Publish(technician.NewCreatedEvent(created))
		return created, nil
	})
}

func (s *TechnicianService) Update(ctx context.Context, data *technician.Technician) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, data); err != nil {
			return err
		}
		s.publisher.Publish(technician.NewUpdatedEvent(data))
		return nil
	})
}

func (s *TechnicianService) Delete(ctx context.Context, id uuid.UUID) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return err
		}
		s.publisher.Publish(technician.NewDeletedEvent(existing))
		return nil
	})
}
