package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/crewdeck/crewdeck/modules/core/domain/aggregates/user"
	"github.com/crewdeck/crewdeck/pkg/composables"
	"github.com/crewdeck/crewdeck/pkg/eventbus"
	"github.com/crewdeck/crewdeck/pkg/types"
)

type UserService struct {
	repo      user.Repository
	publisher eventbus.EventBus
}

func NewUserService(repo user.Repository, publisher eventbus.EventBus) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetAll(ctx context.Context) ([]*user.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *UserService) Create(ctx context.Context, u *user.User) (*user.User, error) {
	return composables.InTxResult(ctx, func(txCtx context.Context) (*user.User, error) {
		created, err := s.repo.Create(txCtx, u)
		if err != nil {
			return nil, err
		}
		s.publisher.Publish(user.NewCreatedEvent(created))
		return created, nil
	})
}

func (s *UserService) Update(ctx context.Context, u *user.User) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, u); err != nil {
			return err
		}
		s.publisher.Publish(user.NewUpdatedEvent(u))
		return nil
	})
}

// NavContext resolves the forwarded identity into a navigation context.
// Implements middleware.NavContextResolver.
func (s *UserService) NavContext(ctx context.Context, userID string) (types.NavigationContext, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return types.NavigationContext{}, err
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.NavigationContext{}, err
	}
	return u.NavigationContext(), nil
}
