package user

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/crewdeck/crewdeck/pkg/types"
)

var ErrNotFound = errors.New("user not found")

// User is an account in the crew platform. Role and Department drive
// navigation visibility; FeatureFlags enable staged rollouts per account.
type User struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	Role         types.Role
	Department   string
	FeatureFlags []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, u *User) error
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// NavigationContext projects the account into the input of navigation
// resolution.
func (u *User) NavigationContext() types.NavigationContext {
	flags := make(map[string]struct{}, len(u.FeatureFlags))
	for _, flag := range u.FeatureFlags {
		flags[flag] = struct{}{}
	}
	return types.NavigationContext{
		Role:         u.Role,
		Department:   u.Department,
		FeatureFlags: flags,
	}
}
