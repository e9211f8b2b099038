package service

import (
	"context"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
)

// UserService gives owners a read-only view of the workshop's accounts,
// mainly to look up worker ids for assignment.
type UserService struct {
	store Store
}

func NewUserService(store Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) ListUsers(ctx context.Context, actor entity.Actor) ([]entity.User, error) {
	if !actor.Role.IsOwner() {
		return nil, apperr.Forbidden("only owners can list users")
	}
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, apperr.Internal("users.list", err)
	}
	if users == nil {
		users = []entity.User{}
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, actor entity.Actor, id int64) (*entity.User, error) {
	if !actor.Role.IsOwner() {
		return nil, apperr.Forbidden("only owners can view users")
	}
	u, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("users.get", err)
	}
	return u, nil
}
