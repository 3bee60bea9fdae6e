package users

import (
	"context"

	pkgerrors "github.com/pchen-dev/storefront-backend/pkg/errors"
)

// Service exposes the read surface of the user directory.
type Service interface {
	ListUsers(ctx context.Context) ([]UserDTO, error)
}

type service struct {
	repo *Repository
}

// NewService builds a user directory service over the repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "users repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListUsers(ctx context.Context) ([]UserDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users")
	}
	return FromModels(rows), nil
}
