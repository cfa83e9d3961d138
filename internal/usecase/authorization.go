package usecase

import (
	"errors"

	"atelie/internal/domain/entities"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("operation not allowed for this profile")
)

// requireStaff allows admins and editors.
func requireStaff(actor *entities.Actor) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.Role.IsStaff() {
		return ErrForbidden
	}
	return nil
}

func requireRole(actor *entities.Actor, role entities.Role) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if actor.Role != role {
		return ErrForbidden
	}
	return nil
}
