package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no patient exists with the requested id.
var ErrNotFound = errors.New("patient not found")

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
}
