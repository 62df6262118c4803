package doctor

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no doctor exists with the requested id.
var ErrNotFound = errors.New("doctor not found")

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
}
