package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateLink(ctx context.Context, id uuid.UUID, link string) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	ActiveForDoctor(ctx context.Context, doctorID uuid.UUID, now time.Time) (*Appointment, error)
	ListFutureDetailed(ctx context.Context, doctorID uuid.UUID, now time.Time, limit, offset int) ([]*Detail, int, error)
	ListDetailed(ctx context.Context, q ListQuery) ([]*Detail, int, error)
}
