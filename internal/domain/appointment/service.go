package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medlink/medlink/internal/domain/doctor"
	"github.com/medlink/medlink/internal/domain/patient"
	"github.com/medlink/medlink/pkg/timeutil"
)

type Service struct {
	appts    Repository
	doctors  doctor.Repository
	patients patient.Repository
	now      func() time.Time
}

func NewService(appts Repository, doctors doctor.Repository, patients patient.Repository) *Service {
	return &Service{appts: appts, doctors: doctors, patients: patients, now: time.Now}
}

// Create stores a new appointment. Times are normalized to UTC before they
// reach the store; the overlap constraints surface as ErrConflict.
func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.LocalDoctorID == uuid.Nil || a.RemoteDoctorID == uuid.Nil || a.PatientID == uuid.Nil {
		return fmt.Errorf("%w: all participants are required", ErrInvalidRequest)
	}
	if a.StartTime.IsZero() || a.EndTime.IsZero() {
		return fmt.Errorf("%w: start_time and end_time are required", ErrInvalidRequest)
	}
	a.StartTime = timeutil.ToUTC(a.StartTime)
	a.EndTime = timeutil.ToUTC(a.EndTime)
	if !a.EndTime.After(a.StartTime) {
		return fmt.Errorf("%w: end_time must be after start_time", ErrInvalidRequest)
	}
	return s.appts.Create(ctx, a)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appts.GetByID(ctx, id)
}

// Delete does not verify prior existence; deleting an absent appointment
// succeeds.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.appts.Delete(ctx, id)
}

// UpdateLink replaces the meeting link and nothing else. Like Delete, it
// does not check that the row exists first.
func (s *Service) UpdateLink(ctx context.Context, id uuid.UUID, link string) error {
	if link == "" {
		return fmt.Errorf("%w: link is required", ErrInvalidRequest)
	}
	return s.appts.UpdateLink(ctx, id, link)
}

// ListByDoctor returns every appointment involving the doctor on either
// side. An empty result is reported as ErrNotFound: callers treat a doctor
// with no appointments as a rejectable condition.
func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	items, err := s.appts.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no appointments for doctor %s", ErrNotFound, doctorID)
	}
	return items, nil
}

// ListByPatient returns the patient's appointments, newest first. The
// patient is verified first so an unknown id reads as ErrNotFound rather
// than an empty page.
func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	if _, err := s.patients.GetByID(ctx, patientID); err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return nil, 0, fmt.Errorf("%w: patient %s", ErrNotFound, patientID)
		}
		return nil, 0, err
	}
	return s.appts.ListByPatient(ctx, patientID, limit, offset)
}

// ActiveForDoctor returns the appointment whose window contains now for the
// given doctor, or (nil, nil) when there is none.
func (s *Service) ActiveForDoctor(ctx context.Context, doctorID uuid.UUID) (*Appointment, error) {
	return s.appts.ActiveForDoctor(ctx, doctorID, timeutil.ToUTC(s.now()))
}

// ListFutureForDoctor returns appointments that have not yet ended for the
// doctor, joined with display fields, ordered by start time. offset here is
// a plain row skip.
func (s *Service) ListFutureForDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Detail, int, error) {
	return s.appts.ListFutureDetailed(ctx, doctorID, timeutil.ToUTC(s.now()), limit, offset)
}

// List is the role- and filter-scoped listing. The doctor is looked up
// first: their role decides visibility, so an unknown doctor is ErrNotFound
// before any window math happens.
func (s *Service) List(ctx context.Context, doctorID uuid.UUID, f Filter, offset, limit int, showAll bool) ([]*Detail, int, error) {
	d, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctor.ErrNotFound) {
			return nil, 0, fmt.Errorf("%w: doctor %s", ErrNotFound, doctorID)
		}
		return nil, 0, err
	}

	q, err := BuildList(d, f, offset, limit, showAll, timeutil.ToUTC(s.now()))
	if err != nil {
		return nil, 0, err
	}
	return s.appts.ListDetailed(ctx, q)
}
