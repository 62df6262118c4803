package appointment

import "errors"

var (
	// ErrNotFound signals that the requested appointment or referenced
	// doctor does not exist, or that a listing matched nothing where the
	// operation treats an empty result as absence.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest signals a caller mistake: malformed window,
	// missing participant, or an unrecognized filter or role.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConflict signals that the appointment window overlaps an
	// existing appointment for one of the participating doctors.
	ErrConflict = errors.New("appointment time conflict")
)
