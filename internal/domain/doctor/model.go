package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of participant roles a doctor can hold. A local
// doctor sits with the patient; a remote doctor joins the consultation over
// video. Every branch on Role must match exhaustively and treat anything
// else as invalid.
type Role string

const (
	RoleLocal  Role = "local"
	RoleRemote Role = "remote"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleLocal || r == RoleRemote
}

// Doctor maps to the doctor table.
type Doctor struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	FirstName    string     `db:"first_name" json:"first_name"`
	LastName     string     `db:"last_name" json:"last_name"`
	Email        string     `db:"email" json:"email"`
	Role         Role       `db:"role" json:"role"`
	SpecialityID *uuid.UUID `db:"speciality_id" json:"speciality_id,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// FullName returns the doctor's display name.
func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}

// Speciality maps to the speciality table.
type Speciality struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}
