package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment maps to the appointment table. Start and end times are stored
// as UTC instants; the backing table carries exclusion constraints that
// reject overlapping windows for either participating doctor.
type Appointment struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Link           string    `db:"link" json:"link"`
	StartTime      time.Time `db:"start_time" json:"start_time"`
	EndTime        time.Time `db:"end_time" json:"end_time"`
	LocalDoctorID  uuid.UUID `db:"local_doctor_id" json:"local_doctor_id"`
	RemoteDoctorID uuid.UUID `db:"remote_doctor_id" json:"remote_doctor_id"`
	PatientID      uuid.UUID `db:"patient_id" json:"patient_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// PatientInfo carries the patient display fields joined into a Detail row.
type PatientInfo struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// DoctorInfo carries the doctor display fields joined into a Detail row.
// Speciality is nil when the doctor has none assigned.
type DoctorInfo struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Speciality *string   `json:"speciality,omitempty"`
}

// Detail is an appointment joined with the patient and both doctor-side
// profiles for display.
type Detail struct {
	Appointment
	Patient      PatientInfo `json:"patient"`
	LocalDoctor  DoctorInfo  `json:"local_doctor"`
	RemoteDoctor DoctorInfo  `json:"remote_doctor"`
}
