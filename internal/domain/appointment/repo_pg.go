package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `a.id, a.link, a.start_time, a.end_time,
	a.local_doctor_id, a.remote_doctor_id, a.patient_id, a.created_at, a.updated_at`

const detailCols = apptCols + `,
	p.first_name, p.last_name, p.email,
	ld.first_name, ld.last_name, lds.name,
	rd.first_name, rd.last_name, rds.name`

const detailFrom = ` FROM appointment a
	JOIN patient p ON p.id = a.patient_id
	JOIN doctor ld ON ld.id = a.local_doctor_id
	LEFT JOIN speciality lds ON lds.id = ld.speciality_id
	JOIN doctor rd ON rd.id = a.remote_doctor_id
	LEFT JOIN speciality rds ON rds.id = rd.speciality_id`

func scanAppt(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.Link, &a.StartTime, &a.EndTime,
		&a.LocalDoctorID, &a.RemoteDoctorID, &a.PatientID, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func scanDetail(row pgx.Row) (*Detail, error) {
	var d Detail
	err := row.Scan(&d.ID, &d.Link, &d.StartTime, &d.EndTime,
		&d.LocalDoctorID, &d.RemoteDoctorID, &d.PatientID, &d.CreatedAt, &d.UpdatedAt,
		&d.Patient.FirstName, &d.Patient.LastName, &d.Patient.Email,
		&d.LocalDoctor.FirstName, &d.LocalDoctor.LastName, &d.LocalDoctor.Speciality,
		&d.RemoteDoctor.FirstName, &d.RemoteDoctor.LastName, &d.RemoteDoctor.Speciality)
	if err != nil {
		return nil, err
	}
	d.Patient.ID = d.PatientID
	d.LocalDoctor.ID = d.LocalDoctorID
	d.RemoteDoctor.ID = d.RemoteDoctorID
	return &d, nil
}

// mapWriteErr translates constraint violations into the package sentinels.
// 23505 is unique_violation, 23P01 is exclusion_violation (the overlap
// constraints on the appointment table).
func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23P01":
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w: %s", ErrNotFound, pgErr.ConstraintName)
		}
	}
	return err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO appointment (id, link, start_time, end_time, local_doctor_id, remote_doctor_id, patient_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		a.ID, a.Link, a.StartTime, a.EndTime, a.LocalDoctorID, a.RemoteDoctorID, a.PatientID).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppt(r.pool.QueryRow(ctx, `SELECT `+apptCols+` FROM appointment a WHERE a.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Delete is idempotent: removing a missing row is not an error.
func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	return err
}

// UpdateLink is likewise lenient about missing rows.
func (r *repoPG) UpdateLink(ctx context.Context, id uuid.UUID, link string) error {
	_, err := r.pool.Exec(ctx, `UPDATE appointment SET link = $2, updated_at = NOW() WHERE id = $1`, id, link)
	return err
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment a
		WHERE a.local_doctor_id = $1 OR a.remote_doctor_id = $1
		ORDER BY a.start_time ASC`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppt(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment a
		WHERE a.patient_id = $1
		ORDER BY a.start_time DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppt(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ActiveForDoctor(ctx context.Context, doctorID uuid.UUID, now time.Time) (*Appointment, error) {
	a, err := scanAppt(r.pool.QueryRow(ctx, `
		SELECT `+apptCols+` FROM appointment a
		WHERE (a.local_doctor_id = $1 OR a.remote_doctor_id = $1)
		  AND a.start_time <= $2 AND a.end_time > $2
		ORDER BY a.start_time ASC LIMIT 1`, doctorID, now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repoPG) ListFutureDetailed(ctx context.Context, doctorID uuid.UUID, now time.Time, limit, offset int) ([]*Detail, int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM appointment a
		WHERE (a.local_doctor_id = $1 OR a.remote_doctor_id = $1) AND a.end_time >= $2`,
		doctorID, now).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+detailCols+detailFrom+`
		WHERE (a.local_doctor_id = $1 OR a.remote_doctor_id = $1) AND a.end_time >= $2
		ORDER BY a.start_time ASC LIMIT $3 OFFSET $4`, doctorID, now, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Detail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListDetailed(ctx context.Context, q ListQuery) ([]*Detail, int, error) {
	where, args, next := q.Render()

	countQuery := `SELECT COUNT(*) FROM appointment a`
	query := `SELECT ` + detailCols + detailFrom
	if where != "" {
		countQuery += ` WHERE ` + where
		query += ` WHERE ` + where
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY %s LIMIT $%d OFFSET $%d`, q.OrderBy(), next, next+1)
	args = append(args, q.Limit(), q.Skip())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Detail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}
