package doctor

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const doctorCols = `id, first_name, last_name, email, role, speciality_id, created_at, updated_at`

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	var d Doctor
	err := r.pool.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctor WHERE id = $1`, id).
		Scan(&d.ID, &d.FirstName, &d.LastName, &d.Email, &d.Role, &d.SpecialityID, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
