package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dog-adoption-api/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

const adoptionColumns = `
	id, dog_id,
	applicant_name, email, phone,
	street, city, state, zip_code, country,
	housing_type, has_yard, experience,
	status, reason, notes,
	created_at, updated_at
`

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoption_applications (`+adoptionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		a.ID,
		a.DogID,
		a.ApplicantName,
		a.Email,
		a.Phone,
		a.Address.Street,
		a.Address.City,
		a.Address.State,
		a.Address.ZipCode,
		a.Address.Country,
		string(a.HousingType),
		a.HasYard,
		string(a.Experience),
		string(a.Status),
		a.Reason,
		a.Notes,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AdoptionsRepo) Update(ctx context.Context, a adoptions.Application) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adoption_applications
		SET
			status = $2,
			reason = $3,
			notes = $4,
			updated_at = $5
		WHERE id = $1
	`,
		a.ID,
		string(a.Status),
		a.Reason,
		a.Notes,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return adoptions.ErrNotFound
	}
	return nil
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adoptions.Application{}, adoptions.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoption_applications
		WHERE id = $1
	`, id)

	a, err := scanApplication(row)
	if err == sql.ErrNoRows {
		return adoptions.Application{}, adoptions.ErrNotFound
	}
	return a, err
}

func (r *AdoptionsRepo) List(ctx context.Context, filter adoptions.ListFilter) ([]adoptions.Application, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT ` + adoptionColumns + `
		FROM adoption_applications
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if filter.Status != "" {
		sb.WriteString(fmt.Sprintf(" AND status = $%d", argN))
		args = append(args, filter.Status)
		argN++
	}
	if filter.DogID != "" {
		sb.WriteString(fmt.Sprintf(" AND dog_id = $%d", argN))
		args = append(args, filter.DogID)
		argN++
	}

	sb.WriteString(" ORDER BY created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanApplication(row rowScanner) (adoptions.Application, error) {
	var a adoptions.Application
	var housing, experience, status string
	if err := row.Scan(
		&a.ID,
		&a.DogID,
		&a.ApplicantName,
		&a.Email,
		&a.Phone,
		&a.Address.Street,
		&a.Address.City,
		&a.Address.State,
		&a.Address.ZipCode,
		&a.Address.Country,
		&housing,
		&a.HasYard,
		&experience,
		&status,
		&a.Reason,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return adoptions.Application{}, err
	}
	a.HousingType = adoptions.HousingType(housing)
	a.Experience = adoptions.Experience(experience)
	a.Status = adoptions.Status(status)
	return a, nil
}
