package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dog-adoption-api/internal/domain/health"
)

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

const healthColumns = `
	id, dog_id,
	type, record_date,
	veterinarian, clinic, description,
	medications, cost, follow_up_date,
	created_at, updated_at
`

func (r *HealthRepo) Create(ctx context.Context, rec health.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO health_records (`+healthColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		rec.ID,
		rec.DogID,
		string(rec.Type),
		rec.Date,
		rec.Veterinarian,
		rec.Clinic,
		rec.Description,
		listToJSON(rec.Medications),
		toNullFloat(rec.Cost),
		toNullDate(rec.FollowUpDate),
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *HealthRepo) Update(ctx context.Context, rec health.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE health_records
		SET
			type = $2,
			record_date = $3,
			veterinarian = $4,
			clinic = $5,
			description = $6,
			medications = $7,
			cost = $8,
			follow_up_date = $9,
			updated_at = $10
		WHERE id = $1
	`,
		rec.ID,
		string(rec.Type),
		rec.Date,
		rec.Veterinarian,
		rec.Clinic,
		rec.Description,
		listToJSON(rec.Medications),
		toNullFloat(rec.Cost),
		toNullDate(rec.FollowUpDate),
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return health.ErrNotFound
	}
	return nil
}

func (r *HealthRepo) GetByID(ctx context.Context, id string) (health.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return health.Record{}, health.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+healthColumns+`
		FROM health_records
		WHERE id = $1
	`, id)

	rec, err := scanHealthRecord(row)
	if err == sql.ErrNoRows {
		return health.Record{}, health.ErrNotFound
	}
	return rec, err
}

func (r *HealthRepo) List(ctx context.Context, filter health.ListFilter) ([]health.Record, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT ` + healthColumns + `
		FROM health_records
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if filter.DogID != "" {
		sb.WriteString(fmt.Sprintf(" AND dog_id = $%d", argN))
		args = append(args, filter.DogID)
		argN++
	}
	if filter.Type != "" {
		sb.WriteString(fmt.Sprintf(" AND type = $%d", argN))
		args = append(args, filter.Type)
		argN++
	}
	if strings.TrimSpace(filter.Veterinarian) != "" {
		sb.WriteString(fmt.Sprintf(" AND veterinarian ILIKE $%d", argN))
		args = append(args, "%"+strings.TrimSpace(filter.Veterinarian)+"%")
		argN++
	}
	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND record_date >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND record_date <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	sb.WriteString(" ORDER BY created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.Record, 0)
	for rows.Next() {
		rec, err := scanHealthRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanHealthRecord(row rowScanner) (health.Record, error) {
	var rec health.Record
	var typ, medications string
	var cost sql.NullFloat64
	var followUp sql.NullTime
	if err := row.Scan(
		&rec.ID,
		&rec.DogID,
		&typ,
		&rec.Date,
		&rec.Veterinarian,
		&rec.Clinic,
		&rec.Description,
		&medications,
		&cost,
		&followUp,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return health.Record{}, err
	}
	rec.Type = health.RecordType(typ)
	rec.Medications = listFromJSON(medications)
	rec.Cost = fromNullFloat(cost)
	rec.FollowUpDate = fromNullDate(followUp)
	return rec, nil
}
