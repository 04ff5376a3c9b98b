package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dog-adoption-api/internal/domain/training"
)

type TrainingRepo struct {
	db *sql.DB
}

func NewTrainingRepo(db *sql.DB) *TrainingRepo {
	return &TrainingRepo{db: db}
}

const trainingColumns = `
	id, dog_id,
	type, trainer, facility,
	start_date, end_date,
	status, skills, progress,
	cost, notes, certificates,
	created_at, updated_at
`

func (r *TrainingRepo) Create(ctx context.Context, rec training.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO training_records (`+trainingColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		rec.ID,
		rec.DogID,
		string(rec.Type),
		rec.Trainer,
		rec.Facility,
		rec.StartDate,
		toNullDate(rec.EndDate),
		string(rec.Status),
		listToJSON(rec.Skills),
		string(rec.Progress),
		toNullFloat(rec.Cost),
		rec.Notes,
		listToJSON(rec.Certificates),
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *TrainingRepo) Update(ctx context.Context, rec training.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE training_records
		SET
			type = $2,
			trainer = $3,
			facility = $4,
			start_date = $5,
			end_date = $6,
			status = $7,
			skills = $8,
			progress = $9,
			cost = $10,
			notes = $11,
			certificates = $12,
			updated_at = $13
		WHERE id = $1
	`,
		rec.ID,
		string(rec.Type),
		rec.Trainer,
		rec.Facility,
		rec.StartDate,
		toNullDate(rec.EndDate),
		string(rec.Status),
		listToJSON(rec.Skills),
		string(rec.Progress),
		toNullFloat(rec.Cost),
		rec.Notes,
		listToJSON(rec.Certificates),
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return training.ErrNotFound
	}
	return nil
}

func (r *TrainingRepo) GetByID(ctx context.Context, id string) (training.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return training.Record{}, training.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+trainingColumns+`
		FROM training_records
		WHERE id = $1
	`, id)

	rec, err := scanTrainingRecord(row)
	if err == sql.ErrNoRows {
		return training.Record{}, training.ErrNotFound
	}
	return rec, err
}

func (r *TrainingRepo) List(ctx context.Context, filter training.ListFilter) ([]training.Record, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT ` + trainingColumns + `
		FROM training_records
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
	if filter.Status != "" {
		sb.WriteString(fmt.Sprintf(" AND status = $%d", argN))
		args = append(args, filter.Status)
		argN++
	}
	if strings.TrimSpace(filter.Trainer) != "" {
		sb.WriteString(fmt.Sprintf(" AND trainer ILIKE $%d", argN))
		args = append(args, "%"+strings.TrimSpace(filter.Trainer)+"%")
		argN++
	}

	sb.WriteString(" ORDER BY created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]training.Record, 0)
	for rows.Next() {
		rec, err := scanTrainingRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanTrainingRecord(row rowScanner) (training.Record, error) {
	var rec training.Record
	var typ, status, skills, progress, certificates string
	var endDate sql.NullTime
	var cost sql.NullFloat64
	if err := row.Scan(
		&rec.ID,
		&rec.DogID,
		&typ,
		&rec.Trainer,
		&rec.Facility,
		&rec.StartDate,
		&endDate,
		&status,
		&skills,
		&progress,
		&cost,
		&rec.Notes,
		&certificates,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return training.Record{}, err
	}
	rec.Type = training.TrainingType(typ)
	rec.EndDate = fromNullDate(endDate)
	rec.Status = training.Status(status)
	rec.Skills = listFromJSON(skills)
	rec.Progress = training.Progress(progress)
	rec.Cost = fromNullFloat(cost)
	rec.Certificates = listFromJSON(certificates)
	return rec, nil
}
