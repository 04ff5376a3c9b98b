package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dog-adoption-api/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

const dogColumns = `
	id, name, breed, age, weight, gender, color, size,
	temperament, neutered, microchip, photos, description,
	created_at, updated_at
`

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dogs (`+dogColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		d.ID,
		d.Name,
		d.Breed,
		d.Age,
		d.Weight,
		string(d.Gender),
		d.Color,
		string(d.Size),
		listToJSON(d.Temperament),
		d.Neutered,
		d.Microchip,
		listToJSON(d.Photos),
		d.Description,
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dogs
		SET
			name = $2,
			breed = $3,
			age = $4,
			weight = $5,
			gender = $6,
			color = $7,
			size = $8,
			temperament = $9,
			neutered = $10,
			microchip = $11,
			photos = $12,
			description = $13,
			updated_at = $14
		WHERE id = $1
	`,
		d.ID,
		d.Name,
		d.Breed,
		d.Age,
		d.Weight,
		string(d.Gender),
		d.Color,
		string(d.Size),
		listToJSON(d.Temperament),
		d.Neutered,
		d.Microchip,
		listToJSON(d.Photos),
		d.Description,
		d.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.Dog{}, dogs.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		WHERE id = $1
	`, id)

	d, err := scanDog(row)
	if err == sql.ErrNoRows {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return d, err
}

func (r *DogsRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) List(ctx context.Context, filter dogs.ListFilter) ([]dogs.Dog, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT ` + dogColumns + `
		FROM dogs
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if strings.TrimSpace(filter.Breed) != "" {
		sb.WriteString(fmt.Sprintf(" AND breed ILIKE $%d", argN))
		args = append(args, "%"+strings.TrimSpace(filter.Breed)+"%")
		argN++
	}
	if filter.Gender != "" {
		sb.WriteString(fmt.Sprintf(" AND gender = $%d", argN))
		args = append(args, filter.Gender)
		argN++
	}
	if filter.Size != "" {
		sb.WriteString(fmt.Sprintf(" AND size = $%d", argN))
		args = append(args, filter.Size)
		argN++
	}
	if filter.AgeMin != nil {
		sb.WriteString(fmt.Sprintf(" AND age >= $%d", argN))
		args = append(args, *filter.AgeMin)
		argN++
	}
	if filter.AgeMax != nil {
		sb.WriteString(fmt.Sprintf(" AND age <= $%d", argN))
		args = append(args, *filter.AgeMax)
		argN++
	}
	if filter.WeightMin != nil {
		sb.WriteString(fmt.Sprintf(" AND weight >= $%d", argN))
		args = append(args, *filter.WeightMin)
		argN++
	}
	if filter.WeightMax != nil {
		sb.WriteString(fmt.Sprintf(" AND weight <= $%d", argN))
		args = append(args, *filter.WeightMax)
		argN++
	}
	if filter.Neutered != nil {
		sb.WriteString(fmt.Sprintf(" AND neutered = $%d", argN))
		args = append(args, *filter.Neutered)
		argN++
	}

	sb.WriteString(" ORDER BY created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDog(row rowScanner) (dogs.Dog, error) {
	var d dogs.Dog
	var gender, size, temperament, photos string
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Breed,
		&d.Age,
		&d.Weight,
		&gender,
		&d.Color,
		&size,
		&temperament,
		&d.Neutered,
		&d.Microchip,
		&photos,
		&d.Description,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return dogs.Dog{}, err
	}
	d.Gender = dogs.Gender(gender)
	d.Size = dogs.Size(size)
	d.Temperament = listFromJSON(temperament)
	d.Photos = listFromJSON(photos)
	return d, nil
}
