package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dog-adoption-api/internal/domain/breeds"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

const breedColumns = `
	id, name, breed_group, origin, size,
	lifespan_min, lifespan_max, temperament,
	exercise_needs, grooming_needs, trainability,
	good_with_kids, good_with_pets,
	description, image_url,
	created_at, updated_at
`

func (r *BreedsRepo) Create(ctx context.Context, b breeds.Breed) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO breeds (`+breedColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`,
		b.ID,
		b.Name,
		string(b.Group),
		b.Origin,
		b.Size,
		b.Lifespan.Min,
		b.Lifespan.Max,
		listToJSON(b.Temperament),
		string(b.ExerciseNeeds),
		string(b.GroomingNeeds),
		string(b.Trainability),
		b.GoodWithKids,
		b.GoodWithPets,
		b.Description,
		b.ImageURL,
		b.CreatedAt,
		b.UpdatedAt,
	)
	return err
}

func (r *BreedsRepo) Update(ctx context.Context, b breeds.Breed) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE breeds
		SET
			name = $2,
			breed_group = $3,
			origin = $4,
			size = $5,
			lifespan_min = $6,
			lifespan_max = $7,
			temperament = $8,
			exercise_needs = $9,
			grooming_needs = $10,
			trainability = $11,
			good_with_kids = $12,
			good_with_pets = $13,
			description = $14,
			image_url = $15,
			updated_at = $16
		WHERE id = $1
	`,
		b.ID,
		b.Name,
		string(b.Group),
		b.Origin,
		b.Size,
		b.Lifespan.Min,
		b.Lifespan.Max,
		listToJSON(b.Temperament),
		string(b.ExerciseNeeds),
		string(b.GroomingNeeds),
		string(b.Trainability),
		b.GoodWithKids,
		b.GoodWithPets,
		b.Description,
		b.ImageURL,
		b.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return breeds.ErrNotFound
	}
	return nil
}

func (r *BreedsRepo) GetByID(ctx context.Context, id string) (breeds.Breed, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return breeds.Breed{}, breeds.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+breedColumns+`
		FROM breeds
		WHERE id = $1
	`, id)

	b, err := scanBreed(row)
	if err == sql.ErrNoRows {
		return breeds.Breed{}, breeds.ErrNotFound
	}
	return b, err
}

func (r *BreedsRepo) List(ctx context.Context, filter breeds.ListFilter) ([]breeds.Breed, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT ` + breedColumns + `
		FROM breeds
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if strings.TrimSpace(filter.Name) != "" {
		sb.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argN))
		args = append(args, "%"+strings.TrimSpace(filter.Name)+"%")
		argN++
	}
	if filter.Group != "" {
		sb.WriteString(fmt.Sprintf(" AND breed_group = $%d", argN))
		args = append(args, filter.Group)
		argN++
	}
	if filter.Size != "" {
		sb.WriteString(fmt.Sprintf(" AND size = $%d", argN))
		args = append(args, filter.Size)
		argN++
	}
	if filter.GoodWithKids != nil {
		sb.WriteString(fmt.Sprintf(" AND good_with_kids = $%d", argN))
		args = append(args, *filter.GoodWithKids)
		argN++
	}
	if filter.GoodWithPets != nil {
		sb.WriteString(fmt.Sprintf(" AND good_with_pets = $%d", argN))
		args = append(args, *filter.GoodWithPets)
		argN++
	}

	sb.WriteString(" ORDER BY created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		b, err := scanBreed(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBreed(row rowScanner) (breeds.Breed, error) {
	var b breeds.Breed
	var group, temperament, exercise, grooming, train string
	if err := row.Scan(
		&b.ID,
		&b.Name,
		&group,
		&b.Origin,
		&b.Size,
		&b.Lifespan.Min,
		&b.Lifespan.Max,
		&temperament,
		&exercise,
		&grooming,
		&train,
		&b.GoodWithKids,
		&b.GoodWithPets,
		&b.Description,
		&b.ImageURL,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return breeds.Breed{}, err
	}
	b.Group = breeds.Group(group)
	b.Temperament = listFromJSON(temperament)
	b.ExerciseNeeds = breeds.Level(exercise)
	b.GroomingNeeds = breeds.Level(grooming)
	b.Trainability = breeds.Level(train)
	return b, nil
}
