package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"travelo-api/internal/model"
	"travelo-api/pkg/apierror"
)

type DestinationRepository struct {
	pool *pgxpool.Pool
}

func NewDestinationRepository(pool *pgxpool.Pool) *DestinationRepository {
	return &DestinationRepository{pool: pool}
}

const destinationColumns = `id, name, location, image, rating, price, description, featured, created_at, updated_at`

func scanDestination(row pgx.Row) (model.Destination, error) {
	var d model.Destination
	err := row.Scan(&d.ID, &d.Name, &d.Location, &d.Image, &d.Rating, &d.Price,
		&d.Description, &d.Featured, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// List returns destinations newest first, optionally restricted to featured
// records and to a case-insensitive substring match on name or location.
func (r *DestinationRepository) List(ctx context.Context, q model.ListQuery) ([]model.Destination, error) {
	sql := `SELECT ` + destinationColumns + ` FROM destinations`
	conditions := []string{}
	args := []any{}

	if q.FeaturedOnly {
		conditions = append(conditions, `featured`)
	}
	if strings.TrimSpace(q.Search) != "" {
		args = append(args, likePattern(q.Search))
		conditions = append(conditions, fmt.Sprintf(`(name ILIKE $%d OR location ILIKE $%d)`, len(args), len(args)))
	}
	if len(conditions) > 0 {
		sql += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()

	destinations := make([]model.Destination, 0)
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}

func (r *DestinationRepository) FindByID(ctx context.Context, id string) (model.Destination, error) {
	d, err := scanDestination(r.pool.QueryRow(ctx,
		`SELECT `+destinationColumns+` FROM destinations WHERE id = $1`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Destination{}, apierror.NotFound("Destination not found")
	}
	if err != nil {
		return model.Destination{}, fmt.Errorf("find destination by id: %w", err)
	}
	return d, nil
}

func (r *DestinationRepository) Create(ctx context.Context, d model.Destination) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO destinations (id, name, location, image, rating, price, description, featured, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.Name, d.Location, d.Image, d.Rating, d.Price, d.Description, d.Featured, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	return nil
}

func (r *DestinationRepository) Update(ctx context.Context, d model.Destination) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE destinations
		 SET name = $2, location = $3, image = $4, rating = $5, price = $6,
		     description = $7, featured = $8, updated_at = $9
		 WHERE id = $1`,
		d.ID, d.Name, d.Location, d.Image, d.Rating, d.Price, d.Description, d.Featured, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update destination: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound("Destination not found")
	}
	return nil
}

// Delete removes the record and returns it, matching the API contract that
// deletion echoes the deleted document.
func (r *DestinationRepository) Delete(ctx context.Context, id string) (model.Destination, error) {
	d, err := scanDestination(r.pool.QueryRow(ctx,
		`DELETE FROM destinations WHERE id = $1 RETURNING `+destinationColumns, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Destination{}, apierror.NotFound("Destination not found")
	}
	if err != nil {
		return model.Destination{}, fmt.Errorf("delete destination: %w", err)
	}
	return d, nil
}

func (r *DestinationRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM destinations`); err != nil {
		return fmt.Errorf("delete all destinations: %w", err)
	}
	return nil
}
