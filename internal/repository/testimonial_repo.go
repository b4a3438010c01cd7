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

type TestimonialRepository struct {
	pool *pgxpool.Pool
}

func NewTestimonialRepository(pool *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{pool: pool}
}

const testimonialColumns = `id, name, role, image, rating, comment, featured, created_at, updated_at`

func scanTestimonial(row pgx.Row) (model.Testimonial, error) {
	var t model.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Role, &t.Image, &t.Rating, &t.Comment,
		&t.Featured, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// List returns testimonials newest first; search matches name or role.
func (r *TestimonialRepository) List(ctx context.Context, q model.ListQuery) ([]model.Testimonial, error) {
	sql := `SELECT ` + testimonialColumns + ` FROM testimonials`
	conditions := []string{}
	args := []any{}

	if q.FeaturedOnly {
		conditions = append(conditions, `featured`)
	}
	if strings.TrimSpace(q.Search) != "" {
		args = append(args, likePattern(q.Search))
		conditions = append(conditions, fmt.Sprintf(`(name ILIKE $%d OR role ILIKE $%d)`, len(args), len(args)))
	}
	if len(conditions) > 0 {
		sql += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := make([]model.Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id string) (model.Testimonial, error) {
	t, err := scanTestimonial(r.pool.QueryRow(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Testimonial{}, apierror.NotFound("Testimonial not found")
	}
	if err != nil {
		return model.Testimonial{}, fmt.Errorf("find testimonial by id: %w", err)
	}
	return t, nil
}

func (r *TestimonialRepository) Create(ctx context.Context, t model.Testimonial) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO testimonials (id, name, role, image, rating, comment, featured, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.Name, t.Role, t.Image, t.Rating, t.Comment, t.Featured, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) Update(ctx context.Context, t model.Testimonial) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE testimonials
		 SET name = $2, role = $3, image = $4, rating = $5, comment = $6,
		     featured = $7, updated_at = $8
		 WHERE id = $1`,
		t.ID, t.Name, t.Role, t.Image, t.Rating, t.Comment, t.Featured, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound("Testimonial not found")
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) (model.Testimonial, error) {
	t, err := scanTestimonial(r.pool.QueryRow(ctx,
		`DELETE FROM testimonials WHERE id = $1 RETURNING `+testimonialColumns, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Testimonial{}, apierror.NotFound("Testimonial not found")
	}
	if err != nil {
		return model.Testimonial{}, fmt.Errorf("delete testimonial: %w", err)
	}
	return t, nil
}

func (r *TestimonialRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM testimonials`); err != nil {
		return fmt.Errorf("delete all testimonials: %w", err)
	}
	return nil
}
