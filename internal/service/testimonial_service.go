package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travelo-api/internal/model"
	"travelo-api/pkg/apierror"
)

type TestimonialStore interface {
	List(ctx context.Context, q model.ListQuery) ([]model.Testimonial, error)
	FindByID(ctx context.Context, id string) (model.Testimonial, error)
	Create(ctx context.Context, t model.Testimonial) error
	Update(ctx context.Context, t model.Testimonial) error
	Delete(ctx context.Context, id string) (model.Testimonial, error)
}

type TestimonialService struct {
	repo TestimonialStore
}

func NewTestimonialService(repo TestimonialStore) *TestimonialService {
	return &TestimonialService{repo: repo}
}

func (s *TestimonialService) List(ctx context.Context, q model.ListQuery) ([]model.Testimonial, error) {
	return s.repo.List(ctx, q)
}

func (s *TestimonialService) Get(ctx context.Context, id string) (model.Testimonial, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TestimonialService) Create(ctx context.Context, input model.TestimonialInput) (model.Testimonial, error) {
	if err := validateTestimonialInput(input); err != nil {
		return model.Testimonial{}, err
	}

	now := time.Now().UTC()
	testimonial := model.Testimonial{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Role:      input.Role,
		Image:     input.Image,
		Rating:    *input.Rating,
		Comment:   input.Comment,
		Featured:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Featured != nil {
		testimonial.Featured = *input.Featured
	}

	if err := s.repo.Create(ctx, testimonial); err != nil {
		return model.Testimonial{}, err
	}

	return testimonial, nil
}

func (s *TestimonialService) Update(ctx context.Context, id string, input model.TestimonialInput) (model.Testimonial, error) {
	if err := validateTestimonialInput(input); err != nil {
		return model.Testimonial{}, err
	}

	testimonial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Testimonial{}, err
	}

	testimonial.Name = input.Name
	testimonial.Role = input.Role
	testimonial.Image = input.Image
	testimonial.Rating = *input.Rating
	testimonial.Comment = input.Comment
	if input.Featured != nil {
		testimonial.Featured = *input.Featured
	}
	testimonial.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, testimonial); err != nil {
		return model.Testimonial{}, err
	}

	return testimonial, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id string) (model.Testimonial, error) {
	return s.repo.Delete(ctx, id)
}

func validateTestimonialInput(input model.TestimonialInput) error {
	if len(input.Name) < 2 {
		return apierror.BadRequest("Name must be at least 2 characters")
	}
	if len(input.Role) < 2 {
		return apierror.BadRequest("Role must be at least 2 characters")
	}
	if !isImageRef(input.Image) {
		return apierror.BadRequest("Image must be a valid URL")
	}
	if input.Rating == nil || *input.Rating < 0 || *input.Rating > 5 {
		return apierror.BadRequest("Rating must be between 0 and 5")
	}
	if len(input.Comment) < 10 {
		return apierror.BadRequest("Comment must be at least 10 characters")
	}

	return nil
}
