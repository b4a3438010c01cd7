package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travelo-api/internal/model"
	"travelo-api/pkg/apierror"
)

type DestinationStore interface {
	List(ctx context.Context, q model.ListQuery) ([]model.Destination, error)
	FindByID(ctx context.Context, id string) (model.Destination, error)
	Create(ctx context.Context, d model.Destination) error
	Update(ctx context.Context, d model.Destination) error
	Delete(ctx context.Context, id string) (model.Destination, error)
}

type DestinationService struct {
	repo DestinationStore
}

func NewDestinationService(repo DestinationStore) *DestinationService {
	return &DestinationService{repo: repo}
}

func (s *DestinationService) List(ctx context.Context, q model.ListQuery) ([]model.Destination, error) {
	return s.repo.List(ctx, q)
}

func (s *DestinationService) Get(ctx context.Context, id string) (model.Destination, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DestinationService) Create(ctx context.Context, input model.DestinationInput) (model.Destination, error) {
	if err := validateDestinationInput(input); err != nil {
		return model.Destination{}, err
	}

	now := time.Now().UTC()
	destination := model.Destination{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Location:    input.Location,
		Image:       input.Image,
		Rating:      *input.Rating,
		Price:       *input.Price,
		Description: input.Description,
		Featured:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Featured != nil {
		destination.Featured = *input.Featured
	}

	if err := s.repo.Create(ctx, destination); err != nil {
		return model.Destination{}, err
	}

	return destination, nil
}

func (s *DestinationService) Update(ctx context.Context, id string, input model.DestinationInput) (model.Destination, error) {
	if err := validateDestinationInput(input); err != nil {
		return model.Destination{}, err
	}

	destination, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Destination{}, err
	}

	destination.Name = input.Name
	destination.Location = input.Location
	destination.Image = input.Image
	destination.Rating = *input.Rating
	destination.Price = *input.Price
	destination.Description = input.Description
	if input.Featured != nil {
		destination.Featured = *input.Featured
	}
	destination.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, destination); err != nil {
		return model.Destination{}, err
	}

	return destination, nil
}

func (s *DestinationService) Delete(ctx context.Context, id string) (model.Destination, error) {
	return s.repo.Delete(ctx, id)
}

func validateDestinationInput(input model.DestinationInput) error {
	if len(input.Name) < 2 {
		return apierror.BadRequest("Name must be at least 2 characters")
	}
	if len(input.Location) < 2 {
		return apierror.BadRequest("Location must be at least 2 characters")
	}
	if !isImageRef(input.Image) {
		return apierror.BadRequest("Image must be a valid URL")
	}
	if input.Rating == nil || *input.Rating < 0 || *input.Rating > 5 {
		return apierror.BadRequest("Rating must be between 0 and 5")
	}
	if input.Price == nil || *input.Price <= 0 {
		return apierror.BadRequest("Price must be positive")
	}

	return nil
}
