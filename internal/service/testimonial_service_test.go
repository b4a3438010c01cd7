package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"travelo-api/internal/model"
	"travelo-api/pkg/apierror"
)

type fakeTestimonialStore struct {
	byID map[string]model.Testimonial
}

func newFakeTestimonialStore() *fakeTestimonialStore {
	return &fakeTestimonialStore{byID: map[string]model.Testimonial{}}
}

func (s *fakeTestimonialStore) List(_ context.Context, _ model.ListQuery) ([]model.Testimonial, error) {
	out := make([]model.Testimonial, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	return out, nil
}

func (s *fakeTestimonialStore) FindByID(_ context.Context, id string) (model.Testimonial, error) {
	item, ok := s.byID[id]
	if !ok {
		return model.Testimonial{}, apierror.NotFound("Testimonial not found")
	}
	return item, nil
}

func (s *fakeTestimonialStore) Create(_ context.Context, item model.Testimonial) error {
	s.byID[item.ID] = item
	return nil
}

func (s *fakeTestimonialStore) Update(_ context.Context, item model.Testimonial) error {
	if _, ok := s.byID[item.ID]; !ok {
		return apierror.NotFound("Testimonial not found")
	}
	s.byID[item.ID] = item
	return nil
}

func (s *fakeTestimonialStore) Delete(_ context.Context, id string) (model.Testimonial, error) {
	item, ok := s.byID[id]
	if !ok {
		return model.Testimonial{}, apierror.NotFound("Testimonial not found")
	}
	delete(s.byID, id)
	return item, nil
}

func validTestimonialInput() model.TestimonialInput {
	return model.TestimonialInput{
		Name:   "John Doe",
		Role:   "Travel Blogger",
		Image:  "https://example.com/avatar.jpg",
		Rating: float64Ptr(5),
		Comment: "Travelo made my trip planning easy. Great destinations " +
			"and excellent service.",
	}
}

func TestTestimonialCreateValidation(t *testing.T) {
	svc := NewTestimonialService(newFakeTestimonialStore())

	cases := []struct {
		name   string
		mutate func(*model.TestimonialInput)
	}{
		{"short name", func(in *model.TestimonialInput) { in.Name = "J" }},
		{"short role", func(in *model.TestimonialInput) { in.Role = "T" }},
		{"bad image", func(in *model.TestimonialInput) { in.Image = "nope" }},
		{"missing rating", func(in *model.TestimonialInput) { in.Rating = nil }},
		{"rating out of range", func(in *model.TestimonialInput) { in.Rating = float64Ptr(6) }},
		{"short comment", func(in *model.TestimonialInput) { in.Comment = "too short" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validTestimonialInput()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			var apiErr *apierror.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, 400, apiErr.HTTPStatus)
		})
	}
}

func TestTestimonialCreateAndUpdate(t *testing.T) {
	store := newFakeTestimonialStore()
	svc := NewTestimonialService(store)

	created, err := svc.Create(context.Background(), validTestimonialInput())
	require.NoError(t, err)
	require.True(t, created.Featured)

	update := validTestimonialInput()
	update.Role = "Adventure Enthusiast"
	update.Featured = boolPtr(false)
	updated, err := svc.Update(context.Background(), created.ID, update)
	require.NoError(t, err)
	require.Equal(t, "Adventure Enthusiast", updated.Role)
	require.False(t, updated.Featured)
}

func TestTestimonialDelete(t *testing.T) {
	store := newFakeTestimonialStore()
	svc := NewTestimonialService(store)

	created, err := svc.Create(context.Background(), validTestimonialInput())
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, deleted.ID)

	_, err = svc.Delete(context.Background(), created.ID)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.HTTPStatus)
}
