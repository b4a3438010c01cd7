package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"travelo-api/internal/model"
	"travelo-api/internal/service"
	"travelo-api/pkg/apierror"
)

type TestimonialHandler struct {
	service *service.TestimonialService
}

func NewTestimonialHandler(service *service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.List(r.Context(), parseListQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, testimonials)
}

func (h *TestimonialHandler) Get(w http.ResponseWriter, r *http.Request) {
	testimonial, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, testimonial)
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var input model.TestimonialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	testimonial, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, testimonial)
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var input model.TestimonialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	testimonial, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, testimonial)
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	testimonial, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, testimonial)
}
