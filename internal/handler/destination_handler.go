package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"travelo-api/internal/model"
	"travelo-api/internal/service"
	"travelo-api/pkg/apierror"
)

type DestinationHandler struct {
	service *service.DestinationService
}

func NewDestinationHandler(service *service.DestinationService) *DestinationHandler {
	return &DestinationHandler{service: service}
}

func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.service.List(r.Context(), parseListQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, destinations)
}

func (h *DestinationHandler) Get(w http.ResponseWriter, r *http.Request) {
	destination, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, destination)
}

func (h *DestinationHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var input model.DestinationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	destination, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, destination)
}

func (h *DestinationHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var input model.DestinationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	destination, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, destination)
}

func (h *DestinationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	destination, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, destination)
}

func parseListQuery(r *http.Request) model.ListQuery {
	return model.ListQuery{
		FeaturedOnly: r.URL.Query().Get("featured") == "true",
		Search:       r.URL.Query().Get("search"),
	}
}
