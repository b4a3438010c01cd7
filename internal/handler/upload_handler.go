package handler

import (
	"errors"
	"net/http"

	"travelo-api/internal/service"
	"travelo-api/pkg/apierror"
)

type UploadHandler struct {
	service       *service.UploadService
	maxUploadSize int64
}

func NewUploadHandler(service *service.UploadService, maxUploadSize int64) *UploadHandler {
	return &UploadHandler{service: service, maxUploadSize: maxUploadSize}
}

// Upload accepts a single multipart "file" field, stores it and returns the
// public URL plus a thumbnail URL.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		if isPayloadTooLarge(err) {
			writeError(w, apierror.New("PAYLOAD_TOO_LARGE", "Image must be less than the upload limit", http.StatusRequestEntityTooLarge))
			return
		}
		writeError(w, apierror.BadRequest("Invalid multipart body"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, apierror.BadRequest("A file field is required"))
		return
	}
	defer file.Close()

	result, err := h.service.Save(file)
	if err != nil {
		if isPayloadTooLarge(err) {
			writeError(w, apierror.New("PAYLOAD_TOO_LARGE", "Image must be less than the upload limit", http.StatusRequestEntityTooLarge))
			return
		}
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, result)
}

func isPayloadTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
