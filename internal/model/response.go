package model

// APIResponse is the uniform envelope for every JSON endpoint. Error is a
// plain message string; internal error detail stays in the server logs.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UploadResult is returned by the image upload endpoint.
type UploadResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}
