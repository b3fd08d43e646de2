package handler

import (
	"context"
	"io"
	"net/http"

	"recharge-travels-service/pkg/logger"
)

const maxUploadBytes = 10 << 20

// Uploader stores admin media
type Uploader interface {
	Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error)
}

type UploadHandlers struct {
	Uploads Uploader
	Log     logger.Logger
}

// Create stores the multipart "file" under the "folder" form value
func (h UploadHandlers) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_upload", "expected multipart form up to 10MB")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteJSON(w, http.StatusUnprocessableEntity, ErrorEnvelope{
			Error:  APIError{Code: "validation_failed", Message: "file is required"},
			Fields: map[string]string{"file": "File is required"},
		})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.Uploads.Upload(r.Context(), r.FormValue("folder"), header.Filename, contentType, file)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"url": url})
}
