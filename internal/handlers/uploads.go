package handlers

//go:generate mockgen -source=uploads.go -destination=uploads_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-book-exchange/internal/storage"
)

// ImageOpener reads stored listing images.
type ImageOpener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// NewUploadHandler returns an HTTP handler serving stored images.
// @Summary Get an uploaded image
// @Tags books
// @Produce octet-stream
// @Param name path string true "Image name"
// @Success 200 {file} binary
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Router /uploads/{name} [get]
func NewUploadHandler(images ImageOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		rc, err := images.Open(r.Context(), name)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Image not found")
				return
			}
			writeInternalError(w, r, err)
			return
		}
		defer rc.Close()

		contentType := mime.TypeByExtension(filepath.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		io.Copy(w, rc)
	}
}
