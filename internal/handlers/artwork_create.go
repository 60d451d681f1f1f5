package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/middlewares"
	"github.com/artfest/gallery-api/internal/services"
	"github.com/artfest/gallery-api/internal/uploads"
)

// maxUploadSize caps the multipart body of an artwork submission.
const maxUploadSize = 16 << 20 // 16 MiB

// ArtworkCreator accepts a submission through the media intake.
type ArtworkCreator interface {
	Create(ctx context.Context, artistID int64, title, description string, categoryID *int64, file io.Reader, declaredFilename string) (int64, *uploads.StoredFile, error)
}

// CreateArtworkResponse represents a successful artwork submission
// swagger:model CreateArtworkResponse
type CreateArtworkResponse struct {
	// Success message
	Message string `json:"message"`

	// Id of the pending artwork
	ArtworkID int64 `json:"artwork_id"`

	// Public URL of the stored image
	FileURL string `json:"file_url"`
}

// NewCreateArtworkHandler returns an HTTP handler for artwork submission.
// Routed behind the auth middleware. The artwork enters the catalog
// unapproved and stays invisible until moderation approves it.
// @Summary Submit an artwork
// @Description Multipart upload: file plus title, optional description and category_id. Max body 16 MiB.
// @Tags artworks
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (png, jpg, jpeg, gif, webp)"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param category_id formData int false "Category id"
// @Success 201 {object} handlers.CreateArtworkResponse "Artwork pending approval"
// @Failure 400 {object} handlers.ErrorResponse "Missing file, missing title or rejected file type"
// @Failure 401 {object} handlers.ErrorResponse "No active session"
// @Failure 413 {object} handlers.ErrorResponse "Upload exceeds the size cap"
// @Router /api/artworks [post]
func NewCreateArtworkHandler(svc ArtworkCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.GetSessionFromContext(r.Context())
		if session == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "Uploaded file is too large")
				return
			}
			writeError(w, http.StatusBadRequest, "No file uploaded")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		title := r.FormValue("title")
		if title == "" {
			writeError(w, http.StatusBadRequest, "Title is required")
			return
		}
		description := r.FormValue("description")

		var categoryID *int64
		if v := r.FormValue("category_id"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid category id")
				return
			}
			categoryID = &id
		}

		artworkID, stored, err := svc.Create(r.Context(), session.UserID, title, description, categoryID, file, header.Filename)
		if err != nil {
			switch {
			case errors.Is(err, uploads.ErrEmptyFilename):
				writeError(w, http.StatusBadRequest, "No file selected")
			case errors.Is(err, uploads.ErrInvalidFileType):
				writeError(w, http.StatusBadRequest, "Invalid file type")
			case errors.Is(err, services.ErrCategoryNotFound):
				writeError(w, http.StatusBadRequest, "Category not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateArtworkResponse{
			Message:   "Artwork uploaded successfully and is pending approval",
			ArtworkID: artworkID,
			FileURL:   "/uploads/" + stored.Filename,
		})
	}
}
