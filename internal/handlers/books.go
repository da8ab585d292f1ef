package handlers

//go:generate mockgen -source=books.go -destination=books_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-book-exchange/internal/models"
	"github.com/sbilibin2017/gw-book-exchange/internal/services"
)

// multipartMemory is how much of a multipart form is kept in memory before spilling to temp files.
const multipartMemory = 8 << 20

// BookCreator publishes a listing.
type BookCreator interface {
	Create(ctx context.Context, in models.NewBook, image *models.Image) (*models.Book, error)
}

// BookLister lists listings.
type BookLister interface {
	List(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
}

// BookGetter fetches a single listing.
type BookGetter interface {
	Get(ctx context.Context, id string) (*models.Book, error)
}

// BookUpdater edits a listing.
type BookUpdater interface {
	Update(ctx context.Context, id string, upd models.BookUpdate) (*models.Book, error)
}

// BookDeleter removes a listing.
type BookDeleter interface {
	Delete(ctx context.Context, id string) error
}

// BookResponse carries a confirmation and the affected listing
// swagger:model BookResponse
type BookResponse struct {
	// Success message
	// default: Book added
	Message string       `json:"message"`
	Book    *models.Book `json:"book"`
}

// UpdateBookRequest represents the JSON body of a listing update
// swagger:model UpdateBookRequest
type UpdateBookRequest struct {
	// New status, usually available or unavailable
	// default: unavailable
	Status   string   `json:"status"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Genre    string   `json:"genre"`
	City     string   `json:"city"`
	Location string   `json:"location"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Rating   *float64 `json:"rating"`
}

// NewCreateBookHandler returns an HTTP handler publishing a listing from a form.
// @Summary Add a book
// @Description Publishes a listing for an owner. Accepts multipart or urlencoded forms with an optional image.
// @Tags books
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param author formData string true "Author"
// @Param category formData string false "Genre"
// @Param city formData string true "City"
// @Param location formData string false "Pickup location, defaults to city"
// @Param rating formData number false "Rating 0-5"
// @Param ownerUsername formData string true "Owner email"
// @Param image formData file false "Cover image"
// @Success 201 {object} handlers.BookResponse "Book added"
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields or invalid rating"
// @Failure 403 {object} handlers.ErrorResponse "Only owners can list books"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /books [post]
func NewCreateBookHandler(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		in := models.NewBook{
			Title:         r.FormValue("title"),
			Author:        r.FormValue("author"),
			Category:      r.FormValue("category"),
			City:          r.FormValue("city"),
			Location:      r.FormValue("location"),
			Rating:        r.FormValue("rating"),
			OwnerUsername: r.FormValue("ownerUsername"),
		}

		var image *models.Image
		if r.MultipartForm != nil {
			file, header, err := r.FormFile("image")
			switch {
			case err == nil:
				defer file.Close()
				image = &models.Image{
					Filename:    header.Filename,
					ContentType: header.Header.Get("Content-Type"),
					Size:        header.Size,
					Content:     file,
				}
			case !errors.Is(err, http.ErrMissingFile):
				writeError(w, http.StatusBadRequest, msgInvalidBody)
				return
			}
		}

		book, err := svc.Create(r.Context(), in, image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingBookFields):
				writeError(w, http.StatusBadRequest, "Missing required fields: title, author, city, ownerUsername")
			case errors.Is(err, services.ErrInvalidRating):
				writeError(w, http.StatusBadRequest, "Invalid rating (0-5 required)")
			case errors.Is(err, services.ErrNotOwner):
				writeError(w, http.StatusForbidden, "Only owners can list books")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, BookResponse{
			Message: "Book added",
			Book:    book,
		})
	}
}

// NewListBooksHandler returns an HTTP handler listing books.
// @Summary List books
// @Description Returns listings in insertion order. Title, city and genre are case-insensitive substring filters.
// @Tags books
// @Produce json
// @Param title query string false "Title contains"
// @Param city query string false "City contains"
// @Param genre query string false "Genre contains"
// @Param ownerUsername query string false "Exact owner email"
// @Success 200 {array} models.Book
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /books [get]
func NewListBooksHandler(svc BookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		books, err := svc.List(r.Context(), models.BookFilter{
			Title:         q.Get("title"),
			City:          q.Get("city"),
			Genre:         q.Get("genre"),
			OwnerUsername: q.Get("ownerUsername"),
		})
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if books == nil {
			books = []models.Book{}
		}

		writeJSON(w, http.StatusOK, books)
	}
}

// NewGetBookHandler returns an HTTP handler fetching one listing.
// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} models.Book
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /books/{id} [get]
func NewGetBookHandler(svc BookGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		book, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, services.ErrBookNotFound) {
				writeError(w, http.StatusNotFound, "Book not found")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, book)
	}
}

// NewUpdateBookHandler returns an HTTP handler editing a listing.
// @Summary Update a book
// @Description Merges the non-empty fields into the listing. Any status value is accepted.
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param updateBookRequest body handlers.UpdateBookRequest true "Listing changes"
// @Success 200 {object} handlers.BookResponse "Book updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or rating"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /books/{id} [put]
func NewUpdateBookHandler(svc BookUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateBookRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		book, err := svc.Update(r.Context(), chi.URLParam(r, "id"), models.BookUpdate{
			Status:   req.Status,
			Title:    req.Title,
			Author:   req.Author,
			Genre:    req.Genre,
			City:     req.City,
			Location: req.Location,
			Email:    req.Email,
			Phone:    req.Phone,
			Rating:   req.Rating,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				writeError(w, http.StatusNotFound, "Book not found")
			case errors.Is(err, services.ErrInvalidRating):
				writeError(w, http.StatusBadRequest, "Invalid rating (0-5 required)")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, BookResponse{
			Message: "Book updated",
			Book:    book,
		})
	}
}

// NewDeleteBookHandler returns an HTTP handler removing a listing.
// @Summary Delete a book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} handlers.MessageResponse "Book deleted"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /books/{id} [delete]
func NewDeleteBookHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			if errors.Is(err, services.ErrBookNotFound) {
				writeError(w, http.StatusNotFound, "Book not found")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Book deleted"})
	}
}

// parseForm parses multipart bodies with an in-memory cap, anything else as urlencoded.
func parseForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(multipartMemory)
	}
	return r.ParseForm()
}
