package repositories

import (
	"context"
	"strings"
	"sync"

	"github.com/sbilibin2017/gw-book-exchange/internal/models"
)

// BookMemoryRepository keeps listings in process memory in insertion order.
type BookMemoryRepository struct {
	mu    sync.RWMutex
	books []models.Book
}

// NewBookMemoryRepository creates an empty in-memory book repository.
func NewBookMemoryRepository() *BookMemoryRepository {
	return &BookMemoryRepository{}
}

// GetByID returns the listing with the given id or nil if there is none.
func (r *BookMemoryRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		b := r.books[i]
		return &b, nil
	}
	return nil, nil
}

// List returns listings matching the filter.
func (r *BookMemoryRepository) List(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]models.Book, 0, len(r.books))
	for _, b := range r.books {
		if filter.IsEmpty() || matchesBook(b, filter) {
			res = append(res, b)
		}
	}
	return res, nil
}

// Save appends a new listing.
func (r *BookMemoryRepository) Save(ctx context.Context, book models.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.books = append(r.books, book)
	return nil
}

// Update replaces the listing with the same id.
func (r *BookMemoryRepository) Update(ctx context.Context, book models.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(book.ID)
	if i < 0 {
		return ErrNoRecord
	}
	r.books[i] = book
	return nil
}

// Delete removes the listing with the given id.
func (r *BookMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNoRecord
	}
	r.books = append(r.books[:i], r.books[i+1:]...)
	return nil
}

// indexOf must be called with the lock held.
func (r *BookMemoryRepository) indexOf(id string) int {
	for i, b := range r.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func matchesBook(b models.Book, f models.BookFilter) bool {
	if f.Title != "" && !containsFold(b.Title, f.Title) {
		return false
	}
	if f.City != "" && !containsFold(b.City, f.City) {
		return false
	}
	if f.Genre != "" && !containsFold(b.Genre, f.Genre) {
		return false
	}
	if f.OwnerUsername != "" && b.OwnerUsername != f.OwnerUsername {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
