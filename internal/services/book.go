package services

//go:generate mockgen -source=book.go -destination=book_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-book-exchange/internal/logger"
	"github.com/sbilibin2017/gw-book-exchange/internal/models"
	"github.com/sbilibin2017/gw-book-exchange/internal/repositories"
	"github.com/sbilibin2017/gw-book-exchange/internal/validation"
	"github.com/segmentio/kafka-go"
)

// UploadsPrefix is the public path under which stored images are served.
const UploadsPrefix = "/uploads/"

var (
	ErrMissingBookFields = errors.New("missing required fields: title, author, city, ownerUsername")
	ErrNotOwner          = errors.New("only owners can list books")
	ErrInvalidRating     = errors.New("invalid rating (0-5 required)")
	ErrBookNotFound      = errors.New("book not found")
)

// BookReader defines read operations for listings.
type BookReader interface {
	GetByID(ctx context.Context, id string) (*models.Book, error)
	List(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
}

// BookWriter defines write operations for listings.
type BookWriter interface {
	Save(ctx context.Context, book models.Book) error
	Update(ctx context.Context, book models.Book) error
	Delete(ctx context.Context, id string) error
}

// OwnerReader looks up the user a listing is published for.
type OwnerReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ImageSaver stores uploaded images.
type ImageSaver interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
}

// BookCache caches listing query results.
type BookCache interface {
	GetList(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	SetList(ctx context.Context, filter models.BookFilter, books []models.Book) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AfterCommitFunc defers fn until the write in ctx is committed.
type AfterCommitFunc func(ctx context.Context, fn func(ctx context.Context))

func runNow(ctx context.Context, fn func(ctx context.Context)) { fn(ctx) }

// BookService handles listing operations, image uploads and event publishing.
// cache and kafkaWriter are optional.
type BookService struct {
	reader      BookReader
	writer      BookWriter
	owners      OwnerReader
	images      ImageSaver
	cache       BookCache
	kafkaWriter KafkaWriter
	afterCommit AfterCommitFunc
}

// NewBookService creates a new BookService.
func NewBookService(
	reader BookReader,
	writer BookWriter,
	owners OwnerReader,
	images ImageSaver,
	cache BookCache,
	kafkaWriter KafkaWriter,
) *BookService {
	return &BookService{
		reader:      reader,
		writer:      writer,
		owners:      owners,
		images:      images,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		afterCommit: runNow,
	}
}

// WithAfterCommit makes cache invalidation and event publishing wait for the
// surrounding transaction. Without it they run as soon as the write returns.
func (s *BookService) WithAfterCommit(fn AfterCommitFunc) *BookService {
	if fn != nil {
		s.afterCommit = fn
	}
	return s
}

// Create publishes a new listing for an owner. image may be nil.
func (s *BookService) Create(ctx context.Context, in models.NewBook, image *models.Image) (*models.Book, error) {
	log := logger.FromContext(ctx)

	if !validation.ListingComplete(validation.Listing{
		Title:         in.Title,
		Author:        in.Author,
		City:          in.City,
		OwnerUsername: in.OwnerUsername,
	}) {
		return nil, ErrMissingBookFields
	}

	owner, err := s.owners.GetByEmail(ctx, in.OwnerUsername)
	if err != nil {
		log.Errorw("failed to get owner", "ownerUsername", in.OwnerUsername, "error", err)
		return nil, err
	}
	if owner == nil || owner.Role != models.RoleOwner {
		log.Warnw("listing rejected for non-owner", "ownerUsername", in.OwnerUsername)
		return nil, ErrNotOwner
	}

	rating, err := parseRating(in.Rating)
	if err != nil {
		return nil, err
	}

	imagePath := ""
	if image != nil {
		name := imageName(image.Filename)
		if err := s.images.Save(ctx, name, image.Content, image.Size, image.ContentType); err != nil {
			log.Errorw("failed to store image", "name", name, "error", err)
			return nil, err
		}
		imagePath = UploadsPrefix + name
	}

	location := in.Location
	if location == "" {
		location = in.City
	}

	now := time.Now().UTC()
	book := models.Book{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Author:        in.Author,
		Genre:         in.Category,
		City:          in.City,
		Location:      location,
		Rating:        rating,
		Image:         imagePath,
		OwnerID:       owner.ID,
		OwnerUsername: in.OwnerUsername,
		Status:        models.BookStatusAvailable,
		Email:         in.OwnerUsername,
		Phone:         owner.Mobile,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.writer.Save(ctx, book); err != nil {
		log.Errorw("failed to save book", "error", err)
		return nil, err
	}

	s.changed(ctx, book, models.BookListed)

	return &book, nil
}

// List returns listings matching the filter, served from the cache when possible.
func (s *BookService) List(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		books, err := s.cache.GetList(ctx, filter)
		if err == nil {
			return books, nil
		}
		log.Debugw("book list cache miss", "error", err)
	}

	books, err := s.reader.List(ctx, filter)
	if err != nil {
		log.Errorw("failed to list books", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, filter, books); err != nil {
			log.Warnw("failed to cache book list", "error", err)
		}
	}
	return books, nil
}

// Get returns the listing with the given id.
func (s *BookService) Get(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get book", "id", id, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// Update merges the non-empty fields of upd into the listing. Status is not restricted.
func (s *BookService) Update(ctx context.Context, id string, upd models.BookUpdate) (*models.Book, error) {
	log := logger.FromContext(ctx)

	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Rating != nil && !validation.Rating(*upd.Rating) {
		return nil, ErrInvalidRating
	}

	if upd.Status != "" {
		book.Status = upd.Status
	}
	if upd.Title != "" {
		book.Title = upd.Title
	}
	if upd.Author != "" {
		book.Author = upd.Author
	}
	if upd.Genre != "" {
		book.Genre = upd.Genre
	}
	if upd.City != "" {
		book.City = upd.City
	}
	if upd.Location != "" {
		book.Location = upd.Location
	}
	if upd.Email != "" {
		book.Email = upd.Email
	}
	if upd.Phone != "" {
		book.Phone = upd.Phone
	}
	if upd.Rating != nil {
		book.Rating = *upd.Rating
	}
	book.UpdatedAt = time.Now().UTC()

	if err := s.writer.Update(ctx, *book); err != nil {
		if errors.Is(err, repositories.ErrNoRecord) {
			return nil, ErrBookNotFound
		}
		log.Errorw("failed to update book", "id", id, "error", err)
		return nil, err
	}

	s.changed(ctx, *book, models.BookUpdated)

	return book, nil
}

// Delete removes the listing with the given id.
func (s *BookService) Delete(ctx context.Context, id string) error {
	book, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNoRecord) {
			return ErrBookNotFound
		}
		logger.FromContext(ctx).Errorw("failed to delete book", "id", id, "error", err)
		return err
	}

	s.changed(ctx, *book, models.BookDeleted)

	return nil
}

// changed drops cached listings and announces the change once the write is durable.
func (s *BookService) changed(ctx context.Context, book models.Book, operation string) {
	s.afterCommit(ctx, func(ctx context.Context) {
		s.invalidateCache(ctx)
		s.publishEvent(ctx, book, operation)
	})
}

func (s *BookService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warnw("failed to invalidate book cache", "error", err)
	}
}

// publishEvent publishes a listing change to Kafka.
func (s *BookService) publishEvent(ctx context.Context, book models.Book, operation string) {
	log := logger.FromContext(ctx)

	if s.kafkaWriter == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "book_id", book.ID)
		return
	}

	event := models.BookEvent{
		EventID:       uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		BookID:        book.ID,
		OwnerUsername: book.OwnerUsername,
		Operation:     operation,
		Status:        book.Status,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal book event", "book_id", book.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(book.ID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish book event to Kafka", "book_id", book.ID, "operation", operation, "error", err)
	} else {
		log.Infow("Book event published to Kafka", "book_id", book.ID, "operation", operation)
	}
}

func parseRating(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil || !validation.Rating(rating) {
		return 0, ErrInvalidRating
	}
	return rating, nil
}

func imageName(filename string) string {
	base := strings.TrimSpace(filepath.Base(strings.ReplaceAll(filename, "\\", "/")))
	if base == "" || base == "." || base == "/" || base == ".." {
		return uuid.NewString()
	}
	return fmt.Sprintf("%s-%s", uuid.NewString(), base)
}
