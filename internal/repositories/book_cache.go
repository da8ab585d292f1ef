package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-book-exchange/internal/logger"
	"github.com/sbilibin2017/gw-book-exchange/internal/models"
)

const bookListKey = "books:list"

// ErrCacheMiss is returned when no cached listing exists for a filter.
var ErrCacheMiss = errors.New("book list not cached")

// BookCacheRepository caches listing query results in a single Redis hash,
// one field per filter. Any write drops the whole hash.
type BookCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of the cached hash
}

// NewBookCacheRepository creates a new cache repository with the given TTL.
func NewBookCacheRepository(client *redis.Client, expiration time.Duration) *BookCacheRepository {
	return &BookCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetList returns the cached listings for the filter, or ErrCacheMiss.
func (r *BookCacheRepository) GetList(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	field := filterField(filter)

	val, err := r.client.HGet(ctx, bookListKey, field).Result()
	logger.FromContext(ctx).Infow("book list cache read",
		"key", bookListKey,
		"field", field,
		"hit", err == nil,
		"error", ignoreNil(err),
	)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var books []models.Book
	if err := json.Unmarshal([]byte(val), &books); err != nil {
		return nil, err
	}
	return books, nil
}

// SetList caches the listings returned for the filter.
func (r *BookCacheRepository) SetList(ctx context.Context, filter models.BookFilter, books []models.Book) error {
	field := filterField(filter)

	data, err := json.Marshal(books)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, bookListKey, field, data)
	pipe.Expire(ctx, bookListKey, r.exp)
	_, err = pipe.Exec(ctx)

	logger.FromContext(ctx).Infow("book list cache write",
		"key", bookListKey,
		"field", field,
		"count", len(books),
		"error", err,
	)
	return err
}

// Invalidate drops every cached listing.
func (r *BookCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, bookListKey).Err()
	logger.FromContext(ctx).Infow("book list cache invalidated",
		"key", bookListKey,
		"error", err,
	)
	return err
}

func filterField(f models.BookFilter) string {
	return fmt.Sprintf("%q|%q|%q|%q",
		strings.ToLower(f.Title),
		strings.ToLower(f.City),
		strings.ToLower(f.Genre),
		f.OwnerUsername,
	)
}

func ignoreNil(err error) error {
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
