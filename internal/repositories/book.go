package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-exchange/internal/models"
)

const bookColumns = `id, title, author, genre, city, location, rating, image, owner_id,
	owner_username, status, email, phone, created_at, updated_at`

// BookReadRepository reads listings from PostgreSQL.
type BookReadRepository struct {
	db *sqlx.DB
}

func NewBookReadRepository(db *sqlx.DB) *BookReadRepository {
	return &BookReadRepository{db: db}
}

// GetByID returns the listing with the given id or nil if there is none.
func (r *BookReadRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var book models.Book
	err := r.db.GetContext(ctx, &book, query, id)
	logQuery(ctx, query, []any{id}, book.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns listings matching the filter in insertion order.
func (r *BookReadRepository) List(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE ($1::TEXT = '' OR strpos(lower(title), lower($1)) > 0)
		  AND ($2::TEXT = '' OR strpos(lower(city), lower($2)) > 0)
		  AND ($3::TEXT = '' OR strpos(lower(genre), lower($3)) > 0)
		  AND ($4::TEXT = '' OR owner_username = $4)
		ORDER BY created_at, id
	`
	args := []any{filter.Title, filter.City, filter.Genre, filter.OwnerUsername}

	books := []models.Book{}
	err := r.db.SelectContext(ctx, &books, query, args...)
	logQuery(ctx, query, args, len(books), err)

	return books, err
}

// BookWriteRepository writes listings to PostgreSQL, inside the request transaction when present.
type BookWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookWriteRepository(db *sqlx.DB, txGetter TxGetter) *BookWriteRepository {
	return &BookWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new listing.
func (r *BookWriteRepository) Save(ctx context.Context, book models.Book) error {
	query := `
		INSERT INTO books (` + bookColumns + `)
		VALUES (:id, :title, :author, :genre, :city, :location, :rating, :image, :owner_id,
			:owner_username, :status, :email, :phone, :created_at, :updated_at)
	`

	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, book)
	logQuery(ctx, query, []any{book.ID, book.OwnerUsername}, book.ID, err)

	return err
}

// Update overwrites the mutable fields of the listing with the same id.
func (r *BookWriteRepository) Update(ctx context.Context, book models.Book) error {
	query := `
		UPDATE books
		SET title = :title, author = :author, genre = :genre, city = :city, location = :location,
		    rating = :rating, status = :status, email = :email, phone = :phone, updated_at = :updated_at
		WHERE id = :id
	`

	res, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, book)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{book.ID}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNoRecord
	}
	return nil
}

// Delete removes the listing with the given id.
func (r *BookWriteRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM books WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNoRecord
	}
	return nil
}
