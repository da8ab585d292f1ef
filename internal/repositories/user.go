package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-exchange/internal/models"
)

const userColumns = `id, name, mobile, email, password, role, first_name, last_name, username,
	gender, interests, looking_for, profile, created_at, updated_at`

// UserReadRepository reads users from PostgreSQL.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email or nil if there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	logQuery(ctx, query, []any{email}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns users matching the filter in registration order.
// Email takes precedence over username.
func (r *UserReadRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var args []any

	switch {
	case filter.Email != "":
		query += ` WHERE email = $1`
		args = append(args, filter.Email)
	case filter.Username != "":
		query += ` WHERE username = $1`
		args = append(args, filter.Username)
	}
	query += ` ORDER BY created_at, id`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query, args...)
	logQuery(ctx, query, args, len(users), err)

	return users, err
}

// ExistsByName reports whether any user has exactly the given name.
func (r *UserReadRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE name = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, name)
	logQuery(ctx, query, []any{name}, exists, err)

	return exists, err
}

// UserWriteRepository writes users to PostgreSQL, inside the request transaction when present.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user.
func (r *UserWriteRepository) Save(ctx context.Context, user models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (:id, :name, :mobile, :email, :password, :role, :first_name, :last_name, :username,
			:gender, :interests, :looking_for, :profile, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
	`

	res, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, user)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{user.ID, user.Email}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrDuplicateEmail
	}
	return nil
}

// Update overwrites the profile fields of the user with the same email.
func (r *UserWriteRepository) Update(ctx context.Context, user models.User) error {
	query := `
		UPDATE users
		SET name = :name, mobile = :mobile, first_name = :first_name, last_name = :last_name,
		    username = :username, gender = :gender, interests = :interests,
		    looking_for = :looking_for, profile = :profile, updated_at = NOW()
		WHERE email = :email
	`

	res, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, user)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{user.Email}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNoRecord
	}
	return nil
}
