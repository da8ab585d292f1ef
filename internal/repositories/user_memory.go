package repositories

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-book-exchange/internal/models"
)

// UserMemoryRepository keeps users in process memory for the lifetime of the server.
// It implements both the read and write sides used by the services.
type UserMemoryRepository struct {
	mu    sync.RWMutex
	users []models.User
}

// NewUserMemoryRepository creates an empty in-memory user repository.
func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{}
}

// GetByEmail returns the user with the given email or nil if there is none.
func (r *UserMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			found := cloneUser(u)
			return &found, nil
		}
	}
	return nil, nil
}

// List returns users matching the filter in registration order.
// Email takes precedence over username.
func (r *UserMemoryRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		switch {
		case filter.Email != "":
			if u.Email != filter.Email {
				continue
			}
		case filter.Username != "":
			if u.Username != filter.Username {
				continue
			}
		}
		res = append(res, cloneUser(u))
	}
	return res, nil
}

// ExistsByName reports whether any user has exactly the given name.
func (r *UserMemoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// Save appends a new user.
func (r *UserMemoryRepository) Save(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	r.users = append(r.users, cloneUser(user))
	return nil
}

// Update replaces the stored user that has the same email.
func (r *UserMemoryRepository) Update(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == user.Email {
			r.users[i] = cloneUser(user)
			return nil
		}
	}
	return ErrNoRecord
}

func cloneUser(u models.User) models.User {
	if u.Interests != nil {
		u.Interests = append(models.StringList(nil), u.Interests...)
	}
	if u.LookingFor != nil {
		u.LookingFor = append(models.StringList(nil), u.LookingFor...)
	}
	return u
}
