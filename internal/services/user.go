package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-book-exchange/internal/logger"
	"github.com/sbilibin2017/gw-book-exchange/internal/models"
	"github.com/sbilibin2017/gw-book-exchange/internal/repositories"
	"github.com/sbilibin2017/gw-book-exchange/internal/validation"
)

// Error variables
var (
	ErrInvalidRegistration = errors.New("invalid input: all fields and valid role required")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidMobile       = errors.New("invalid mobile number (10 digits required)")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrMissingCredentials  = errors.New("email and password are required")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidName         = errors.New("invalid name")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.User) error
	Update(ctx context.Context, user models.User) error
}

// UserService handles registration, login and profile maintenance.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Register validates and stores a new user. The returned user carries the assigned ID.
func (svc *UserService) Register(ctx context.Context, user models.User) (*models.User, error) {
	log := logger.FromContext(ctx)

	if !validation.RegistrationComplete(validation.Registration{
		Name:     user.Name,
		Mobile:   user.Mobile,
		Email:    user.Email,
		Password: user.Password,
		Role:     user.Role,
	}) {
		log.Warnw("incomplete registration", "email", user.Email, "role", user.Role)
		return nil, ErrInvalidRegistration
	}
	if !validation.Email(user.Email) {
		log.Warnw("invalid registration email", "email", user.Email)
		return nil, ErrInvalidEmail
	}
	if !validation.Mobile(user.Mobile) {
		log.Warnw("invalid registration mobile", "email", user.Email)
		return nil, ErrInvalidMobile
	}

	existing, err := svc.reader.GetByEmail(ctx, user.Email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		log.Warnw("user already exists", "email", user.Email)
		return nil, ErrEmailAlreadyExists
	}

	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			log.Warnw("user already exists", "email", user.Email)
			return nil, ErrEmailAlreadyExists
		}
		log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	log.Infow("user registered", "email", user.Email, "role", user.Role)
	return &user, nil
}

// Login returns the user whose email and password match exactly.
func (svc *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil || user.Password != password {
		log.Warnw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	log.Infow("user logged in", "email", email)
	return user, nil
}

// GetUser returns the user with the given email or ErrUserNotFound.
func (svc *UserService) GetUser(ctx context.Context, email string) (*models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns users selected by exact email or, failing that, exact username.
func (svc *UserService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	users, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// UpdateUser merges the non-empty fields of upd into the user identified by upd.Email.
// A mobile number that is not exactly ten digits is ignored.
func (svc *UserService) UpdateUser(ctx context.Context, upd models.UserUpdate) (*models.User, error) {
	log := logger.FromContext(ctx)

	user, err := svc.GetUser(ctx, upd.Email)
	if err != nil {
		return nil, err
	}

	if upd.Name != "" {
		user.Name = upd.Name
	}
	if upd.Mobile != "" {
		if validation.Mobile(upd.Mobile) {
			user.Mobile = upd.Mobile
		} else {
			log.Warnw("ignoring invalid mobile on update", "email", upd.Email)
		}
	}
	if upd.FirstName != "" {
		user.FirstName = upd.FirstName
	}
	if upd.LastName != "" {
		user.LastName = upd.LastName
	}
	if upd.Username != "" {
		user.Username = upd.Username
	}
	if upd.Gender != "" {
		user.Gender = upd.Gender
	}
	if upd.Profile != "" {
		user.Profile = upd.Profile
	}
	if upd.Interests != nil {
		user.Interests = upd.Interests
	}
	if upd.LookingFor != nil {
		user.LookingFor = upd.LookingFor
	}
	user.UpdatedAt = time.Now().UTC()

	if err := svc.writer.Update(ctx, *user); err != nil {
		if errors.Is(err, repositories.ErrNoRecord) {
			return nil, ErrUserNotFound
		}
		log.Errorw("failed to update user", "email", upd.Email, "err", err)
		return nil, err
	}

	log.Infow("user updated", "email", upd.Email)
	return user, nil
}

// EmailExists reports whether a user registered with email.
func (svc *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	if !validation.Email(email) {
		return false, ErrInvalidEmail
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to check email", "err", err)
		return false, err
	}
	return user != nil, nil
}

// NameExists reports whether a user registered with exactly this name.
func (svc *UserService) NameExists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, ErrInvalidName
	}

	exists, err := svc.reader.ExistsByName(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to check name", "err", err)
		return false, err
	}
	return exists, nil
}
