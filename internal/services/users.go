package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-user-identity/internal/logger"
	"github.com/sbilibin2017/gw-user-identity/internal/metrics"
	"github.com/sbilibin2017/gw-user-identity/internal/models"
	"github.com/sbilibin2017/gw-user-identity/internal/repositories"
	"github.com/sbilibin2017/gw-user-identity/internal/validation"
)

// Error variables
var (
	ErrUserAlreadyExists = fmt.Errorf("%w: username or email already exists", repositories.ErrConflict)
	ErrUserNotFound      = fmt.Errorf("user %w", repositories.ErrNotFound)
	ErrUnknownUserType   = errors.New("unknown user type")
	ErrNoDefaultUserType = errors.New("no default user type configured")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// UserTypeReader resolves user types.
type UserTypeReader interface {
	GetByCode(ctx context.Context, code string) (*models.UserType, error)
	GetDefault(ctx context.Context) (*models.UserType, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// UserService owns user registration, lookup and updates.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	types       UserTypeReader
	hasher      PasswordHasher
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. kafkaWriter may be nil.
func NewUserService(
	reader UserReader,
	writer UserWriter,
	types UserTypeReader,
	hasher PasswordHasher,
	kafkaWriter KafkaWriter,
) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		types:       types,
		hasher:      hasher,
		kafkaWriter: kafkaWriter,
	}
}

// RegisterUser validates the credentials, rejects a username or email that is
// already taken and persists a new user of the default type.
func (s *UserService) RegisterUser(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := validation.ValidatePassword(req.Password); err != nil {
		metrics.RecordRegistration(metrics.StatusInvalid)
		return nil, err
	}

	if err := s.ensureAvailable(ctx, req.Username, req.Email); err != nil {
		recordRegistrationFailure(err)
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "username", req.Username, "error", err)
		metrics.RecordRegistration(metrics.StatusError)
		return nil, err
	}

	user := &models.User{
		Fullname:     req.Fullname,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: &hash,
	}
	if err := s.CreateUser(ctx, user); err != nil {
		recordRegistrationFailure(err)
		return nil, err
	}

	metrics.RecordRegistration(metrics.StatusSuccess)
	publishEvent(ctx, s.kafkaWriter, models.EventUserRegistered, user.ID, "")

	return user, nil
}

func recordRegistrationFailure(err error) {
	switch {
	case errors.Is(err, validation.ErrValidation):
		metrics.RecordRegistration(metrics.StatusInvalid)
	case errors.Is(err, repositories.ErrConflict):
		metrics.RecordRegistration(metrics.StatusConflict)
	default:
		metrics.RecordRegistration(metrics.StatusError)
	}
}

// ensureAvailable fails with ErrUserAlreadyExists when any user holds the
// username or the email.
func (s *UserService) ensureAvailable(ctx context.Context, username, email string) error {
	existing, err := s.reader.ListByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", username, "error", err)
		return err
	}
	if len(existing) > 0 {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}
	return nil
}

// CreateUser persists a new user. New users start active with no failed
// logins and get the default user type unless one is set.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	user.FailedLogins = 0
	user.Active = true

	if err := s.resolveUserType(ctx, user); err != nil {
		return err
	}

	if err := validation.ValidateUserFields(user.Username, user.Email); err != nil {
		return err
	}

	if err := s.ensureAvailable(ctx, user.Username, user.Email); err != nil {
		return err
	}

	if err := s.writer.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			logger.Log.Errorw("user already exists", "username", user.Username, "email", user.Email)
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "username", user.Username, "error", err)
		return err
	}

	return nil
}

func (s *UserService) resolveUserType(ctx context.Context, user *models.User) error {
	if user.TypeCode != "" {
		userType, err := s.types.GetByCode(ctx, user.TypeCode)
		if err != nil {
			logger.Log.Errorw("failed to get user type", "code", user.TypeCode, "error", err)
			return err
		}
		if userType == nil {
			return fmt.Errorf("%w: %s", ErrUnknownUserType, user.TypeCode)
		}
		return nil
	}

	userType, err := s.types.GetDefault(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get default user type", "error", err)
		return err
	}
	if userType == nil {
		return ErrNoDefaultUserType
	}
	user.TypeCode = userType.Code
	return nil
}

// UpdateUser validates the username and email and persists the user.
func (s *UserService) UpdateUser(ctx context.Context, user *models.User) error {
	if err := validation.ValidateUserFields(user.Username, user.Email); err != nil {
		return err
	}

	if err := s.writer.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrConflict):
			return ErrUserAlreadyExists
		case errors.Is(err, repositories.ErrNotFound):
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to update user", "user_id", user.ID, "error", err)
		return err
	}
	return nil
}

// ChangePassword validates and hashes the new password and stores it.
// The failed login counter is left untouched.
func (s *UserService) ChangePassword(ctx context.Context, user *models.User, newPassword string) error {
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "user_id", user.ID, "error", err)
		return err
	}

	previous := user.PasswordHash
	user.PasswordHash = &hash
	if err := s.UpdateUser(ctx, user); err != nil {
		user.PasswordHash = previous
		return err
	}

	publishEvent(ctx, s.kafkaWriter, models.EventUserPasswordChanged, user.ID, "")
	return nil
}

// PasswordVerify reports whether plain matches the user's stored password.
// A user without a password never matches.
func (s *UserService) PasswordVerify(user *models.User, plain string) bool {
	if user == nil || !user.HasPassword() {
		return false
	}
	return s.hasher.Verify(plain, *user.PasswordHash)
}

// FindByID returns the user with the given id, or nil when absent.
func (s *UserService) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return s.reader.GetByID(ctx, id)
}

// FindByUsername returns the user with exactly this username, or nil when absent.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.reader.GetByUsername(ctx, username)
}

// FindByEmail returns the user with exactly this email, or nil when absent.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.reader.GetByEmail(ctx, email)
}

// FindByUsernameOrEmail returns every user matching the username or the email.
func (s *UserService) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error) {
	return s.reader.ListByUsernameOrEmail(ctx, username, email)
}
