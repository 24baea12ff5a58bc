package usecase

import (
	"context"
	"errors"
	"fmt"

	"blog_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// PasswordHasher creates and checks stored credentials.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(credential, plaintext string) bool
}

// dummyCredential is verified when the email is unknown so that both failure paths do the same work.
const dummyCredential = "pbkdf2:sha256:600000$Qn3dVw1sOe8yT2hX$" +
	"5b0e2f0d1c7c4b3e8a9f6d2e1b0c9a8f7e6d5c4b3a2918070605040302010000"

// authUsecase implements the registration and login business logic.
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
	}
}

// Register creates a user with a hashed password.
// A taken email yields ErrEmailAlreadyExists and leaves the store untouched.
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: hashed}
	// Create still reports ErrEmailAlreadyExists when a concurrent registration won the race.
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the email and password and returns the matching user.
// Unknown email and wrong password both return ErrInvalidCredentials, wrapping the cause.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	credential := dummyCredential
	if user != nil {
		credential = user.Password
	}
	ok := u.hasher.Verify(credential, password)

	switch {
	case user == nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrUserNotFound)
	case !ok:
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrWrongPassword)
	}
	return user, nil
}

// FindUser returns the user with the given ID.
func (u *authUsecase) FindUser(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}
