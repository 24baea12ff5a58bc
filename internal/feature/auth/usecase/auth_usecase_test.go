package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound // Default: not found
}

// FindByID is the mock implementation of the FindByID method.
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// fakeHasher marks credentials with a prefix instead of deriving keys.
type fakeHasher struct {
	hashErr  error
	verified []string
}

func (f *fakeHasher) Hash(plaintext string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + plaintext, nil
}

func (f *fakeHasher) Verify(credential, plaintext string) bool {
	f.verified = append(f.verified, credential)
	return credential == "hashed:"+plaintext
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		var created *entity.User
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				user.ID = 1
				created = user
				return nil
			},
		}

		uc := NewAuthUsecase(repo, &fakeHasher{})
		user, err := uc.Register(context.Background(), "Alice", "a@x.com", "password123")

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, "Alice", created.Name)
		assert.Equal(t, "a@x.com", created.Email)
		assert.Equal(t, "hashed:password123", created.Password, "password must be stored hashed")
	})

	t.Run("email already taken never calls create", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: email}, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("Create must not be called for a taken email")
				return nil
			},
		}

		uc := NewAuthUsecase(repo, &fakeHasher{})
		user, err := uc.Register(context.Background(), "Bob", "a@x.com", "password123")

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("concurrent duplicate surfaces from create", func(t *testing.T) {
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}

		uc := NewAuthUsecase(repo, &fakeHasher{})
		_, err := uc.Register(context.Background(), "Bob", "a@x.com", "password123")

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("lookup failure", func(t *testing.T) {
		dbErr := errors.New("database error")
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, dbErr
			},
		}

		uc := NewAuthUsecase(repo, &fakeHasher{})
		_, err := uc.Register(context.Background(), "Bob", "a@x.com", "password123")

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("hash failure", func(t *testing.T) {
		hashErr := errors.New("entropy exhausted")
		uc := NewAuthUsecase(&mockUserRepository{}, &fakeHasher{hashErr: hashErr})

		_, err := uc.Register(context.Background(), "Bob", "a@x.com", "password123")

		assert.ErrorIs(t, err, hashErr)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	testUser := &entity.User{
		ID:       1,
		Email:    "a@x.com",
		Name:     "Alice",
		Password: "hashed:password123",
	}
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if email == testUser.Email {
				return testUser, nil
			}
			return nil, ErrUserNotFound
		},
	}

	t.Run("successful login", func(t *testing.T) {
		uc := NewAuthUsecase(repo, &fakeHasher{})
		user, err := uc.Login(context.Background(), "a@x.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, testUser.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewAuthUsecase(repo, &fakeHasher{})
		user, err := uc.Login(context.Background(), "a@x.com", "wrong-password")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, ErrWrongPassword)
		assert.Nil(t, user)
	})

	t.Run("unknown email still verifies a dummy credential", func(t *testing.T) {
		hasher := &fakeHasher{}
		uc := NewAuthUsecase(repo, hasher)
		user, err := uc.Login(context.Background(), "nobody@x.com", "password123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
		assert.Equal(t, []string{dummyCredential}, hasher.verified)
	})

	t.Run("email match is case-sensitive", func(t *testing.T) {
		uc := NewAuthUsecase(repo, &fakeHasher{})
		_, err := uc.Login(context.Background(), "A@X.COM", "password123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("repository failure is not reported as bad credentials", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		failing := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, dbErr
			},
		}
		uc := NewAuthUsecase(failing, &fakeHasher{})
		_, err := uc.Login(context.Background(), "a@x.com", "password123")

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthUsecase_FindUser(t *testing.T) {
	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			if id == 7 {
				return &entity.User{ID: 7, Name: "Gina"}, nil
			}
			return nil, ErrUserNotFound
		},
	}
	uc := NewAuthUsecase(repo, &fakeHasher{})

	user, err := uc.FindUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Gina", user.Name)

	_, err = uc.FindUser(context.Background(), 8)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
