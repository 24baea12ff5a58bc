package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	commententity "blog_backend/internal/feature/comments/domain/entity"
	"blog_backend/internal/feature/posts/domain/entity"
)

// mockPostRepository is a mock implementation of the PostRepository interface.
type mockPostRepository struct {
	CreateFunc   func(ctx context.Context, post *entity.Post) error
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Post, error)
	FindAllFunc  func(ctx context.Context) ([]entity.Post, error)
	UpdateFunc   func(ctx context.Context, post *entity.Post) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrPostNotFound
}

func (m *mockPostRepository) FindAll(ctx context.Context) ([]entity.Post, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPostRepository) Update(ctx context.Context, post *entity.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// stubAuthors returns the users it holds and records requested ids.
type stubAuthors struct {
	users     map[uint]authentity.User
	err       error
	requested [][]uint
}

func (s *stubAuthors) FindByIDs(_ context.Context, ids []uint) (map[uint]authentity.User, error) {
	s.requested = append(s.requested, ids)
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[uint]authentity.User)
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type stubComments struct {
	byPost map[uint][]commententity.Comment
	err    error
}

func (s *stubComments) FindByPost(_ context.Context, postID uint) ([]commententity.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byPost[postID], nil
}

func newAuthors() *stubAuthors {
	return &stubAuthors{users: map[uint]authentity.User{
		1: {ID: 1, Name: "Admin"},
		2: {ID: 2, Name: "Reader"},
	}}
}

func TestPostUsecase_ListPosts(t *testing.T) {
	t.Parallel()

	t.Run("attaches author names in order", func(t *testing.T) {
		t.Parallel()

		repo := &mockPostRepository{FindAllFunc: func(context.Context) ([]entity.Post, error) {
			return []entity.Post{
				{ID: 1, Title: "First", AuthorID: 1},
				{ID: 2, Title: "Second", AuthorID: 1},
				{ID: 3, Title: "Third", AuthorID: 2},
			}, nil
		}}
		authors := newAuthors()

		got, err := NewPostUsecase(repo, authors, &stubComments{}).ListPosts(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "First", got[0].Post.Title)
		assert.Equal(t, "Admin", got[0].AuthorName)
		assert.Equal(t, "Reader", got[2].AuthorName)
		require.Len(t, authors.requested, 1)
		assert.Equal(t, []uint{1, 2}, authors.requested[0], "author ids are deduplicated")
	})

	t.Run("empty store makes no author lookup", func(t *testing.T) {
		t.Parallel()

		authors := newAuthors()
		got, err := NewPostUsecase(&mockPostRepository{}, authors, &stubComments{}).ListPosts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Empty(t, authors.requested)
	})

	t.Run("repository error", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("db down")
		repo := &mockPostRepository{FindAllFunc: func(context.Context) ([]entity.Post, error) {
			return nil, dbErr
		}}
		_, err := NewPostUsecase(repo, newAuthors(), &stubComments{}).ListPosts(context.Background())
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("author lookup error", func(t *testing.T) {
		t.Parallel()

		repo := &mockPostRepository{FindAllFunc: func(context.Context) ([]entity.Post, error) {
			return []entity.Post{{ID: 1, AuthorID: 1}}, nil
		}}
		authors := &stubAuthors{err: errors.New("db down")}
		_, err := NewPostUsecase(repo, authors, &stubComments{}).ListPosts(context.Background())
		assert.Error(t, err)
	})
}

func TestPostUsecase_GetPostDetail(t *testing.T) {
	t.Parallel()

	post := &entity.Post{ID: 5, Title: "Hello", AuthorID: 1}
	repo := &mockPostRepository{FindByIDFunc: func(_ context.Context, id uint) (*entity.Post, error) {
		if id == 5 {
			p := *post
			return &p, nil
		}
		return nil, ErrPostNotFound
	}}

	t.Run("post with comments", func(t *testing.T) {
		t.Parallel()

		comments := &stubComments{byPost: map[uint][]commententity.Comment{
			5: {
				{ID: 1, Text: "nice", AuthorID: 2, PostID: 5},
				{ID: 2, Text: "thanks", AuthorID: 1, PostID: 5},
			},
		}}

		detail, err := NewPostUsecase(repo, newAuthors(), comments).GetPostDetail(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "Hello", detail.Post.Title)
		assert.Equal(t, "Admin", detail.AuthorName)
		require.Len(t, detail.Comments, 2)
		assert.Equal(t, "nice", detail.Comments[0].Comment.Text)
		assert.Equal(t, "Reader", detail.Comments[0].AuthorName)
		assert.Equal(t, "Admin", detail.Comments[1].AuthorName)
	})

	t.Run("post without comments", func(t *testing.T) {
		t.Parallel()

		detail, err := NewPostUsecase(repo, newAuthors(), &stubComments{}).GetPostDetail(context.Background(), 5)
		require.NoError(t, err)
		assert.Empty(t, detail.Comments)
	})

	t.Run("missing post", func(t *testing.T) {
		t.Parallel()

		_, err := NewPostUsecase(repo, newAuthors(), &stubComments{}).GetPostDetail(context.Background(), 99)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("comment lookup error", func(t *testing.T) {
		t.Parallel()

		comments := &stubComments{err: errors.New("db down")}
		_, err := NewPostUsecase(repo, newAuthors(), comments).GetPostDetail(context.Background(), 5)
		assert.Error(t, err)
	})
}

func TestPostUsecase_CreatePost(t *testing.T) {
	t.Parallel()

	t.Run("dated today and owned by the author", func(t *testing.T) {
		t.Parallel()

		var saved *entity.Post
		repo := &mockPostRepository{CreateFunc: func(_ context.Context, p *entity.Post) error {
			p.ID = 10
			saved = p
			return nil
		}}
		uc := NewPostUsecase(repo, newAuthors(), &stubComments{})
		uc.now = func() time.Time { return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC) }

		post, err := uc.CreatePost(context.Background(), 1, PostInput{
			Title: "T", Subtitle: "S", Body: "<p>B</p>", ImgURL: "https://example.com/a.png",
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, uint(10), post.ID)
		assert.Equal(t, "March 05, 2024", post.Date)
		assert.Equal(t, uint(1), post.AuthorID)
		assert.Equal(t, "<p>B</p>", post.Body)
	})

	t.Run("duplicate title", func(t *testing.T) {
		t.Parallel()

		repo := &mockPostRepository{CreateFunc: func(context.Context, *entity.Post) error {
			return ErrDuplicateTitle
		}}
		_, err := NewPostUsecase(repo, newAuthors(), &stubComments{}).CreatePost(context.Background(), 1, PostInput{Title: "T"})
		assert.ErrorIs(t, err, ErrDuplicateTitle)
	})
}

func TestPostUsecase_UpdatePost(t *testing.T) {
	t.Parallel()

	t.Run("overwrites fields and reassigns author", func(t *testing.T) {
		t.Parallel()

		var updated *entity.Post
		repo := &mockPostRepository{
			FindByIDFunc: func(context.Context, uint) (*entity.Post, error) {
				return &entity.Post{ID: 3, Title: "Old", Date: "January 01, 2020", AuthorID: 2}, nil
			},
			UpdateFunc: func(_ context.Context, p *entity.Post) error {
				updated = p
				return nil
			},
		}

		post, err := NewPostUsecase(repo, newAuthors(), &stubComments{}).UpdatePost(context.Background(), 3, 1, PostInput{
			Title: "New", Subtitle: "Sub", Body: "Body", ImgURL: "https://example.com/b.png",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "New", post.Title)
		assert.Equal(t, uint(1), post.AuthorID)
		assert.Equal(t, "January 01, 2020", post.Date, "date is kept")
	})

	t.Run("missing post", func(t *testing.T) {
		t.Parallel()

		called := false
		repo := &mockPostRepository{UpdateFunc: func(context.Context, *entity.Post) error {
			called = true
			return nil
		}}
		_, err := NewPostUsecase(repo, newAuthors(), &stubComments{}).UpdatePost(context.Background(), 3, 1, PostInput{})
		assert.ErrorIs(t, err, ErrPostNotFound)
		assert.False(t, called)
	})
}

func TestPostUsecase_DeletePost(t *testing.T) {
	t.Parallel()

	var deleted uint
	repo := &mockPostRepository{DeleteFunc: func(_ context.Context, id uint) error {
		deleted = id
		if id == 99 {
			return ErrPostNotFound
		}
		return nil
	}}
	uc := NewPostUsecase(repo, newAuthors(), &stubComments{})

	require.NoError(t, uc.DeletePost(context.Background(), 4))
	assert.Equal(t, uint(4), deleted)
	assert.ErrorIs(t, uc.DeletePost(context.Background(), 99), ErrPostNotFound)
}
