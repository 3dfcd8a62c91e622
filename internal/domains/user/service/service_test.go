package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"journal-backend/internal/domains/user/model"
	"journal-backend/internal/shared/query"
	"journal-backend/pkg/jwt"
)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (s *stubUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, user.Username) {
			return model.ErrUsernameTaken
		}
		if strings.EqualFold(u.Email, user.Email) {
			return model.ErrEmailTaken
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, model.ErrUserNotFound
}

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (s *stubUserRepo) List(_ context.Context, viewer *uuid.UUID, _ string, _ query.Pagination) ([]*model.User, int64, error) {
	var visible []*model.User
	for _, u := range s.users {
		if !u.IsPrivate || (viewer != nil && *viewer == u.ID) {
			visible = append(visible, u)
		}
	}
	return visible, int64(len(visible)), nil
}

func (s *stubUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (s *stubUserRepo) UpdatePrivacy(_ context.Context, id uuid.UUID, private bool) error {
	u, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	u.IsPrivate = private
	return nil
}

func (s *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return model.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func newTestService(repo *stubUserRepo) UserService {
	return NewUserService(repo, jwt.NewManager("test-secret", time.Hour), time.Hour)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password", func(t *testing.T) {
		repo := newStubUserRepo()
		svc := newTestService(repo)

		resp, err := svc.Register(ctx, model.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)

		stored := repo.users[resp.ID]
		require.NotNil(t, stored)
		assert.NotEqual(t, "correct-horse", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		repo := newStubUserRepo()
		svc := newTestService(repo)

		_, err := svc.Register(ctx, model.RegisterRequest{Username: "alice", Email: "a@example.com", Password: "password1"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, model.RegisterRequest{Username: "alice", Email: "b@example.com", Password: "password1"})
		assert.ErrorIs(t, err, model.ErrUsernameTaken)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		svc := newTestService(newStubUserRepo())

		_, err := svc.Register(ctx, model.RegisterRequest{Username: "x", Email: "nope", Password: "short"})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newStubUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(ctx, model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, model.LoginRequest{Username: "alice", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "alice", resp.User.Username)
	})

	t.Run("username is case-insensitive", func(t *testing.T) {
		_, err := svc.Login(ctx, model.LoginRequest{Username: "ALICE", Password: "correct-horse"})
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, model.LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("unknown username gets the same answer as a wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, model.LoginRequest{Username: "nobody", Password: "whatever"})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}

func TestGetProfileVisibility(t *testing.T) {
	ctx := context.Background()
	repo := newStubUserRepo()
	svc := newTestService(repo)

	owner := &model.User{ID: uuid.New(), Username: "bob", Email: "bob@example.com", IsPrivate: true}
	repo.users[owner.ID] = owner
	stranger := uuid.New()

	t.Run("owner sees own private profile with email", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, &owner.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", resp.Email)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		_, err := svc.GetByID(ctx, &stranger, owner.ID)
		assert.ErrorIs(t, err, model.ErrPrivateProfile)
	})

	t.Run("anonymous is forbidden", func(t *testing.T) {
		_, err := svc.GetByUsername(ctx, nil, "bob")
		assert.ErrorIs(t, err, model.ErrPrivateProfile)
	})

	t.Run("public profile hides email from others", func(t *testing.T) {
		pub := &model.User{ID: uuid.New(), Username: "carol", Email: "carol@example.com"}
		repo.users[pub.ID] = pub

		resp, err := svc.GetByID(ctx, &stranger, pub.ID)
		require.NoError(t, err)
		assert.Empty(t, resp.Email)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	repo := newStubUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(ctx, model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "old-password",
	})
	require.NoError(t, err)

	t.Run("rejects wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, resp.ID, model.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "new-password",
		})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("replaces the hash", func(t *testing.T) {
		err := svc.ChangePassword(ctx, resp.ID, model.ChangePasswordRequest{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
		})
		require.NoError(t, err)

		_, err = svc.Login(ctx, model.LoginRequest{Username: "alice", Password: "new-password"})
		assert.NoError(t, err)
	})
}
