package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"journal-backend/internal/domains/user/model"
	"journal-backend/internal/domains/user/repository"
	"journal-backend/internal/shared/query"
	"journal-backend/pkg/jwt"
)

type userService struct {
	repo       repository.UserRepository
	jwtManager *jwt.Manager
	jwtExpiry  time.Duration
}

func NewUserService(repo repository.UserRepository, jwtManager *jwt.Manager, jwtExpiry time.Duration) UserService {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		jwtExpiry:  jwtExpiry,
	}
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsPrivate:    req.Private,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Str("username", user.Username).
		Msg("user registered")

	resp := user.ToResponse(true)
	return &resp, nil
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Same answer as a bad password, so usernames cannot be probed.
			return nil, model.NewInvalidCredentialsError()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	token, err := s.jwtManager.IssueToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &model.LoginResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.jwtExpiry),
		User:        user.ToResponse(true),
	}, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, req model.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return model.NewInvalidCredentialsError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, userID, string(hash))
}

func (s *userService) GetByID(ctx context.Context, viewer *uuid.UUID, id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.profileFor(viewer, user)
}

func (s *userService) GetByUsername(ctx context.Context, viewer *uuid.UUID, username string) (*model.UserResponse, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.profileFor(viewer, user)
}

func (s *userService) profileFor(viewer *uuid.UUID, user *model.User) (*model.UserResponse, error) {
	isOwner := viewer != nil && *viewer == user.ID
	if user.IsPrivate && !isOwner {
		return nil, model.ErrPrivateProfile
	}

	resp := user.ToResponse(isOwner)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, viewer *uuid.UUID, req model.ListUsersRequest) (query.Page[model.UserResponse], error) {
	p := query.NewPagination(req.Page, req.PageSize)

	users, total, err := s.repo.List(ctx, viewer, req.Search, p)
	if err != nil {
		return query.Page[model.UserResponse]{}, err
	}

	responses := make([]model.UserResponse, 0, len(users))
	for _, user := range users {
		isOwner := viewer != nil && *viewer == user.ID
		responses = append(responses, user.ToResponse(isOwner))
	}

	return query.NewPage(responses, p, total), nil
}

func (s *userService) UpdatePrivacy(ctx context.Context, userID uuid.UUID, req model.UpdatePrivacyRequest) (*model.UserResponse, error) {
	if err := s.repo.UpdatePrivacy(ctx, userID, req.Private); err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", userID.String()).
		Bool("private", req.Private).
		Msg("account privacy updated")

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := user.ToResponse(true)
	return &resp, nil
}

func (s *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}

	log.Info().Str("user_id", userID.String()).Msg("account deleted")
	return nil
}
