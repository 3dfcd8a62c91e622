package service

import (
	"context"

	"github.com/google/uuid"

	"journal-backend/internal/domains/user/model"
	"journal-backend/internal/shared/query"
)

type UserService interface {
	// Authentication
	Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req model.ChangePasswordRequest) error

	// Profiles
	GetByID(ctx context.Context, viewer *uuid.UUID, id uuid.UUID) (*model.UserResponse, error)
	GetByUsername(ctx context.Context, viewer *uuid.UUID, username string) (*model.UserResponse, error)
	List(ctx context.Context, viewer *uuid.UUID, req model.ListUsersRequest) (query.Page[model.UserResponse], error)

	// Account
	UpdatePrivacy(ctx context.Context, userID uuid.UUID, req model.UpdatePrivacyRequest) (*model.UserResponse, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
