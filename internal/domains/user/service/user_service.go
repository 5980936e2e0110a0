package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"events-backend/internal/domains/user"
	"events-backend/internal/shared"
	"events-backend/pkg/jwt"
)

type userServiceImpl struct {
	repository user.Repository
	jwtManager *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userServiceImpl{
		repository: repo,
		jwtManager: jwtManager,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResponse, error) {
	existing, err := s.repository.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         shared.RoleCustomer,
		CreatedAt:    time.Now(),
	}

	if err := s.repository.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.issueTokens(u)
}

func (s *userServiceImpl) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	u, err := s.repository.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

func (s *userServiceImpl) GetProfile(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (s *userServiceImpl) issueTokens(u *user.User) (*user.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, err
	}

	return &user.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         u,
	}, nil
}
