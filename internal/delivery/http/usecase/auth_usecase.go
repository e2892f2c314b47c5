package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evandrarf/mock-interview-be/internal/delivery/http/entity"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/mock-interview-be/internal/entity"
	"github.com/evandrarf/mock-interview-be/internal/pkg/auth"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	Register(ctx context.Context, req entity.RegisterRequest) (*entity.UserResponse, error)
	Login(ctx context.Context, req entity.LoginRequest) (*entity.LoginResponse, error)
	Me(ctx context.Context, userID uint) (*entity.UserResponse, error)
}

type AuthConfig struct {
	DB         *gorm.DB
	Issuer     *auth.TokenIssuer
	Repository repository.UserRepository
	Log        *logrus.Logger
}

type authUsecase struct {
	cfg AuthConfig
}

func NewAuthUsecase(cfg AuthConfig) AuthUsecase {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	return &authUsecase{cfg: cfg}
}

func (u *authUsecase) Register(ctx context.Context, req entity.RegisterRequest) (*entity.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := u.cfg.Repository.FindByEmail(u.cfg.DB, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &internalEntity.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
	}
	if err := u.cfg.Repository.Create(u.cfg.DB, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	u.cfg.Log.WithField("user_id", user.ID).Info("user registered")
	res := toUserResponse(user)
	return &res, nil
}

func (u *authUsecase) Login(ctx context.Context, req entity.LoginRequest) (*entity.LoginResponse, error) {
	user, err := u.cfg.Repository.FindByEmail(u.cfg.DB, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := u.cfg.Issuer.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &entity.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		User:      toUserResponse(user),
	}, nil
}

func (u *authUsecase) Me(ctx context.Context, userID uint) (*entity.UserResponse, error) {
	user, err := u.cfg.Repository.FindByID(u.cfg.DB, userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	res := toUserResponse(user)
	return &res, nil
}

func toUserResponse(user *internalEntity.User) entity.UserResponse {
	return entity.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
