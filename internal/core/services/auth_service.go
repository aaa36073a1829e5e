package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dukaanbook/dukaanbook_backend/internal/apperrors"
	portsrepo "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/repositories"
	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
	"github.com/dukaanbook/dukaanbook_backend/internal/dto"
	"github.com/dukaanbook/dukaanbook_backend/internal/middleware"
	"github.com/dukaanbook/dukaanbook_backend/internal/utils"
	"github.com/dukaanbook/dukaanbook_backend/pkg/config"
)

type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates the authentication service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and issues a signed access token carrying the
// user's role and shop.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a wrong password; do not reveal which.
			return nil, apperrors.ErrForbidden
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("email", req.Email))
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	claims := middleware.LedgerClaims{
		Role:   string(user.Role),
		ShopID: user.ShopID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiryDuration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("userID", user.UserID))
	return &dto.LoginResponse{
		Token:     token,
		UserID:    user.UserID,
		Role:      string(user.Role),
		ShopID:    user.ShopID,
		ExpiresIn: int64(s.cfg.JWTExpiryDuration.Seconds()),
	}, nil
}
