package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/openmusic-api/openmusic/dao"
	om_errors "github.com/openmusic-api/openmusic/errors"
	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/model"
	"github.com/openmusic-api/openmusic/util"
)

// AuthenticationService issues, refreshes and revokes token pairs.
type AuthenticationService struct {
	userDAO           dao.IUserDAO
	authenticationDAO dao.IAuthenticationDAO
	tokenManager      *util.TokenManager
}

func NewAuthenticationService(
	userDAO dao.IUserDAO,
	authenticationDAO dao.IAuthenticationDAO,
	tokenManager *util.TokenManager,
) *AuthenticationService {
	return &AuthenticationService{
		userDAO:           userDAO,
		authenticationDAO: authenticationDAO,
		tokenManager:      tokenManager,
	}
}

// Login verifies the credentials and returns a new access/refresh token
// pair. A missing user and a wrong password are indistinguishable to the
// caller.
func (s *AuthenticationService) Login(ctx context.Context, payload model.LoginPayload) (string, string, error) {
	user, err := s.userDAO.GetUserByUsername(ctx, payload.Username)
	if errors.Is(err, om_errors.ErrUserNotFound) {
		return "", "", om_errors.ErrInvalidCredentials
	} else if err != nil {
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return "", "", om_errors.ErrInvalidCredentials
	}

	accessToken, err := s.tokenManager.GenerateAccessToken(user.ID)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := s.tokenManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", err
	}

	if err := s.authenticationDAO.AddToken(ctx, refreshToken); err != nil {
		return "", "", err
	}

	logger.Info("User logged in", zap.String("userID", user.ID))
	return accessToken, refreshToken, nil
}

// RefreshAccessToken exchanges a registered refresh token for a new access
// token.
func (s *AuthenticationService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	if err := s.authenticationDAO.VerifyToken(ctx, refreshToken); err != nil {
		return "", err
	}

	userID, err := s.tokenManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	return s.tokenManager.GenerateAccessToken(userID)
}

// Logout revokes the refresh token.
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.tokenManager.VerifyRefreshToken(refreshToken); err != nil {
		return err
	}
	return s.authenticationDAO.DeleteToken(ctx, refreshToken)
}
