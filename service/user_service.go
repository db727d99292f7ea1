package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/openmusic-api/openmusic/dao"
	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/model"
)

// UserService handles registration and user lookups.
type UserService struct {
	userDAO dao.IUserDAO
}

func NewUserService(userDAO dao.IUserDAO) *UserService {
	return &UserService{userDAO: userDAO}
}

func (s *UserService) Register(ctx context.Context, payload model.UserPayload) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.userDAO.CreateUser(ctx, payload.Username, string(hash), payload.Fullname)
	if err != nil {
		return "", err
	}

	logger.Info("User registered", zap.String("userID", userID), zap.String("username", payload.Username))
	return userID, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.userDAO.GetUserByID(ctx, id)
}
