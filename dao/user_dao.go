// dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmusic-api/openmusic/audit"
	om_errors "github.com/openmusic-api/openmusic/errors"
	"github.com/openmusic-api/openmusic/model"
)

// IUserDAO is the persistence contract for users.
type IUserDAO interface {
	CreateUser(ctx context.Context, username, passwordHash, fullname string) (string, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type UserDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewUserDAO(db *gorm.DB, auditService audit.Service) *UserDAO {
	return &UserDAO{db: db, auditService: auditService}
}

func (dao *UserDAO) CreateUser(ctx context.Context, username, passwordHash, fullname string) (string, error) {
	user := model.User{
		ID:       uuid.New().String(),
		Username: username,
		Password: passwordHash,
		Fullname: fullname,
	}
	err := dao.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", om_errors.ErrUsernameTaken
	} else if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	logChange(ctx, dao.auditService, user.ID, "create", "user", user.ID)
	return user.ID, nil
}

func (dao *UserDAO) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, om_errors.ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, om_errors.ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
