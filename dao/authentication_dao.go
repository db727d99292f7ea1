// dao/authentication_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/openmusic-api/openmusic/audit"
	om_errors "github.com/openmusic-api/openmusic/errors"
	"github.com/openmusic-api/openmusic/model"
)

// IAuthenticationDAO is the persistence contract for refresh tokens.
type IAuthenticationDAO interface {
	AddToken(ctx context.Context, token string) error
	VerifyToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}

type AuthenticationDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewAuthenticationDAO(db *gorm.DB, auditService audit.Service) *AuthenticationDAO {
	return &AuthenticationDAO{db: db, auditService: auditService}
}

func (dao *AuthenticationDAO) AddToken(ctx context.Context, token string) error {
	auth := model.Authentication{Token: token}
	if err := dao.db.WithContext(ctx).Create(&auth).Error; err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// VerifyToken reports whether the refresh token is still registered. A token
// that was never issued or already revoked is a client fault.
func (dao *AuthenticationDAO) VerifyToken(ctx context.Context, token string) error {
	var auth model.Authentication
	err := dao.db.WithContext(ctx).First(&auth, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return om_errors.ErrInvalidRefreshToken
	} else if err != nil {
		return fmt.Errorf("failed to verify refresh token: %w", err)
	}
	return nil
}

func (dao *AuthenticationDAO) DeleteToken(ctx context.Context, token string) error {
	result := dao.db.WithContext(ctx).Delete(&model.Authentication{}, "token = ?", token)
	if result.Error != nil {
		return fmt.Errorf("failed to delete refresh token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return om_errors.ErrInvalidRefreshToken
	}
	return nil
}
