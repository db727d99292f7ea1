// util/token_manager.go

package util

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	om_errors "github.com/openmusic-api/openmusic/errors"
)

// TokenManager issues and verifies the HS256 access and refresh tokens.
// Access tokens expire after the configured age; refresh tokens carry no
// expiry and are revoked by deleting them from the authentications table.
type TokenManager struct {
	accessKey  []byte
	refreshKey []byte
	accessAge  time.Duration
}

func NewTokenManager(accessKey, refreshKey string, accessAge time.Duration) *TokenManager {
	return &TokenManager{
		accessKey:  []byte(accessKey),
		refreshKey: []byte(refreshKey),
		accessAge:  accessAge,
	}
}

func (t *TokenManager) GenerateAccessToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(t.accessAge).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.accessKey)
}

func (t *TokenManager) GenerateRefreshToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.refreshKey)
}

// VerifyAccessToken returns the user id carried by a valid access token.
func (t *TokenManager) VerifyAccessToken(tokenString string) (string, error) {
	return t.verify(tokenString, t.accessKey, om_errors.ErrInvalidToken)
}

// VerifyRefreshToken returns the user id carried by a valid refresh token.
func (t *TokenManager) VerifyRefreshToken(tokenString string) (string, error) {
	return t.verify(tokenString, t.refreshKey, om_errors.ErrInvalidRefreshToken)
}

func (t *TokenManager) verify(tokenString string, key []byte, failure error) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (interface{}, error) {
			return key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return "", failure
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", failure
	}
	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return "", failure
	}
	return userID, nil
}
