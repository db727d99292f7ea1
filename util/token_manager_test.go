// util/token_manager_test.go
package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	om_errors "github.com/openmusic-api/openmusic/errors"
	"github.com/openmusic-api/openmusic/util"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := util.NewTokenManager("access-secret", "refresh-secret", 30*time.Minute)

	token, err := tm.GenerateAccessToken("user-123")
	require.NoError(t, err)

	userID, err := tm.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tm := util.NewTokenManager("access-secret", "refresh-secret", 30*time.Minute)

	token, err := tm.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	userID, err := tm.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	tm := util.NewTokenManager("access-secret", "refresh-secret", 30*time.Minute)

	accessToken, err := tm.GenerateAccessToken("user-123")
	require.NoError(t, err)
	refreshToken, err := tm.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	_, err = tm.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, om_errors.ErrInvalidRefreshToken)

	_, err = tm.VerifyAccessToken(refreshToken)
	assert.ErrorIs(t, err, om_errors.ErrInvalidToken)
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	tm := util.NewTokenManager("access-secret", "refresh-secret", -time.Minute)

	token, err := tm.GenerateAccessToken("user-123")
	require.NoError(t, err)

	_, err = tm.VerifyAccessToken(token)
	assert.ErrorIs(t, err, om_errors.ErrInvalidToken)
}

func TestGarbageTokenRejected(t *testing.T) {
	tm := util.NewTokenManager("access-secret", "refresh-secret", 30*time.Minute)

	_, err := tm.VerifyAccessToken("not-a-token")
	assert.ErrorIs(t, err, om_errors.ErrInvalidToken)
}
