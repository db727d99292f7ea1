// middleware/auth_test.go
package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/middleware"
	"github.com/openmusic-api/openmusic/util"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	dir, err := os.MkdirTemp("", "middleware-test-logs")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)
	logger.InitLogger(dir)
	os.Exit(m.Run())
}

func newAuthRouter(tm *util.TokenManager) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/whoami", middleware.Auth(tm), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return router
}

func TestAuthAcceptsValidBearerToken(t *testing.T) {
	tm := util.NewTokenManager("access-secret", "refresh-secret", 30*time.Minute)
	router := newAuthRouter(tm)

	token, err := tm.GenerateAccessToken("user-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-1", body["userID"])
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	tm := util.NewTokenManager("access-secret", "refresh-secret", 30*time.Minute)
	router := newAuthRouter(tm)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsForgedToken(t *testing.T) {
	tm := util.NewTokenManager("access-secret", "refresh-secret", 30*time.Minute)
	forger := util.NewTokenManager("other-secret", "refresh-secret", 30*time.Minute)
	router := newAuthRouter(tm)

	token, err := forger.GenerateAccessToken("user-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsRefreshTokenOnAccessRoute(t *testing.T) {
	tm := util.NewTokenManager("access-secret", "refresh-secret", 30*time.Minute)
	router := newAuthRouter(tm)

	token, err := tm.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
