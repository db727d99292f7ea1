// controller/album_controller_test.go
package controller_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openmusic-api/openmusic/controller"
	om_errors "github.com/openmusic-api/openmusic/errors"
	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/middleware"
	"github.com/openmusic-api/openmusic/model"
	"github.com/openmusic-api/openmusic/service"
	"github.com/openmusic-api/openmusic/test/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	dir, err := os.MkdirTemp("", "controller-test-logs")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)
	logger.InitLogger(dir)
	os.Exit(m.Run())
}

// stubAuth plays the role of the auth middleware with a fixed identity.
func stubAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newAlbumRouter(svc service.IAlbumService, userID string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	controller.NewAlbumController(svc).RegisterRoutes(router.Group("/"), stubAuth(userID))
	return router
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateAlbumCreated(t *testing.T) {
	svc := new(mock.MockAlbumService)
	svc.On("CreateAlbum", tmock.Anything, model.AlbumPayload{Name: "Viva la Vida", Year: 2008}).
		Return("album-1", nil)
	router := newAlbumRouter(svc, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/albums", strings.NewReader(`{"name":"Viva la Vida","year":2008}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "album-1", data["albumId"])
}

func TestCreateAlbumInvalidPayload(t *testing.T) {
	svc := new(mock.MockAlbumService)
	router := newAlbumRouter(svc, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/albums", strings.NewReader(`{"name":"No Year"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "fail", body["status"])
	svc.AssertNotCalled(t, "CreateAlbum", tmock.Anything, tmock.Anything)
}

func TestGetAlbumNotFoundEnvelope(t *testing.T) {
	svc := new(mock.MockAlbumService)
	svc.On("GetAlbum", tmock.Anything, "missing").Return(nil, om_errors.ErrAlbumNotFound)
	router := newAlbumRouter(svc, "user-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/albums/missing", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "fail", body["status"])
	assert.Equal(t, om_errors.ErrAlbumNotFound.Error(), body["message"])
}

func TestGetAlbumLikesCacheHitHeader(t *testing.T) {
	svc := new(mock.MockAlbumService)
	svc.On("GetAlbumLikes", tmock.Anything, "album-1").Return(int64(5), true, nil)
	router := newAlbumRouter(svc, "user-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/albums/album-1/likes", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cache", w.Header().Get("X-Data-Source"))
	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(5), data["likes"])
}

func TestGetAlbumLikesFreshReadHasNoCacheHeader(t *testing.T) {
	svc := new(mock.MockAlbumService)
	svc.On("GetAlbumLikes", tmock.Anything, "album-1").Return(int64(5), false, nil)
	router := newAlbumRouter(svc, "user-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/albums/album-1/likes", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Data-Source"))
}

func TestLikeAlbumConflict(t *testing.T) {
	svc := new(mock.MockAlbumService)
	svc.On("LikeAlbum", tmock.Anything, "user-1", "album-1").
		Return(om_errors.ErrAlbumAlreadyLiked)
	router := newAlbumRouter(svc, "user-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/albums/album-1/likes", nil))

	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "fail", body["status"])
}

func TestServerFaultHidesDetails(t *testing.T) {
	svc := new(mock.MockAlbumService)
	svc.On("GetAlbum", tmock.Anything, "album-1").
		Return(nil, errors.New("pq: connection reset by peer"))
	router := newAlbumRouter(svc, "user-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/albums/album-1", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "something went wrong on our end", body["message"])
	assert.NotContains(t, w.Body.String(), "connection reset")
}
