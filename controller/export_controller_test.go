// controller/export_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openmusic-api/openmusic/controller"
	om_errors "github.com/openmusic-api/openmusic/errors"
	"github.com/openmusic-api/openmusic/middleware"
	"github.com/openmusic-api/openmusic/service"
	"github.com/openmusic-api/openmusic/test/mock"
)

func newExportRouter(svc service.IExportService, userID string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	controller.NewExportController(svc).RegisterRoutes(router.Group("/"), stubAuth(userID))
	return router
}

func TestExportPlaylistAccepted(t *testing.T) {
	svc := new(mock.MockExportService)
	svc.On("ExportPlaylist", tmock.Anything, "playlist-1", "user-1", "me@example.com").Return(nil)
	router := newExportRouter(svc, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/export/playlists/playlist-1",
		strings.NewReader(`{"targetEmail":"me@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Your request is being processed", body["message"])
	svc.AssertExpectations(t)
}

func TestExportPlaylistForbidden(t *testing.T) {
	svc := new(mock.MockExportService)
	svc.On("ExportPlaylist", tmock.Anything, "playlist-1", "stranger", "me@example.com").
		Return(om_errors.ErrPlaylistAccessDenied)
	router := newExportRouter(svc, "stranger")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/export/playlists/playlist-1",
		strings.NewReader(`{"targetEmail":"me@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "fail", body["status"])
}

func TestExportPlaylistRejectsBadEmail(t *testing.T) {
	svc := new(mock.MockExportService)
	router := newExportRouter(svc, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/export/playlists/playlist-1",
		strings.NewReader(`{"targetEmail":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ExportPlaylist", tmock.Anything, tmock.Anything, tmock.Anything, tmock.Anything)
}
