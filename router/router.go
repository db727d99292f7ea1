// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/openmusic-api/openmusic/controller"
	"github.com/openmusic-api/openmusic/middleware"
	"github.com/openmusic-api/openmusic/util"
)

func SetupRouter(
	controllers *controller.Controllers,
	tokenManager *util.TokenManager,
	redisClient *redis.Client,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RateLimiter(redisClient, rateLimitRequests, rateLimitDuration))

	requireAuth := middleware.Auth(tokenManager)
	api := router.Group("/")

	controllers.Album.RegisterRoutes(api, requireAuth)
	controllers.Song.RegisterRoutes(api, requireAuth)
	controllers.User.RegisterRoutes(api, requireAuth)
	controllers.Authentication.RegisterRoutes(api, requireAuth)
	controllers.Playlist.RegisterRoutes(api, requireAuth)
	controllers.Collaboration.RegisterRoutes(api, requireAuth)
	controllers.Export.RegisterRoutes(api, requireAuth)

	return router
}
