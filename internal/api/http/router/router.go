package router

import (
	"github.com/gin-gonic/gin"

	"github.com/clipstream/account-server/internal/api/http/handler"
	"github.com/clipstream/account-server/internal/api/http/middleware"
	"github.com/clipstream/account-server/internal/logger"
	"github.com/clipstream/account-server/internal/model"
	"github.com/clipstream/account-server/internal/service"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	userService    *service.User
	tokenService   *service.TokenService
	users          model.UserStore
	contextManager model.ContextManager
	cookies        *handler.CookieHelper
	tempDir        string
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	userService *service.User,
	tokenService *service.TokenService,
	users model.UserStore,
	contextManager model.ContextManager,
	cookies *handler.CookieHelper,
	tempDir string,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService:    userService,
		tokenService:   tokenService,
		users:          users,
		contextManager: contextManager,
		cookies:        cookies,
		tempDir:        tempDir,
		logger:         logger,
	}
}

// Register sets up all routes and middleware and returns the engine.
func (r *Router) Register() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	logging := middleware.NewLogging(r.logger)
	engine.Use(logging.Handle)

	authenticate := middleware.NewAuthenticate(r.tokenService, r.users, r.contextManager, r.logger)

	userHandler := handler.NewUser(r.userService, r.cookies, r.contextManager, r.tempDir, r.logger)

	engine.GET("/healthz", handler.Health)

	users := engine.Group("/api/v1/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.POST("/refresh-token", userHandler.Refresh)
	}

	secured := engine.Group("/api/v1/users")
	secured.Use(authenticate.Handle)
	{
		secured.POST("/logout", userHandler.Logout)
		secured.POST("/change-password", userHandler.ChangePassword)
		secured.GET("/current-user", userHandler.CurrentUser)
		secured.PATCH("/update-account", userHandler.UpdateAccount)
		secured.PATCH("/avatar", userHandler.UpdateAvatar)
		secured.PATCH("/cover-image", userHandler.UpdateCoverImage)
	}

	return engine
}
