package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clipstream/account-server/internal/logger"
	"github.com/clipstream/account-server/internal/model"
)

// TokenService resolves identity claims from bearer access tokens.
type TokenService interface {
	Authenticate(ctx context.Context, token string) (model.AccessClaims, error)
}

// UserResolver confirms the token's subject still exists.
type UserResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// Authenticate validates access tokens and injects the user ID into the
// request context. The token is taken from the accessToken cookie or the
// Authorization header.
type Authenticate struct {
	tokenService   TokenService
	users          UserResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, users UserResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenService:   tokenService,
		users:          users,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle is the gin middleware entrypoint.
func (m *Authenticate) Handle(c *gin.Context) {
	tokenString := m.extractToken(c)

	userID, err := m.authenticateUser(c.Request.Context(), tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"status":  http.StatusUnauthorized,
			"message": err.Error(),
		})
		return
	}

	ctx := m.contextManager.SetUserIDToContext(c.Request.Context(), userID)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

func (m *Authenticate) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie != "" {
		return cookie
	}
	return strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, errUnauthorized
	}

	claims, err := m.tokenService.Authenticate(ctx, tokenString)
	if err != nil {
		return uuid.Nil, errInvalidToken
	}

	if _, err := m.users.GetByID(ctx, claims.UserID); err != nil {
		return uuid.Nil, errInvalidToken
	}

	return claims.UserID, nil
}
