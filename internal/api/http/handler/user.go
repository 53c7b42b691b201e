// Package handler contains HTTP request handlers for the account service.
package handler

import (
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clipstream/account-server/internal/apperrors"
	"github.com/clipstream/account-server/internal/logger"
	"github.com/clipstream/account-server/internal/model"
	"github.com/clipstream/account-server/internal/service"
)

// UserService defines the account and session operations consumed by the
// HTTP layer.
type UserService interface {
	Register(ctx context.Context, in service.RegisterInput) (model.PublicUser, error)
	Login(ctx context.Context, usernameOrEmail, password string) (service.LoginResult, error)
	RefreshTokens(ctx context.Context, presentedRefresh string) (service.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (model.PublicUser, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, fullName, email string) (model.PublicUser, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, localPath string) (model.PublicUser, error)
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, localPath string) (model.PublicUser, error)
}

// User handles HTTP endpoints for account and session operations.
type User struct {
	service        UserService
	cookies        *CookieHelper
	contextManager model.ContextManager
	tempDir        string
	logger         *logger.Logger
}

// NewUser creates a new User handler. tempDir is where multipart uploads
// are staged before being pushed to the object store.
func NewUser(service UserService, cookies *CookieHelper, contextManager model.ContextManager, tempDir string, logger *logger.Logger) *User {
	return &User{
		service:        service,
		cookies:        cookies,
		contextManager: contextManager,
		tempDir:        tempDir,
		logger:         logger,
	}
}

// LoginRequest represents the login request payload. Either username or
// email identifies the account.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest represents the token refresh payload for clients that do
// not use the cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest represents the password change payload.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UpdateAccountRequest represents the profile update payload.
type UpdateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type loginData struct {
	User         model.PublicUser `json:"user"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
}

type tokenData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Register creates an account from a multipart form carrying the account
// fields plus an avatar file (required) and a cover image file (optional).
func (h *User) Register(c *gin.Context) {
	avatarPath, ok := h.saveFormFile(c, "avatar")
	if avatarPath != "" {
		defer h.removeTempFile(avatarPath)
	}
	if !ok {
		return
	}

	coverPath, ok := h.saveFormFile(c, "coverImage")
	if coverPath != "" {
		defer h.removeTempFile(coverPath)
	}
	if !ok {
		return
	}

	view, err := h.service.Register(c.Request.Context(), service.RegisterInput{
		FullName:            c.PostForm("fullName"),
		Email:               c.PostForm("email"),
		Username:            c.PostForm("username"),
		Password:            c.PostForm("password"),
		AvatarLocalPath:     avatarPath,
		CoverImageLocalPath: coverPath,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	respond(c, http.StatusCreated, view, "user registered successfully")
}

// Login verifies credentials and returns the token pair, additionally set
// as http-only cookies.
func (h *User) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, nil, "invalid request body")
		return
	}

	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}

	result, err := h.service.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.cookies.SetAuthCookies(c, result.AccessToken, result.RefreshToken)
	respond(c, http.StatusOK, loginData{
		User:         result.User,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}, "user logged in successfully")
}

// Refresh exchanges a refresh token, taken from the cookie or the body, for
// a new pair.
func (h *User) Refresh(c *gin.Context) {
	presented := h.cookies.GetRefreshToken(c)
	if presented == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			presented = req.RefreshToken
		}
	}

	pair, err := h.service.RefreshTokens(c.Request.Context(), presented)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.cookies.SetAuthCookies(c, pair.AccessToken, pair.RefreshToken)
	respond(c, http.StatusOK, tokenData{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "access token refreshed")
}

// Logout invalidates the session and clears both cookies.
func (h *User) Logout(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.cookies.ClearAuthCookies(c)
	respond(c, http.StatusOK, nil, "user logged out successfully")
}

// ChangePassword rotates the account credential.
func (h *User) ChangePassword(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, nil, "invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		handleError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, nil, "password changed successfully")
}

// CurrentUser returns the authenticated user's public view.
func (h *User) CurrentUser(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	view, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, view, "current user fetched successfully")
}

// UpdateAccount updates full name and email.
func (h *User) UpdateAccount(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, nil, "invalid request body")
		return
	}

	view, err := h.service.UpdateAccount(c.Request.Context(), userID, req.FullName, req.Email)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, view, "account details updated successfully")
}

// UpdateAvatar replaces the avatar image.
func (h *User) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", h.service.UpdateAvatar)
}

// UpdateCoverImage replaces the cover image.
func (h *User) UpdateCoverImage(c *gin.Context) {
	h.updateImage(c, "coverImage", h.service.UpdateCoverImage)
}

func (h *User) updateImage(c *gin.Context, field string, update func(context.Context, uuid.UUID, string) (model.PublicUser, error)) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	localPath, ok := h.saveFormFile(c, field)
	if localPath != "" {
		defer h.removeTempFile(localPath)
	}
	if !ok {
		return
	}

	view, err := update(c.Request.Context(), userID, localPath)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, view, field+" updated successfully")
}

func (h *User) currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		handleError(c, h.logger, apperrors.NewErrMissingAuthorizationToken())
		return uuid.Nil, false
	}
	return userID, true
}

// saveFormFile stages an uploaded file in the temp dir. An absent field is
// not an error here; required-file validation belongs to the service. The
// returned path is empty when nothing was saved.
func (h *User) saveFormFile(c *gin.Context, field string) (string, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", true
	}

	dst := filepath.Join(h.tempDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := h.saveTo(c, file, dst); err != nil {
		h.logger.Error("handler: failed to stage uploaded file",
			"field", field,
			"error", err.Error())
		respond(c, http.StatusInternalServerError, nil, "failed to process uploaded file")
		return "", false
	}

	return dst, true
}

func (h *User) saveTo(c *gin.Context, file *multipart.FileHeader, dst string) error {
	if err := os.MkdirAll(h.tempDir, 0o755); err != nil {
		return err
	}
	return c.SaveUploadedFile(file, dst)
}

func (h *User) removeTempFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		h.logger.Warn("handler: failed to remove temp file",
			"path", path,
			"error", err.Error())
	}
}
