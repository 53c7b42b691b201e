package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/clipstream/account-server/internal/apperrors"
	"github.com/clipstream/account-server/internal/logger"
	"github.com/clipstream/account-server/internal/model"
)

// User orchestrates registration, login, session and profile operations
// against the user store, password hasher, media storage and token service.
type User struct {
	users        model.UserStore
	hasher       model.PasswordHasher
	storage      model.MediaStorage
	tokenService *TokenService
	logger       *logger.Logger
}

func NewUser(
	users model.UserStore,
	hasher model.PasswordHasher,
	storage model.MediaStorage,
	tokenService *TokenService,
	logger *logger.Logger,
) *User {
	return &User{
		users:        users,
		hasher:       hasher,
		storage:      storage,
		tokenService: tokenService,
		logger:       logger,
	}
}

// RegisterInput carries trimmed-at-the-edge registration fields plus local
// paths of the uploaded image files. Avatar is required, cover is optional
// (empty path means absent).
type RegisterInput struct {
	FullName            string
	Email               string
	Username            string
	Password            string
	AvatarLocalPath     string
	CoverImageLocalPath string
}

// LoginResult is the output of a successful login.
type LoginResult struct {
	User         model.PublicUser
	AccessToken  string
	RefreshToken string
}

// TokenPair is the output of a successful refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Register creates a new user account. The store's unique indexes are the
// real duplicate guarantee; the lookup before insert only produces a
// friendlier failure for the common case.
func (s *User) Register(ctx context.Context, in RegisterInput) (model.PublicUser, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.ToLower(strings.TrimSpace(in.Username))
	password := strings.TrimSpace(in.Password)

	if fullName == "" || email == "" || username == "" || password == "" {
		return model.PublicUser{}, apperrors.NewErrFieldsRequired()
	}
	if in.AvatarLocalPath == "" {
		return model.PublicUser{}, apperrors.NewErrFileRequired("avatar")
	}

	s.logger.Debug("User service: registering user", "username", username)

	for _, identifier := range []string{username, email} {
		_, err := s.users.GetByLogin(ctx, identifier)
		if err == nil {
			return model.PublicUser{}, apperrors.NewErrUserExists()
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.PublicUser{}, fmt.Errorf("failed to check existing user: %w", err)
		}
	}

	avatarURL, err := s.storage.UploadFile(ctx, in.AvatarLocalPath)
	if err != nil {
		s.logger.Error("User service: avatar upload failed",
			"username", username,
			"error", err.Error())
		return model.PublicUser{}, apperrors.NewErrUploadFailed("avatar")
	}

	// Cover image failure degrades to an absent cover, not a hard error.
	coverImageURL := ""
	if in.CoverImageLocalPath != "" {
		coverImageURL, err = s.storage.UploadFile(ctx, in.CoverImageLocalPath)
		if err != nil {
			s.logger.Warn("User service: cover image upload failed, continuing without it",
				"username", username,
				"error", err.Error())
			coverImageURL = ""
		}
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return model.PublicUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.users.Create(ctx, model.User{
		ID:            uuid.New(),
		Username:      username,
		Email:         email,
		FullName:      fullName,
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
		PasswordHash:  passwordHash,
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.PublicUser{}, apperrors.NewErrUserExists()
		}
		return model.PublicUser{}, fmt.Errorf("failed to create user: %w", err)
	}

	saved, err := s.users.GetByID(ctx, created.ID)
	if err != nil {
		s.logger.Error("User service: created user not readable",
			"user_id", created.ID,
			"error", err.Error())
		return model.PublicUser{}, apperrors.NewErrInternal("something went wrong while registering the user")
	}

	s.logger.Info("User service: user registered", "username", username, "user_id", saved.ID)

	return saved.Public(), nil
}

// Login verifies credentials and starts a session, overwriting any previous
// refresh token for the user.
func (s *User) Login(ctx context.Context, usernameOrEmail, password string) (LoginResult, error) {
	identifier := strings.ToLower(strings.TrimSpace(usernameOrEmail))
	if identifier == "" {
		return LoginResult{}, apperrors.NewErrFieldsRequired()
	}

	user, err := s.users.GetByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return LoginResult{}, apperrors.NewErrUserNotFound()
		}
		return LoginResult{}, fmt.Errorf("failed to get user by login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return LoginResult{}, apperrors.NewErrInvalidCredentials()
	}

	access, refresh, err := s.tokenService.Issue(ctx, user)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	s.logger.Info("User service: user logged in", "user_id", user.ID)

	return LoginResult{
		User:         user.Public(),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// RefreshTokens exchanges a valid refresh token for a new pair. All failure
// modes surface as Unauthorized so the caller cannot distinguish a forged
// token from a rotated-out one.
func (s *User) RefreshTokens(ctx context.Context, presentedRefresh string) (TokenPair, error) {
	if presentedRefresh == "" {
		return TokenPair{}, apperrors.NewErrMissingAuthorizationToken()
	}

	access, refresh, err := s.tokenService.Refresh(ctx, presentedRefresh)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTokenMismatch):
			return TokenPair{}, apperrors.NewErrRefreshTokenUsed()
		case errors.Is(err, model.ErrTokenExpired),
			errors.Is(err, model.ErrTokenMalformed),
			errors.Is(err, model.ErrNotFound):
			return TokenPair{}, apperrors.NewErrInvalidRefreshToken()
		default:
			return TokenPair{}, fmt.Errorf("failed to refresh tokens: %w", err)
		}
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout invalidates the user's refresh token unconditionally.
func (s *User) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.tokenService.Revoke(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	s.logger.Info("User service: user logged out", "user_id", userID)
	return nil
}

// ChangePassword rotates the credential and revokes the live refresh token,
// forcing re-login on other clients holding the old session.
func (s *User) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return apperrors.NewErrFieldsRequired()
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apperrors.NewErrUserNotFound()
		}
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if !s.hasher.Verify(oldPassword, user.PasswordHash) {
		return apperrors.NewErrInvalidPassword()
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	if err := s.tokenService.Revoke(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke session after password change: %w", err)
	}

	s.logger.Info("User service: password changed", "user_id", userID)
	return nil
}

// GetCurrentUser returns the public view of the authenticated user.
func (s *User) GetCurrentUser(ctx context.Context, userID uuid.UUID) (model.PublicUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.PublicUser{}, apperrors.NewErrUserNotFound()
		}
		return model.PublicUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user.Public(), nil
}

// UpdateAccount updates full name and email.
func (s *User) UpdateAccount(ctx context.Context, userID uuid.UUID, fullName, email string) (model.PublicUser, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || email == "" {
		return model.PublicUser{}, apperrors.NewErrFieldsRequired()
	}

	user, err := s.users.UpdateAccount(ctx, userID, fullName, email)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return model.PublicUser{}, apperrors.NewErrUserNotFound()
		case errors.Is(err, model.ErrConflict):
			return model.PublicUser{}, apperrors.NewErrUserExists()
		default:
			return model.PublicUser{}, fmt.Errorf("failed to update account: %w", err)
		}
	}
	return user.Public(), nil
}

// UpdateAvatar uploads a replacement avatar and overwrites the stored URL.
func (s *User) UpdateAvatar(ctx context.Context, userID uuid.UUID, localPath string) (model.PublicUser, error) {
	return s.updateImage(ctx, userID, localPath, "avatar", s.users.UpdateAvatar)
}

// UpdateCoverImage uploads a replacement cover image and overwrites the
// stored URL.
func (s *User) UpdateCoverImage(ctx context.Context, userID uuid.UUID, localPath string) (model.PublicUser, error) {
	return s.updateImage(ctx, userID, localPath, "cover image", s.users.UpdateCoverImage)
}

func (s *User) updateImage(
	ctx context.Context,
	userID uuid.UUID,
	localPath, what string,
	update func(context.Context, uuid.UUID, string) (model.User, error),
) (model.PublicUser, error) {
	if localPath == "" {
		return model.PublicUser{}, apperrors.NewErrFileRequired(what)
	}

	url, err := s.storage.UploadFile(ctx, localPath)
	if err != nil {
		s.logger.Error("User service: image upload failed",
			"user_id", userID,
			"kind", what,
			"error", err.Error())
		return model.PublicUser{}, apperrors.NewErrUploadFailed(what)
	}

	user, err := update(ctx, userID, url)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.PublicUser{}, apperrors.NewErrUserNotFound()
		}
		return model.PublicUser{}, fmt.Errorf("failed to update %s: %w", what, err)
	}
	return user.Public(), nil
}
