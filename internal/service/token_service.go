package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"github.com/google/uuid"

	"github.com/clipstream/account-server/internal/logger"
	"github.com/clipstream/account-server/internal/model"
)

// TokenService provides high-level operations for issuing, refreshing, and
// revoking token pairs. A single refresh token is live per user at any time;
// its SHA-256 hash is stored on the user record so the server can invalidate
// it. Possession of a validly signed refresh token is not sufficient — it
// must also match the stored hash.
type TokenService struct {
	manager model.TokenManager
	users   model.UserStore
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, users model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, users: users, logger: logger}
}

// Issue signs a new access/refresh pair for the user and persists the
// refresh token hash, overwriting any previous session.
func (s *TokenService) Issue(ctx context.Context, user model.User) (accessToken string, refreshToken string, err error) {
	access, err := s.manager.GenerateAccessToken(model.AccessClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
	})
	if err != nil {
		return "", "", fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.manager.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("issue refresh: %w", err)
	}

	if err := s.users.SetRefreshTokenHash(ctx, user.ID, hashRefresh(refresh)); err != nil {
		return "", "", fmt.Errorf("persist refresh: %w", err)
	}

	return access, refresh, nil
}

// Refresh validates the presented refresh token, rotates it, and returns a
// brand-new pair. The rotation is a conditional update guarded by the
// previous hash, so reuse of a rotated-out token fails even under
// concurrent calls.
func (s *TokenService) Refresh(ctx context.Context, presentedRefresh string) (newAccess string, newRefresh string, err error) {
	userID, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return "", "", err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", "", err
	}

	presentedHash := hashRefresh(presentedRefresh)
	if !equalBytes(user.RefreshTokenHash, presentedHash) {
		return "", "", model.ErrTokenMismatch
	}

	access, err := s.manager.GenerateAccessToken(model.AccessClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
	})
	if err != nil {
		return "", "", fmt.Errorf("issue new access: %w", err)
	}

	refresh, err := s.manager.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("issue new refresh: %w", err)
	}

	if err := s.users.RotateRefreshTokenHash(ctx, user.ID, presentedHash, hashRefresh(refresh)); err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

// Revoke clears the stored refresh token hash for the user.
func (s *TokenService) Revoke(ctx context.Context, userID uuid.UUID) error {
	return s.users.ClearRefreshTokenHash(ctx, userID)
}

// Authenticate verifies an access token and returns the embedded claims.
func (s *TokenService) Authenticate(ctx context.Context, token string) (model.AccessClaims, error) {
	return s.manager.ParseAccessToken(token)
}

func hashRefresh(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}

func equalBytes(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
