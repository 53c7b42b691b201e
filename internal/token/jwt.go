package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/clipstream/account-server/internal/model"
)

// Claims represents JWT claims with token type and identity payload. Access
// tokens carry the full identity; refresh tokens carry only the user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	Username  string    `json:"username,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	TokenType string    `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC. Access and refresh
// tokens are signed with independent secrets.
type JWT struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWT creates a new JWT token manager. Both secrets must be non-empty;
// an unconfigured secret is a startup error, not a request-time one.
func NewJWT(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*JWT, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("token secrets must be configured")
	}
	return &JWT{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

var _ model.TokenManager = (*JWT)(nil)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// GenerateAccessToken creates a short-lived access token with the full
// identity payload.
func (j *JWT) GenerateAccessToken(claims model.AccessClaims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTTL)),
		},
		UserID:    claims.UserID,
		Email:     claims.Email,
		Username:  claims.Username,
		FullName:  claims.FullName,
		TokenType: typeAccess,
	})

	tokenString, err := token.SignedString([]byte(j.accessSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// GenerateRefreshToken creates a long-lived refresh token carrying only the
// user ID.
func (j *JWT) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.refreshTTL)),
		},
		UserID:    userID,
		TokenType: typeRefresh,
	})

	tokenString, err := token.SignedString([]byte(j.refreshSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken validates an access token and extracts its claims.
func (j *JWT) ParseAccessToken(tokenString string) (model.AccessClaims, error) {
	claims, err := j.parse(tokenString, j.accessSecret, typeAccess)
	if err != nil {
		return model.AccessClaims{}, err
	}
	return model.AccessClaims{
		UserID:   claims.UserID,
		Email:    claims.Email,
		Username: claims.Username,
		FullName: claims.FullName,
	}, nil
}

// ParseRefreshToken validates a refresh token and extracts the user ID.
func (j *JWT) ParseRefreshToken(tokenString string) (uuid.UUID, error) {
	claims, err := j.parse(tokenString, j.refreshSecret, typeRefresh)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

// parse normalizes library failures to the model sentinels so callers can
// tell an expired token from a malformed one without seeing jwt internals.
func (j *JWT) parse(tokenString, secret, tokenType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.ErrTokenExpired
		}
		return nil, model.ErrTokenMalformed
	}
	if !token.Valid {
		return nil, model.ErrTokenMalformed
	}
	if claims.TokenType != tokenType {
		return nil, model.ErrTokenMalformed
	}
	return claims, nil
}
