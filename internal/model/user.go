package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for user accounts. Uniqueness of
// username and email is enforced by the store itself; Create returns
// ErrConflict when either collides with an existing record.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByLogin(ctx context.Context, usernameOrEmail string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email string) (User, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (User, error)
	UpdateCoverImage(ctx context.Context, id uuid.UUID, coverImageURL string) (User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetRefreshTokenHash(ctx context.Context, id uuid.UUID, hash []byte) error
	// RotateRefreshTokenHash replaces the stored refresh token hash only if it
	// still equals oldHash. Returns ErrTokenMismatch when the guard fails.
	RotateRefreshTokenHash(ctx context.Context, id uuid.UUID, oldHash, newHash []byte) error
	ClearRefreshTokenHash(ctx context.Context, id uuid.UUID) error
}

// User represents a stored user account with credential material.
type User struct {
	ID               uuid.UUID
	Username         string
	Email            string
	FullName         string
	AvatarURL        string
	CoverImageURL    string
	PasswordHash     string
	RefreshTokenHash []byte
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PublicUser is the externally visible projection of a User. It never
// carries the password hash or the refresh token hash.
type PublicUser struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	AvatarURL     string    `json:"avatarUrl"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Public returns the safe projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FullName:      u.FullName,
		AvatarURL:     u.AvatarURL,
		CoverImageURL: u.CoverImageURL,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
