package model

import "github.com/google/uuid"

// AccessClaims is the identity payload embedded in access tokens.
type AccessClaims struct {
	UserID   uuid.UUID
	Email    string
	Username string
	FullName string
}

// TokenManager generates and validates access/refresh tokens. The two token
// classes are signed with independent secrets so that compromise of one does
// not implicate the other.
type TokenManager interface {
	GenerateAccessToken(claims AccessClaims) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ParseAccessToken(token string) (AccessClaims, error)
	ParseRefreshToken(token string) (uuid.UUID, error)
}
