package model

import "errors"

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenMismatch  = errors.New("refresh token mismatch")
)
