package middleware

import "errors"

var (
	errUnauthorized = errors.New("unauthorized request")
	errInvalidToken = errors.New("invalid access token")
)
