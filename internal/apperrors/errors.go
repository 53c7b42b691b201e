// Package apperrors defines the API error taxonomy shared by services and
// the HTTP transport. Every service operation fails with exactly one of
// these kinds; the transport maps the code to a response status without
// inspecting collaborator-specific detail.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError carries an HTTP status code and a human-readable message.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// As unwraps err into an *APIError if it is one.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func NewErrFieldsRequired() *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: "all fields are required"}
}

func NewErrFileRequired(what string) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: fmt.Sprintf("%s file is required", what)}
}

func NewErrUserExists() *APIError {
	return &APIError{Code: http.StatusConflict, Message: "user with email or username already exists"}
}

func NewErrUserNotFound() *APIError {
	return &APIError{Code: http.StatusNotFound, Message: "user does not exist"}
}

func NewErrInvalidCredentials() *APIError {
	return &APIError{Code: http.StatusUnauthorized, Message: "invalid user credentials"}
}

func NewErrInvalidPassword() *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: "invalid old password"}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Code: http.StatusUnauthorized, Message: "unauthorized request"}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{Code: http.StatusUnauthorized, Message: "invalid access token"}
}

func NewErrInvalidRefreshToken() *APIError {
	return &APIError{Code: http.StatusUnauthorized, Message: "invalid refresh token"}
}

func NewErrRefreshTokenUsed() *APIError {
	return &APIError{Code: http.StatusUnauthorized, Message: "refresh token is expired or used"}
}

func NewErrUploadFailed(what string) *APIError {
	return &APIError{Code: http.StatusBadGateway, Message: fmt.Sprintf("failed to upload %s", what)}
}

func NewErrInternal(msg string) *APIError {
	return &APIError{Code: http.StatusInternalServerError, Message: msg}
}
