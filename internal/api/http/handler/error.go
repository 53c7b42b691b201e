package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipstream/account-server/internal/apperrors"
	"github.com/clipstream/account-server/internal/logger"
	"github.com/clipstream/account-server/internal/model"
)

// handleError maps service errors to the response envelope. Anything
// outside the API error taxonomy is an internal error and its detail stays
// out of the response.
func handleError(c *gin.Context, log *logger.Logger, err error) {
	if apiErr, ok := apperrors.As(err); ok {
		respond(c, apiErr.Code, nil, apiErr.Message)
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		respond(c, http.StatusNotFound, nil, "record not found")
		return
	}

	log.Error("handler: unexpected error", "error", err.Error())
	respond(c, http.StatusInternalServerError, nil, "internal server error")
}
