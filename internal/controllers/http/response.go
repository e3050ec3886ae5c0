package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tableside/internal/services"
)

// Response is the envelope every endpoint returns, success or failure.
type Response struct {
	Data      any    `json:"data"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode,omitempty"`
}

const (
	codeNotFound        = "NOT_FOUND"
	codeInvalidArgument = "INVALID_ARGUMENT"
	codeConflict        = "CONFLICT"
	codeInternal        = "INTERNAL"
)

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Response{Data: data, Success: true, Message: message})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{Success: false, Message: message, ErrorCode: code})
}

// fail maps service outcomes onto the envelope. Client-input outcomes are
// not error-logged; anything unrecognized is an internal failure and is.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrOrderItemNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrTableNotFound):
		respondError(c, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, services.ErrTableRefRequired),
		errors.Is(err, services.ErrNoItems),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrMissingField):
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrMenuItemInUse),
		errors.Is(err, services.ErrNegativeTotal):
		respondError(c, http.StatusConflict, codeConflict, err.Error())
	default:
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("method", c.Request.Method),
			zap.Error(err))
		respondError(c, http.StatusInternalServerError, codeInternal, "internal error")
	}
}
