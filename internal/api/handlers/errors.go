package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sutharpankaj1/flowq/internal/api/dto"
	"github.com/sutharpankaj1/flowq/internal/domain"
)

// writeError maps a domain error to exactly one HTTP status and error code
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"

	switch {
	case errors.Is(err, domain.ErrQueueNotFound):
		status, code = http.StatusNotFound, "QUEUE_NOT_FOUND"
	case errors.Is(err, domain.ErrQueueAlreadyExists):
		status, code = http.StatusConflict, "QUEUE_ALREADY_EXISTS"
	case errors.Is(err, domain.ErrMessageNotFound):
		status, code = http.StatusNotFound, "MESSAGE_NOT_FOUND"
	case errors.Is(err, domain.ErrQueueFull):
		status, code = http.StatusServiceUnavailable, "QUEUE_FULL"
	case errors.Is(err, domain.ErrInvalidMessage):
		status, code = http.StatusBadRequest, "INVALID_MESSAGE"
	case errors.Is(err, domain.ErrStorage):
		status, code = http.StatusInternalServerError, "STORAGE_ERROR"
	}

	c.JSON(status, dto.ErrorResponse{
		Error:     err.Error(),
		Code:      code,
		Timestamp: time.Now().UTC(),
	})
}

// writeBadRequest reports a malformed request body or parameter
func writeBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:     msg,
		Code:      "INVALID_MESSAGE",
		Timestamp: time.Now().UTC(),
	})
}
