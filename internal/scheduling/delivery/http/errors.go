package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"later-reminder/internal/scheduling"
	"later-reminder/pkg/response"
)

// mapError translates domain errors into HTTP status codes. Unknown
// errors surface as 500 without leaking internals.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, scheduling.ErrEmptyInput),
		errors.Is(err, scheduling.ErrNoTitle),
		errors.Is(err, scheduling.ErrInvalidRange),
		errors.Is(err, scheduling.ErrInvalidSpacing):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, scheduling.ErrListNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, scheduling.ErrNoFreeDay):
		return http.StatusConflict, err.Error()
	case errors.Is(err, scheduling.ErrNotAuthorized):
		return http.StatusForbidden, err.Error()
	default:
		return http.StatusInternalServerError, response.DefaultErrorMessage
	}
}

func (h *handler) respondError(c *gin.Context, err error) {
	status, message := h.mapError(err)
	c.JSON(status, response.Resp{
		ErrorCode: status,
		Message:   message,
	})
}
