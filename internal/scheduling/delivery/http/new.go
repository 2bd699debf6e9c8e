package http

import (
	"github.com/gin-gonic/gin"

	"later-reminder/internal/scheduling"
	pkgLog "later-reminder/pkg/log"
)

// Handler is the public interface for the scheduling HTTP delivery
// layer.
type Handler interface {
	Plan(c *gin.Context)
	Apply(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc scheduling.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the scheduling domain.
func New(l pkgLog.Logger, uc scheduling.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
