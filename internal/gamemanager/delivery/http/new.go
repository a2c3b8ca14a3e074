package http

import (
	"github.com/gin-gonic/gin"

	"game-manager/internal/gamemanager"
	"game-manager/pkg/log"
)

// Handler is the public interface for the game manager HTTP delivery layer.
type Handler interface {
	ExecuteVoIP(c *gin.Context)
	ExecuteVR(c *gin.Context)
	ExecuteIoT(c *gin.Context)
	ExecuteGeospatial(c *gin.Context)
	ListExecutions(kind gamemanager.Kind) gin.HandlerFunc
}

type handler struct {
	l  log.Logger
	uc gamemanager.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the game manager domain.
func New(l log.Logger, uc gamemanager.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
