package http

import (
	"github.com/gin-gonic/gin"

	"game-manager/internal/gamemanager"
)

// RoutePrefix returns the route group of a manager, e.g. "/voip-game-manager".
func RoutePrefix(kind gamemanager.Kind) string {
	return "/" + string(kind) + "-game-manager"
}

// RegisterRoutes maps every manager's task endpoints onto r.
// Task submission runs behind the given middlewares (rate limiting).
func RegisterRoutes(r gin.IRouter, h Handler, submit ...gin.HandlerFunc) {
	execute := map[gamemanager.Kind]gin.HandlerFunc{
		gamemanager.KindVoIP:       h.ExecuteVoIP,
		gamemanager.KindVR:         h.ExecuteVR,
		gamemanager.KindIoT:        h.ExecuteIoT,
		gamemanager.KindGeospatial: h.ExecuteGeospatial,
	}

	for _, kind := range gamemanager.Kinds {
		chain := append(append([]gin.HandlerFunc{}, submit...), execute[kind])

		tasks := r.Group(RoutePrefix(kind) + "/tasks")
		{
			tasks.POST("", chain...)
			tasks.GET("", h.ListExecutions(kind))
		}
	}
}
