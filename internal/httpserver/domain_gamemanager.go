package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	gmHTTP "game-manager/internal/gamemanager/delivery/http"
	gmRepo "game-manager/internal/gamemanager/repository/memory"
	gmUC "game-manager/internal/gamemanager/usecase"
	"game-manager/internal/middleware"
)

// setupGameManagerDomain initializes the game manager domain and registers its routes.
func (srv *HTTPServer) setupGameManagerDomain(ctx context.Context, r gin.IRouter, mw middleware.Middleware) error {
	// 1. Repository
	repo := gmRepo.New(srv.l, gmRepo.Options{
		Size: srv.historySize,
		TTL:  srv.historyTTL,
	})

	// 2. UseCase
	uc := gmUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := gmHTTP.New(srv.l, uc)

	// 4. Routes: POST and GET /{voip,vr,iot,geospatial}-game-manager/tasks
	gmHTTP.RegisterRoutes(r, h, mw.RateLimit())

	srv.l.Infof(ctx, "Game manager domain registered")
	return nil
}
