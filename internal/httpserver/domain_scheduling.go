package httpserver

import (
	"context"

	"later-reminder/internal/middleware"
	schedHTTP "later-reminder/internal/scheduling/delivery/http"
	gcalRepo "later-reminder/internal/scheduling/repository/gcal"
	remindRepo "later-reminder/internal/scheduling/repository/remind"
	"later-reminder/internal/scheduling/usecase"

	"github.com/gin-gonic/gin"
)

// setupSchedulingDomain initializes the scheduling domain and registers
// its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.client, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg.Group("/myresource"), h, mw)
func (srv HTTPServer) setupSchedulingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	calRepo := gcalRepo.New(srv.l, srv.calendarClient, srv.cal)
	remRepo := remindRepo.New(srv.l, srv.remindClient)

	// 2. UseCase
	uc := usecase.New(srv.l, calRepo, remRepo, srv.profiles, srv.cal, srv.schedConfig)

	// 3. HTTP Handler
	h := schedHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/schedule/{plan,apply}
	schedHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Scheduling domain registered")
	return nil
}
