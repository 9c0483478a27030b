package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "item-store-api/internal/item/delivery/http"
	itemRepo "item-store-api/internal/item/repository/cosmos"
	itemUC "item-store-api/internal/item/usecase"
)

// setupItemDomain wires repository → usecase → handler for items and registers /items routes.
func (srv HTTPServer) setupItemDomain(ctx context.Context, rg *gin.RouterGroup) error {
	// 1. Repository
	repo := itemRepo.New(srv.container, srv.l)

	// 2. UseCase
	uc := itemUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 4. Routes: registers /items
	itemHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
