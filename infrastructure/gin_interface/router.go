package gin_interface

import (
	"github.com/Kubica-10/contador-historias-api/application/ports/outbound"
	"github.com/Kubica-10/contador-historias-api/infrastructure/gin_interface/controllers"
	"github.com/Kubica-10/contador-historias-api/middleware"
	"github.com/gin-gonic/gin"
)

type RouteRegistrar interface {
	RegisterRoutes(g *gin.Engine)
}

func NewRouter(logger outbound.LoggerPort, registrars ...RouteRegistrar) (*gin.Engine, error) {
	router := gin.New()

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	router.Use(
		gin.Recovery(),
		middleware.RequestLoggerMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	controllers.NewHealthController().RegisterRoutes(router)
	for _, registrar := range registrars {
		registrar.RegisterRoutes(router)
	}

	return router, nil
}
