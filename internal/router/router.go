package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/uptc-deportes/reservas-api/internal/handler"
	"github.com/uptc-deportes/reservas-api/internal/identity"
	"github.com/uptc-deportes/reservas-api/internal/middleware"
	"github.com/uptc-deportes/reservas-api/internal/models"
	"github.com/uptc-deportes/reservas-api/internal/service"
	"github.com/uptc-deportes/reservas-api/pkg/config"
	"github.com/uptc-deportes/reservas-api/pkg/logger"
	corsmiddleware "github.com/uptc-deportes/reservas-api/pkg/middleware/cors"
	reqidmiddleware "github.com/uptc-deportes/reservas-api/pkg/middleware/requestid"
)

// Deps bundles the collaborators the router wires into routes.
type Deps struct {
	Verifier *identity.Verifier
	Profiles *service.ProfileService
	Metrics  *service.MetricsService

	Venues       *handler.VenueHandler
	Reservations *handler.ReservationHandler
	ProfilesAPI  *handler.ProfileHandler
	Audit        *handler.AuditHandler
}

// New builds the gin engine with the complete route table. Public catalogue
// reads need no token; everything else goes through the identity middleware
// and, where required, the role check.
func New(cfg *config.Config, logr *zap.Logger, deps Deps) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	healthcheck := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	// Load balancers probe the root path; clients use the prefixed one.
	r.GET("/health", healthcheck)
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := middleware.Auth(deps.Verifier, deps.Profiles)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	api := r.Group(cfg.APIPrefix)
	api.GET("/health", healthcheck)

	// Public catalogue and availability reads.
	api.GET("/escenarios", deps.Venues.List)
	api.GET("/escenarios/:id", deps.Venues.Get)
	api.GET("/escenarios/:id/disponibilidad", deps.Venues.Availability)
	api.GET("/escenarios/:id/horarios", deps.Venues.ListSchedules)
	api.GET("/escenarios/:id/bloqueos", deps.Venues.ListBlackouts)

	// Signed token carries its own authorisation.
	api.GET("/reservas/comprobantes/descarga", deps.Reservations.DownloadProof)

	authed := api.Group("")
	authed.Use(auth)
	{
		authed.POST("/reservas", deps.Reservations.Create)
		authed.GET("/reservas", deps.Reservations.List)
		authed.GET("/reservas/:id", deps.Reservations.Get)
		authed.POST("/reservas/:id/comprobante", deps.Reservations.UploadProof)
		authed.GET("/reservas/:id/comprobante", deps.Reservations.ProofLink)
		authed.GET("/perfiles/me", deps.ProfilesAPI.Me)
	}

	admin := api.Group("")
	admin.Use(auth, adminOnly)
	{
		admin.POST("/escenarios", deps.Venues.Create)
		admin.PUT("/escenarios/:id", deps.Venues.Update)
		admin.PATCH("/escenarios/:id/estado", deps.Venues.ChangeStatus)
		admin.DELETE("/escenarios/:id", deps.Venues.Delete)
		admin.POST("/escenarios/:id/horarios", deps.Venues.CreateSchedule)
		admin.DELETE("/escenarios/:id/horarios/:horarioId", deps.Venues.DeleteSchedule)
		admin.POST("/escenarios/:id/bloqueos", deps.Venues.CreateBlackout)
		admin.DELETE("/escenarios/:id/bloqueos/:bloqueoId", deps.Venues.DeleteBlackout)

		admin.PATCH("/reservas/:id/estado", deps.Reservations.ChangeStatus)
		admin.POST("/reservas/:id/validar-entrada", deps.Reservations.ValidateEntry)
		admin.GET("/reservas/export", deps.Reservations.Export)

		admin.GET("/perfiles", deps.ProfilesAPI.List)
		admin.GET("/admin/metrics", deps.ProfilesAPI.SystemMetrics)
		admin.GET("/admin/auditoria", deps.Audit.Recent)
	}

	return r
}
