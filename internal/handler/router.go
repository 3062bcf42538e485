package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"workspace-rental/internal/handler/api"
	"workspace-rental/internal/handler/middleware"
	"workspace-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, workspaceHandler *api.WorkspaceHandler, equipmentHandler *api.EquipmentHandler, rentalHandler *api.RentalHandler, ledgerHandler *api.LedgerHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, workspaceHandler, equipmentHandler, rentalHandler, ledgerHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, workspaceHandler *api.WorkspaceHandler, equipmentHandler *api.EquipmentHandler, rentalHandler *api.RentalHandler, ledgerHandler *api.LedgerHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		workspaces := apiGroup.Group("/workspaces")
		{
			addRoutes(workspaces, []route{
				{Method: http.MethodPost, Path: "", Handler: workspaceHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: workspaceHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: workspaceHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: workspaceHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: workspaceHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/rent", Handler: rentalHandler.RentNow},
				{Method: http.MethodPost, Path: "/:id/rent-time-slot", Handler: rentalHandler.RentTimeSlot},
				{Method: http.MethodPost, Path: "/:id/release", Handler: rentalHandler.Release},
			})
		}

		equipmentGroup := apiGroup.Group("/equipment")
		{
			addRoutes(equipmentGroup, []route{
				{Method: http.MethodPost, Path: "", Handler: equipmentHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: equipmentHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: equipmentHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: equipmentHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: equipmentHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/release", Handler: equipmentHandler.Release},
			})
		}

		paymentRecords := apiGroup.Group("/payment-records")
		{
			addRoutes(paymentRecords, []route{
				{Method: http.MethodGet, Path: "", Handler: ledgerHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: ledgerHandler.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
