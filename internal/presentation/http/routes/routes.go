package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alhuzaifa/tailor-api/internal/config"
	"github.com/alhuzaifa/tailor-api/internal/presentation/http/handler"
	"github.com/alhuzaifa/tailor-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Bill       *handler.BillHandler
	Worker     *handler.WorkerHandler
	Alteration *handler.AlterationHandler
	Customer   *handler.CustomerHandler
	Sample     *handler.SampleHandler
	Dashboard  *handler.DashboardHandler
	Stream     *handler.StreamHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerBillRoutes(v1, h)
		registerWorkerRoutes(v1, h)
		registerAlterationRoutes(v1, h)
		registerCustomerRoutes(v1, h)
		registerSampleRoutes(v1, h)
		registerDashboardRoutes(v1, h)
	}

	return router
}

func registerBillRoutes(v1 *gin.RouterGroup, h *Handlers) {
	bills := v1.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		bills.POST("", h.Bill.Create)
		bills.POST("/draft-totals", h.Bill.DraftTotals)
		bills.GET("/stream", h.Stream.Stream)
		bills.GET("/by-no/:billNo", h.Bill.GetByBillNo)
		bills.GET("/:id", h.Bill.Get)
		bills.PATCH("/:id", h.Bill.Update)
		bills.DELETE("/:id", h.Bill.Delete)
		bills.POST("/:id/assign", h.Bill.Assign)
		bills.POST("/:id/favourite", h.Bill.Favourite)
		bills.GET("/:id/share-links", h.Bill.ShareLinks)
	}

	items := v1.Group("/bill-items")
	{
		items.PATCH("/:itemId", h.Bill.UpdateItem)
	}
}

func registerWorkerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	workers := v1.Group("/workers")
	{
		workers.GET("", h.Worker.List)
		workers.POST("", h.Worker.Create)
		workers.GET("/:id", h.Worker.Get)
		workers.PATCH("/:id", h.Worker.Update)
		workers.DELETE("/:id", h.Worker.Delete)
		workers.GET("/:id/ledger", h.Worker.Ledger)
		workers.POST("/:id/manual-items", h.Worker.AddManualItem)
		workers.GET("/:id/tasks-link", h.Worker.TasksLink)
	}

	manual := v1.Group("/manual-items")
	{
		manual.PATCH("/:itemId", h.Worker.UpdateManualItem)
		manual.DELETE("/:itemId", h.Worker.DeleteManualItem)
	}

	v1.POST("/bill-items/:itemId/unassign", h.Worker.UnassignItem)
}

func registerAlterationRoutes(v1 *gin.RouterGroup, h *Handlers) {
	alterations := v1.Group("/alterations")
	{
		alterations.GET("", h.Alteration.List)
		alterations.POST("", h.Alteration.Create)
		alterations.PATCH("/:id", h.Alteration.Update)
		alterations.DELETE("/:id", h.Alteration.Delete)
		alterations.GET("/:id/ready-link", h.Alteration.ReadyLink)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	favourites := v1.Group("/favourites")
	{
		favourites.GET("", h.Customer.List)
		favourites.POST("", h.Customer.Add)
		favourites.GET("/:mobile", h.Customer.Get)
		favourites.DELETE("/:mobile", h.Customer.Remove)
		favourites.GET("/:mobile/bills", h.Customer.Bills)
		favourites.GET("/:mobile/profiles", h.Customer.ListProfiles)
		favourites.POST("/:mobile/profiles", h.Customer.AddProfile)
	}

	profiles := v1.Group("/measurement-profiles")
	{
		profiles.PATCH("/:profileId", h.Customer.UpdateProfile)
		profiles.DELETE("/:profileId", h.Customer.DeleteProfile)
	}
}

func registerSampleRoutes(v1 *gin.RouterGroup, h *Handlers) {
	samples := v1.Group("/samples")
	{
		samples.GET("", h.Sample.List)
		samples.POST("", h.Sample.Create)
		samples.PATCH("/:id", h.Sample.Update)
		samples.DELETE("/:id", h.Sample.Delete)
		samples.GET("/:id/share-link", h.Sample.ShareLink)
	}
}

func registerDashboardRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/dashboard", h.Dashboard.Stats)
}
