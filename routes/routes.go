package routes

import (
	"time"

	"dairy/handlers"
	"dairy/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterCustomerRoutes registers customer registry endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.Use(middleware.SessionMiddleware())
		api.GET("", hb.ListCustomersHandler)
		api.GET("/:shift", hb.GetRosterHandler)
		api.POST("", hb.CreateCustomerHandler)
		api.PUT("/:id", hb.UpdateCustomerHandler)
		api.DELETE("/:id", hb.DeleteCustomerHandler)
	}
}

// RegisterMilkRoutes registers raw entry endpoints.
func RegisterMilkRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/milk")
	{
		api.Use(middleware.SessionMiddleware())
		api.GET("/:shift", hb.ListEntriesHandler)
		api.POST("", hb.CreateEntryHandler)
		api.DELETE("/:id", hb.DeleteEntryHandler)
	}
}

// RegisterOverviewRoutes registers the monthly overview endpoints.
func RegisterOverviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/overview")
	{
		api.Use(middleware.SessionMiddleware())
		api.GET("", hb.GetOverviewHandler)
		api.POST("/add", hb.AddOverviewHandler)
		api.POST("/adjust", hb.AdjustOverviewHandler)
		api.GET("/export", hb.ExportOverviewHandler)
	}
}

// RegisterPaymentRoutes registers payment and reminder endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.SessionMiddleware())
		api.POST("", hb.SetPaymentHandler)
		api.GET("/reminder-times", hb.ReminderTimesHandler)
		api.POST("/save-reminder", hb.SaveReminderHandler)
		api.GET("/:shift", hb.ListPaymentsHandler)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.HeaderAccountID, middleware.HeaderShift},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCustomerRoutes(r, hb)
	RegisterMilkRoutes(r, hb)
	RegisterOverviewRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
