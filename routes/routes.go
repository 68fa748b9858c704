package routes

import (
	"net/http"
	"time"

	"findmylocal/handlers"
	"findmylocal/middleware"
	"findmylocal/models"
	"findmylocal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options carries the cross-cutting dependencies of the router.
type Options struct {
	Metrics        *utils.MetricsManager
	RequestsPerMin int
	Logger         *zap.Logger
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm FindMyLocal",
			"backends": utils.GetHealthStatus(),
		})
	})
}

// RegisterServiceRoutes registers the public catalog. The client id is optional
// here; when present, searches are remembered for that client.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.Use(middleware.OptionalClientID())
		api.GET("", hb.Services.ListServices)
		api.GET("/facets", hb.Services.GetFacets)
		api.GET("/:id", hb.Services.GetService)
	}
}

// RegisterClientRoutes registers every endpoint scoped to one browser profile.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.ClientIDMiddleware())

	comparison := api.Group("/comparison")
	{
		comparison.GET("", hb.Comparison.List)
		comparison.POST("", hb.Comparison.Add)
		comparison.DELETE("", hb.Comparison.Clear)
		comparison.DELETE("/:id", hb.Comparison.Remove)
	}

	bookings := api.Group("/bookings")
	{
		bookings.GET("", hb.Bookings.List)
		bookings.POST("", hb.Bookings.Create)
		bookings.DELETE("/:id", hb.Bookings.Cancel)
	}

	ratings := api.Group("/ratings")
	{
		ratings.GET("", hb.Ratings.List)
		ratings.POST("", hb.Ratings.Submit)
	}

	favorites := api.Group("/favorites")
	{
		favorites.GET("", hb.Users.ListFavorites)
		favorites.POST("", hb.Users.AddFavorite)
		favorites.DELETE("/:id", hb.Users.RemoveFavorite)
	}

	api.GET("/preferences", hb.Users.GetPreferences)
	api.PUT("/preferences", hb.Users.UpdatePreferences)

	api.GET("/searches/recent", hb.Users.RecentSearches)
	api.DELETE("/searches/recent", hb.Users.ClearRecentSearches)

	api.GET("/storage/events", hb.StorageEvents.Stream)
}

// RegisterAuthRoutes registers the sign-in flows. Session state is stored per client.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/send-otp", hb.Auth.SendOTP)

		client := api.Group("")
		client.Use(middleware.ClientIDMiddleware())
		client.POST("/verify-otp", hb.Auth.VerifyOTP)
		client.POST("/admin", hb.Auth.AdminLogin)
		client.GET("/session", hb.Auth.GetSession)
		client.DELETE("/session", hb.Auth.Logout)
	}
}

// RegisterPaymentRoutes registers order creation and the checkout key.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/order", hb.Payments.CreateOrder)
		api.GET("/razorpay-key", hb.Payments.PublishableKey)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/services", hb.Admin.ListServices)
		adminGroup.PATCH("/services/:id/status", hb.Admin.UpdateStatus)
		adminGroup.POST("/services/:id/verify", hb.Admin.VerifyService)
		adminGroup.DELETE("/services/:id", hb.Admin.DeleteService)
	}
}

// RegisterProviderRoutes exposes the dashboard of the provider named by the token.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	providerGroup := r.Group("/api/provider")
	{
		providerGroup.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleProvider))
		providerGroup.GET("/bookings", hb.Provider.Dashboard)
		providerGroup.PATCH("/bookings/:id/status", hb.Provider.UpdateStatus)
		providerGroup.GET("/slots", hb.Provider.Slots)
		providerGroup.POST("/slots", hb.Provider.AddSlot)
		providerGroup.DELETE("/slots/:time", hb.Provider.RemoveSlot)
		providerGroup.GET("/blocked-dates", hb.Provider.BlockedDates)
		providerGroup.POST("/blocked-dates", hb.Provider.AddBlockedDate)
		providerGroup.DELETE("/blocked-dates/:date", hb.Provider.RemoveBlockedDate)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r.Use(utils.ErrorHandler())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.ClientIDHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.GET("/metrics", opts.Metrics.Handler())
	}
	r.Use(middleware.RateLimitMiddleware(opts.RequestsPerMin, logger))

	RegisterHealthRoute(r)
	RegisterServiceRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
}
