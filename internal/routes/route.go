package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tixgate/internal/config"
	"github.com/joshua-takyi/tixgate/internal/container"
	"github.com/joshua-takyi/tixgate/internal/handlers"
	"github.com/joshua-takyi/tixgate/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container, cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(middleware.Metrics())
	r.Use(gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "tixgate-api",
			})
		})

		// public routes
		v1.POST("/register", handlers.Register(c.UserService))
		v1.POST("/login", handlers.Login(c.UserService))
		v1.POST("/verify", handlers.Verify(c.UserService))
		v1.POST("/logout", handlers.Logout())

		// the event catalogue is browsable without an account
		v1.GET("/venues", handlers.ListVenues(c.VenueService))
		v1.GET("/venues/:id", handlers.ListVenueByID(c.VenueService))
		v1.GET("/events", handlers.ListEvents(c.EventService))
		v1.GET("/events/:id", handlers.GetEvent(c.EventService))
		v1.GET("/events/:id/ticket-types", handlers.ListTicketTypesByEvent(c.TicketTypeService))
		v1.GET("/ticket-types/:id", handlers.GetTicketType(c.TicketTypeService))

		// Stripe calls this; authentication is the signature header
		v1.POST("/payments/webhook", handlers.StripeWebhook(c.PaymentService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(c.Logger))

	userRoutes := protected.Group("/users")
	{
		userRoutes.GET("/:id", handlers.GetUser(c.UserService))
		userRoutes.PATCH("/:id", handlers.UpdateUser(c.UserService))
		userRoutes.DELETE("/:id", handlers.DeleteUser(c.UserService))
	}

	orderRoutes := protected.Group("/orders")
	{
		orderRoutes.POST("/", handlers.CreateOrder(c.OrderService))
		orderRoutes.GET("/", handlers.ListMyOrders(c.OrderService))
		orderRoutes.GET("/:id", handlers.GetOrder(c.OrderService))
		orderRoutes.POST("/:id/cancel", handlers.CancelOrder(c.OrderService))
		orderRoutes.POST("/:id/payment-intent", handlers.CreatePaymentIntent(c.PaymentService, c.OrderService))
	}

	protected.GET("/payments/:id", handlers.GetPayment(c.PaymentService, c.OrderService))

	ticketRoutes := protected.Group("/tickets")
	{
		ticketRoutes.GET("/", handlers.ListMyTickets(c.TicketService))
		ticketRoutes.GET("/:id", handlers.GetTicket(c.TicketService))
	}

	favouriteRoutes := protected.Group("/")
	{
		favouriteRoutes.POST("/events/:id/favourite", handlers.AddToFavourites(c.FavouritesService))
		favouriteRoutes.DELETE("/events/:id/favourite", handlers.RemoveFromFavourites(c.FavouritesService))
		favouriteRoutes.GET("/favourites", handlers.ListFavourites(c.FavouritesService))
	}

	supportRoutes := protected.Group("/support")
	{
		supportRoutes.POST("/", handlers.CreateSupportTicket(c.SupportService))
		supportRoutes.GET("/", handlers.ListSupportTickets(c.SupportService))
		supportRoutes.GET("/:id", handlers.GetSupportTicket(c.SupportService))
		supportRoutes.DELETE("/:id", handlers.DeleteSupportTicket(c.SupportService))
	}

	// hosts manage their venues, events and the entry gate
	hostRoutes := protected.Group("/")
	hostRoutes.Use(middleware.RequireRole("host"))
	{
		hostRoutes.POST("/venues", handlers.CreateVenue(c.VenueService))
		hostRoutes.PATCH("/venues/:id", handlers.UpdateVenue(c.VenueService))
		hostRoutes.DELETE("/venues/:id", handlers.DeleteVenue(c.VenueService))
		hostRoutes.GET("/venues/host-venues/:host_id", handlers.ListVenuesByHost(c.VenueService))

		hostRoutes.POST("/events", handlers.CreateEvent(c.EventService))
		hostRoutes.PATCH("/events/:id", handlers.UpdateEvent(c.EventService))
		hostRoutes.DELETE("/events/:id", handlers.DeleteEvent(c.EventService))

		hostRoutes.POST("/events/:id/ticket-types", handlers.CreateTicketType(c.TicketTypeService, c.EventService))
		hostRoutes.PATCH("/ticket-types/:id", handlers.UpdateTicketType(c.TicketTypeService, c.EventService))
		hostRoutes.DELETE("/ticket-types/:id", handlers.DeleteTicketType(c.TicketTypeService, c.EventService))

		hostRoutes.GET("/tickets/code/:code", handlers.GetTicketByCode(c.TicketService))
		hostRoutes.POST("/tickets/:id/scan", handlers.ScanTicket(c.TicketService))

		hostRoutes.GET("/events/:id/report", handlers.EventSalesReport(c.AnalyticsService, c.EventService))
	}

	adminRoutes := protected.Group("/")
	adminRoutes.Use(middleware.RequireRole("admin"))
	{
		adminRoutes.PATCH("/users/:id/role", handlers.SetUserRole(c.UserService))
		adminRoutes.PATCH("/support/:id", handlers.UpdateSupportTicket(c.SupportService))
		adminRoutes.GET("/analytics/summary", handlers.PlatformSummary(c.AnalyticsService))
	}

	return r
}
