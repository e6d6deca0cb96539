package transport

import (
	"time"

	"github.com/ds124wfegd/eventease/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Booking *BookingHandler
	Contact *ContactHandler
	Health  *HealthHandler
	Static  *StaticHandler
}

func InitRoutes(h Handlers, requestTimeout time.Duration) *gin.Engine {

	router := gin.New()
	// "/api/bookings/" is a file lookup, not a redirect
	router.RedirectTrailingSlash = false

	// Middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.Timeout(requestTimeout))

	router.GET("/", h.Static.ServeIndex)
	router.HEAD("/", h.Static.ServeIndex)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/health", h.Health.Health)

		bookings := api.Group("/bookings")
		{
			bookings.GET("", h.Booking.GetBookings)
			bookings.POST("", h.Booking.CreateBooking)
			bookings.DELETE("/:id", h.Booking.DeleteBooking)
		}

		contacts := api.Group("/contacts")
		{
			contacts.GET("", h.Contact.GetContacts)
			contacts.POST("", h.Contact.CreateContact)
		}
	}

	// Everything else is a static file
	router.NoRoute(h.Static.ServeFile)

	return router
}
