package transport

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ds124wfegd/eventease/internal/entity"
	"github.com/ds124wfegd/eventease/internal/service"
	"github.com/ds124wfegd/eventease/internal/transport/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
)

type BookingHandler struct {
	service *service.BookingService
}

func NewBookingHandler(service *service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type ContactHandler struct {
	service *service.ContactService
}

func NewContactHandler(service *service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type HealthHandler struct {
	service *service.HealthService
}

func NewHealthHandler(service *service.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

// bindJSON decodes the body only when it is declared as JSON
// (application/json or application/*+json).
func bindJSON(c *gin.Context, obj interface{}) bool {
	contentType := strings.ToLower(c.ContentType())
	isJSON := contentType == binding.MIMEJSON ||
		(strings.HasPrefix(contentType, "application/") && strings.HasSuffix(contentType, "+json"))
	if !isJSON {
		return false
	}
	return c.ShouldBindJSON(obj) == nil
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// errorResponse maps domain errors onto the public error bodies.
func errorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
	case errors.Is(err, entity.ErrNotFound):
		notFound(c)
	default:
		logrus.WithError(err).WithField("request_id", c.GetString(middleware.RequestIDKey)).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
