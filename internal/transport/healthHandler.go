package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Check())
}
