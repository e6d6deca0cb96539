package transport

import (
	"net/http"

	"github.com/ds124wfegd/eventease/internal/entity"
	"github.com/gin-gonic/gin"
)

func (h *ContactHandler) GetContacts(c *gin.Context) {
	contacts, err := h.service.GetAllContacts(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req entity.CreateContactRequest
	if !bindJSON(c, &req) {
		req = entity.CreateContactRequest{}
	}

	contact, err := h.service.CreateContact(c.Request.Context(), &req)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}
