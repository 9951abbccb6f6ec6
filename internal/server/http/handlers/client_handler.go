package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/server/http/dto"
)

// ClientHandler exposes customer profile endpoints.
type ClientHandler struct {
	facade ClientFacade
}

// NewClientHandler creates ClientHandler instance.
func NewClientHandler(facade ClientFacade) *ClientHandler {
	return &ClientHandler{facade: facade}
}

// Create handles POST /api/clients. The profile is attached to the user named
// in the payload.
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	client, err := h.facade.CreateClient(c.Request.Context(), req.UserID, req.FullName, req.Contact, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, clientResponse(client))
}

// List handles GET /api/clients. An optional name query narrows the result.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.facade.Clients(c.Request.Context(), c.Query("name"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, clientResponse(&clients[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/clients/me.
func (h *ClientHandler) Me(c *gin.Context) {
	client, err := h.facade.ClientForUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, clientResponse(client))
}

// Get handles GET /api/clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	client, err := h.facade.Client(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, clientResponse(client))
}

// Update handles PUT /api/clients/:id.
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ClientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	client, err := h.facade.UpdateClient(c.Request.Context(), id, req.FullName, req.Contact, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, clientResponse(client))
}

// Delete handles DELETE /api/clients/:id.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteClient(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
