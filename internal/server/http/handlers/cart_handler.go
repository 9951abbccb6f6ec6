package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/server/http/dto"
)

// CartHandler exposes shopping cart endpoints. Every operation is scoped to
// the client profile of the calling user.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.AddToCart(c.Request.Context(), CurrentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": item.ID, "productId": item.ProductID, "quantity": item.Quantity})
}

// List handles GET /api/cart.
func (h *CartHandler) List(c *gin.Context) {
	items, total, err := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartResponse(items, total))
}

// Update handles PATCH /api/cart/items/:id.
func (h *CartHandler) Update(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.CartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.UpdateCartItem(c.Request.Context(), CurrentUserID(c), itemID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": item.ID, "productId": item.ProductID, "quantity": item.Quantity})
}

// Remove handles DELETE /api/cart/items/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RemoveCartItem(c.Request.Context(), CurrentUserID(c), itemID); err != nil {
		h.respondCartError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context(), CurrentUserID(c)); err != nil {
		h.respondCartError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
