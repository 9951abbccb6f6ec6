package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
	"github.com/shopworks/storefront/internal/server/http/dto"
)

// OrderHandler exposes order placement and lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	lines := make([]repository.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, repository.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), lines)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, orderResponse(order))
}

// Checkout handles POST /api/cart/checkout, placing an order from the
// current cart.
func (h *OrderHandler) Checkout(c *gin.Context) {
	order, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, orderResponse(order))
}

// List handles GET /api/orders. Admins see every order, clients only their
// own.
func (h *OrderHandler) List(c *gin.Context) {
	var (
		orders []model.Order
		err    error
	)
	if IsAdmin(c) {
		orders, err = h.facade.Orders(c.Request.Context())
	} else {
		orders, err = h.facade.OrdersForUser(c.Request.Context(), CurrentUserID(c))
	}
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, orderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var (
		order *model.Order
		err   error
	)
	if IsAdmin(c) {
		order, err = h.facade.Order(c.Request.Context(), id)
	} else {
		order, err = h.facade.OrderForUser(c.Request.Context(), CurrentUserID(c), id)
	}
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderResponse(order))
}

// ConfirmPayment handles POST /api/orders/:id/payment.
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.ConfirmPayment(c.Request.Context(), id, model.PaymentStatus(req.Status))
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderResponse(order))
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderResponse(order))
}

// Cancel handles POST /api/orders/:id/cancel. Admins may cancel any order,
// clients only their own.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var (
		order *model.Order
		err   error
	)
	if IsAdmin(c) {
		order, err = h.facade.CancelOrder(c.Request.Context(), id)
	} else {
		order, err = h.facade.CancelOwnOrder(c.Request.Context(), CurrentUserID(c), id)
	}
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderResponse(order))
}

func (h *OrderHandler) respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
