package handlers

import (
	"net/http"

	"findmylocal/models"
	"findmylocal/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Payments payment.PaymentService
	Logger   *zap.Logger
}

func NewPaymentHandler(payments payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Logger: logger}
}

// CreateOrder handles POST /api/order. Amount is in minor units.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.Logger, "CreateOrder", err)
		return
	}
	order, err := h.Payments.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Logger, "CreateOrder", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// PublishableKey handles GET /api/razorpay-key.
func (h *PaymentHandler) PublishableKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"key": h.Payments.PublishableKey()})
}
