package handlers

import (
	"net/http"

	"docportal/models"
	"docportal/services/payment"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment-intent creation and payment recording.
type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(service payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	secret, err := h.Service.CreateIntent(req.Price)
	if err != nil {
		utils.GetLogger().Error("payment intent creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create payment intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.PaymentIntentResponse{ClientSecret: secret})
}

type recordPaymentRequest struct {
	BookingID     string  `json:"bookingId" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	TransactionID string  `json:"transactionId" binding:"required"`
}

// RecordPayment handles POST /payments: stores the payment and marks the
// booking paid.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recorded, err := h.Service.Record(&models.Payment{
		BookingID:     req.BookingID,
		Email:         req.Email,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		utils.GetLogger().Error("failed to record payment",
			zap.String("bookingID", req.BookingID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record payment", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "payment": recorded})
}
