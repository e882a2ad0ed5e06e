package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/services"
)

// CreatePaymentIntent opens a Stripe PaymentIntent for one of the caller's
// pending orders and returns the client secret for the frontend to confirm.
func CreatePaymentIntent(p *services.PaymentService, o *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		order, err := o.GetOrder(c.Request.Context(), orderId)
		if err != nil {
			respondError(c, err)
			return
		}
		if order.UserId != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only pay for your own orders"))
			return
		}

		result, err := p.CreatePaymentIntent(c.Request.Context(), orderId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(result, "payment intent created"))
	}
}

func GetPayment(p *services.PaymentService, o *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		paymentId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		payment, err := p.GetPayment(c.Request.Context(), paymentId)
		if err != nil {
			respondError(c, err)
			return
		}

		// Ownership lives on the paid-for order.
		order, err := o.GetOrder(c.Request.Context(), payment.OrderId)
		if err != nil {
			respondError(c, err)
			return
		}
		if order.UserId != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only view your own payments"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(payment, ""))
	}
}

// StripeWebhook receives payment events from Stripe. The signature header is
// verified before anything is applied, so the route stays unauthenticated.
func StripeWebhook(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const maxBodyBytes = int64(65536)
		payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("failed to read request body"))
			return
		}

		sigHeader := c.GetHeader("Stripe-Signature")
		if err := p.HandleWebhook(c.Request.Context(), payload, sigHeader); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "received"))
	}
}
