package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/models"
	"github.com/joshua-takyi/tixgate/internal/services"
)

// CreateOrder places an order for the authenticated user. Inventory is
// reserved atomically; a sold-out line fails the whole order with a conflict.
func CreateOrder(o *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _, ok := currentUserID(c)
		if !ok {
			return
		}

		var input models.CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		order, err := o.CreateOrder(c.Request.Context(), userId, &input)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(order, "order placed successfully"))
	}
}

func GetOrder(o *services.OrderService) gin.HandlerFunc {
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
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only view your own orders"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(order, ""))
	}
}

func ListMyOrders(o *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		userId, _, ok := currentUserID(c)
		if !ok {
			return
		}

		orders, total, err := o.ListOrdersByUser(c.Request.Context(), userId, offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(orders, page, limit, total))
	}
}

// CancelOrder abandons an order that has not been paid yet.
func CancelOrder(o *services.OrderService) gin.HandlerFunc {
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
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only cancel your own orders"))
			return
		}

		if err := o.CancelOrder(c.Request.Context(), orderId); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "order cancelled"))
	}
}
