package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/services"
)

// EventSalesReport returns per-ticket-type sales, revenue and attendance for
// one event. Hosts see their own events; admins see any.
func EventSalesReport(a *services.AnalyticsService, e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		event, err := e.GetEvent(c.Request.Context(), eventId)
		if err != nil {
			respondError(c, err)
			return
		}
		if event.HostId != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only view reports for your own events"))
			return
		}

		report, err := a.EventSalesReport(c.Request.Context(), eventId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(report, ""))
	}
}

// PlatformSummary is the admin-wide dashboard snapshot; enforced by the route
// group.
func PlatformSummary(a *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := a.Summary(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(summary, ""))
	}
}
