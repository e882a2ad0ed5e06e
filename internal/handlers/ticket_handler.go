package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/services"
)

func GetTicket(t *services.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		ticket, err := t.GetTicket(c.Request.Context(), ticketId)
		if err != nil {
			respondError(c, err)
			return
		}
		// Hosts scan tickets they don't own, so host and admin may read any.
		if ticket.UserId != userId && !claims.IsAdmin() && !claims.IsHost() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only view your own tickets"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(ticket, ""))
	}
}

// GetTicketByCode looks a ticket up by its printed code, for gate staff.
func GetTicketByCode(t *services.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("ticket code is required"))
			return
		}

		ticket, err := t.GetTicketByCode(c.Request.Context(), code)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(ticket, ""))
	}
}

func ListMyTickets(t *services.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		userId, _, ok := currentUserID(c)
		if !ok {
			return
		}

		tickets, total, err := t.ListTicketsByUser(c.Request.Context(), userId, offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(tickets, page, limit, total))
	}
}

// ScanTicket admits a ticket at the gate. A second scan of the same ticket
// returns a conflict.
func ScanTicket(t *services.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		scannerId, _, ok := currentUserID(c)
		if !ok {
			return
		}

		ticket, err := t.ScanTicket(c.Request.Context(), ticketId, scannerId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(ticket, "ticket scanned successfully"))
	}
}
