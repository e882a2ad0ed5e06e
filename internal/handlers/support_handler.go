package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/models"
	"github.com/joshua-takyi/tixgate/internal/services"
)

func CreateSupportTicket(s *services.SupportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _, ok := currentUserID(c)
		if !ok {
			return
		}

		var ticket models.SupportTicket
		if err := c.ShouldBindJSON(&ticket); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		created, err := s.CreateSupportTicket(c.Request.Context(), &ticket, userId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "support ticket created successfully"))
	}
}

func GetSupportTicket(s *services.SupportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		ticket, err := s.GetSupportTicket(c.Request.Context(), ticketId)
		if err != nil {
			respondError(c, err)
			return
		}
		if ticket.UserId != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only view your own support tickets"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(ticket, ""))
	}
}

// ListSupportTickets returns the caller's own tickets; admins see everyone's.
func ListSupportTickets(s *services.SupportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}
		if claims.IsAdmin() {
			userId = uuid.Nil
		}

		tickets, total, err := s.ListSupportTickets(c.Request.Context(), userId, offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(tickets, page, limit, total))
	}
}

// UpdateSupportTicket is the admin answer-and-resolve operation; enforced by
// the route group.
func UpdateSupportTicket(s *services.SupportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var input models.UpdateSupportTicketInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		updated, err := s.UpdateSupportTicket(c.Request.Context(), ticketId, &input)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(updated, "support ticket updated successfully"))
	}
}

func DeleteSupportTicket(s *services.SupportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		ticket, err := s.GetSupportTicket(c.Request.Context(), ticketId)
		if err != nil {
			respondError(c, err)
			return
		}
		if ticket.UserId != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only delete your own support tickets"))
			return
		}

		if err := s.DeleteSupportTicket(c.Request.Context(), ticketId); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "support ticket deleted successfully"))
	}
}
