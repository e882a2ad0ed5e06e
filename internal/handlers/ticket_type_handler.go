package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/models"
	"github.com/joshua-takyi/tixgate/internal/services"
)

func CreateTicketType(tt *services.TicketTypeService, e *services.EventService) gin.HandlerFunc {
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
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only manage ticket types for your own events"))
			return
		}

		var ticketType models.TicketType
		if err := c.ShouldBindJSON(&ticketType); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		created, err := tt.CreateTicketType(c.Request.Context(), eventId, &ticketType)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "ticket type created successfully"))
	}
}

func ListTicketTypesByEvent(tt *services.TicketTypeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		ticketTypes, err := tt.ListTicketTypesByEvent(c.Request.Context(), eventId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(ticketTypes, ""))
	}
}

func GetTicketType(tt *services.TicketTypeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketTypeId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		ticketType, err := tt.GetTicketType(c.Request.Context(), ticketTypeId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(ticketType, ""))
	}
}

func UpdateTicketType(tt *services.TicketTypeService, e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketTypeId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		ticketType, err := tt.GetTicketType(c.Request.Context(), ticketTypeId)
		if err != nil {
			respondError(c, err)
			return
		}
		event, err := e.GetEvent(c.Request.Context(), ticketType.EventId)
		if err != nil {
			respondError(c, err)
			return
		}
		if event.HostId != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only manage ticket types for your own events"))
			return
		}

		var input models.UpdateTicketTypeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		updated, err := tt.UpdateTicketType(c.Request.Context(), ticketTypeId, &input)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(updated, "ticket type updated successfully"))
	}
}

// DeleteTicketType refuses once any unit has been sold; the conflict comes
// back from the service layer.
func DeleteTicketType(tt *services.TicketTypeService, e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketTypeId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		ticketType, err := tt.GetTicketType(c.Request.Context(), ticketTypeId)
		if err != nil {
			respondError(c, err)
			return
		}
		event, err := e.GetEvent(c.Request.Context(), ticketType.EventId)
		if err != nil {
			respondError(c, err)
			return
		}
		if event.HostId != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only manage ticket types for your own events"))
			return
		}

		if err := tt.DeleteTicketType(c.Request.Context(), ticketTypeId); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "ticket type deleted successfully"))
	}
}
