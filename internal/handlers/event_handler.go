package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/models"
	"github.com/joshua-takyi/tixgate/internal/services"
)

func CreateEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _, ok := currentUserID(c)
		if !ok {
			return
		}

		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		createdEvent, err := e.CreateEvent(c.Request.Context(), &event, userId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(createdEvent, "event created successfully"))
	}
}

func ListEvents(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		var filter models.EventFilter
		if raw := c.Query("venue_id"); raw != "" {
			venueId, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid venue_id parameter"))
				return
			}
			filter.VenueId = venueId
		}
		filter.Category = c.Query("category")

		events, total, err := e.ListEvents(c.Request.Context(), filter, offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(events, page, limit, total))
	}
}

func GetEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		event, err := e.GetEvent(c.Request.Context(), eventId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(event, ""))
	}
}

func UpdateEvent(e *services.EventService) gin.HandlerFunc {
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
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only update your own events"))
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		updated, err := e.UpdateEvent(c.Request.Context(), eventId, fields)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(updated, "event updated successfully"))
	}
}

func DeleteEvent(e *services.EventService) gin.HandlerFunc {
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
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only delete your own events"))
			return
		}

		if err := e.DeleteEvent(c.Request.Context(), eventId); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "event deleted successfully"))
	}
}
