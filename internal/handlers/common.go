package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/models"
)

// currentClaims pulls the claims set by the auth middleware. It writes the
// error response itself, so callers just return on !ok.
func currentClaims(c *gin.Context) (*helpers.Claims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
		return nil, false
	}
	claims, ok := userClaims.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("invalid user claims"))
		return nil, false
	}
	return claims, true
}

func currentUserID(c *gin.Context) (uuid.UUID, *helpers.Claims, bool) {
	claims, ok := currentClaims(c)
	if !ok {
		return uuid.Nil, nil, false
	}
	userId, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid user ID in token"))
		return uuid.Nil, nil, false
	}
	return userId, claims, true
}

// parseIDParam reads a uuid path parameter. Ids are trimmed of spaces and
// surrounding quotes which may occur when clients pass values as JSON strings
// or templates.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, "\"'")
	if raw == "" {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse(name+" is required"))
		return uuid.Nil, false
	}

	parsedId, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid "+name+" format"))
		return uuid.Nil, false
	}
	return parsedId, true
}

func parsePagination(c *gin.Context) (offset, limit int, ok bool) {
	limitStr := c.DefaultQuery("limit", "10")
	offsetStr := c.DefaultQuery("offset", "0")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid limit parameter"))
		return 0, 0, false
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid offset parameter"))
		return 0, 0, false
	}
	return offset, limit, true
}

// statusFromError maps domain errors onto HTTP status codes so every handler
// reports the same failure the same way.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrInsufficientInventory),
		errors.Is(err, models.ErrTicketAlreadyScanned),
		errors.Is(err, models.ErrTicketTypeInUse),
		errors.Is(err, models.ErrOrderStatusConflict),
		errors.Is(err, models.ErrEventHasTickets):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotVerified):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
}
