package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/services"
)

func GetUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		targetId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		// Profiles are private to their owner; admins can read any.
		if targetId != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only view your own profile"))
			return
		}

		user, err := u.GetUser(c.Request.Context(), targetId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(user, ""))
	}
}

func UpdateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		targetId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		if targetId != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only update your own profile"))
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		user, err := u.UpdateUser(c.Request.Context(), targetId, fields)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(user, "profile updated successfully"))
	}
}

func DeleteUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, claims, ok := currentUserID(c)
		if !ok {
			return
		}

		targetId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		if targetId != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("you can only delete your own account"))
			return
		}

		if err := u.DeleteUser(c.Request.Context(), targetId); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "account deleted successfully"))
	}
}

// SetUserRole promotes or demotes an account. Admin only; enforced by the
// route group.
func SetUserRole(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var body struct {
			Role string `json:"role"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		user, err := u.SetRole(c.Request.Context(), targetId, body.Role)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(user, "role updated successfully"))
	}
}
