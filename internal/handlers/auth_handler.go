package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/models"
	"github.com/joshua-takyi/tixgate/internal/services"
)

// Register creates a new account. The account stays unverified until the
// emailed token is redeemed through Verify.
func Register(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		created, err := u.CreateUser(c.Request.Context(), &user)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created.Sanitize(), "account created, verification required"))
	}
}

// Login authenticates credentials and sets the access_token cookie. The token
// is also returned in the body for non-browser clients.
func Login(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds models.Credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		user, token, err := u.AuthenticateUser(c.Request.Context(), creds.Email, creds.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"
		c.SetCookie("access_token", token, 60*60*24, "/", "", isProduction, true)

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{
			"user":  user,
			"token": token,
		}, "logged in successfully"))
	}
}

func Verify(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.VerifyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}
		if err := models.Validate.Struct(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		if err := u.VerifyUser(c.Request.Context(), input.Email, input.Token); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "account verified"))
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"
		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "logged out successfully"))
	}
}
