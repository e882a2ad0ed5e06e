package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/services"
)

func AddToFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		userId, _, ok := currentUserID(c)
		if !ok {
			return
		}

		favourite, err := f.AddToFavourites(c.Request.Context(), userId, eventId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(favourite, "event added to favourites"))
	}
}

func RemoveFromFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		userId, _, ok := currentUserID(c)
		if !ok {
			return
		}

		if err := f.RemoveFromFavourites(c.Request.Context(), userId, eventId); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "event removed from favourites"))
	}
}

func ListFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _, ok := currentUserID(c)
		if !ok {
			return
		}

		favourites, err := f.GetFavouritesByUserID(c.Request.Context(), userId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(favourites, ""))
	}
}
