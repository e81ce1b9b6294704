package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kaikari-xpress/internal/geocode"
)

func reverseGeocodeHandler(geocoder geocode.Reverser) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, err := strconv.ParseFloat(c.Query("lat"), 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "lat must be a number")
			return
		}
		lon, err := strconv.ParseFloat(c.Query("lon"), 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "lon must be a number")
			return
		}
		address, err := geocoder.Reverse(c.Request.Context(), lat, lon)
		if err != nil {
			respondError(c, http.StatusBadGateway, "reverse geocoding failed")
			return
		}
		c.JSON(http.StatusOK, address)
	}
}
