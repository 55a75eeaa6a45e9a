package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ostrikov/airbooking/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights", h.search)
	router.GET("/destinations/popular", h.popularDestinations)
	router.GET("/routes/top-rated", h.topRated)
}

func (h *FlightHandler) search(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "destination is required"})
		return
	}

	// Without an origin the listing is ordered by duration, matching the
	// "flights to destination" view.
	if origin == "" {
		list, err := h.service.ByDestination(c.Request.Context(), destination)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	list, err := h.service.Search(c.Request.Context(), origin, destination)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FlightHandler) popularDestinations(c *gin.Context) {
	counts, err := h.service.PopularDestinations(c.Request.Context(), parseK(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *FlightHandler) topRated(c *gin.Context) {
	routes, err := h.service.TopRated(c.Request.Context(), parseK(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

func parseK(c *gin.Context) int {
	k, err := strconv.Atoi(c.DefaultQuery("k", "0"))
	if err != nil {
		return 0
	}
	return k
}
