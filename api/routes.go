package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ostrikov/airbooking/internal/domain"
	"github.com/ostrikov/airbooking/internal/service/routes"
)

type RouteHandler struct {
	service routes.RouteUseCase
}

type upsertRouteRequest struct {
	AirlineID    int64  `json:"airline_id" binding:"required"`
	FlightNumber string `json:"flight_number" binding:"required"`
	Origin       string `json:"origin" binding:"required"`
	Destination  string `json:"destination" binding:"required"`
	Plane        string `json:"plane"`
	Seats        int    `json:"seats"`
	Duration     int    `json:"duration"`
	Mode         string `json:"mode" binding:"required"`
}

func NewRouteHandler(service routes.RouteUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup) {
	router.PUT("/routes", h.upsert)
}

func (h *RouteHandler) upsert(c *gin.Context) {
	var req upsertRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.UpsertRoute(c.Request.Context(), routes.UpsertRouteInput{
		AirlineID:    req.AirlineID,
		FlightNumber: req.FlightNumber,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Plane:        req.Plane,
		Seats:        req.Seats,
		Duration:     req.Duration,
		Mode:         domain.UpsertMode(req.Mode),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if domain.UpsertMode(req.Mode) == domain.ModeInsert {
		status = http.StatusCreated
	}
	c.JSON(status, flight)
}
