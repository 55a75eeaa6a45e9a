package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ostrikov/airbooking/internal/service/booking"
)

const dateLayout = "2006-01-02"

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	Passport     string `json:"passport" binding:"required"`
	FlightNumber string `json:"flight_number" binding:"required"`
	Departure    string `json:"departure" binding:"required"`
}

type bookingResponse struct {
	Ref          string `json:"ref"`
	FlightNumber string `json:"flight_number"`
	Departure    string `json:"departure"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings", h.create)
	router.GET("/flights/:flightnum/seats", h.remainingSeats)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	departure, err := time.Parse(dateLayout, req.Departure)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "departure must be YYYY-MM-DD"})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		Passport:     req.Passport,
		FlightNumber: req.FlightNumber,
		Departure:    departure,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookingResponse{
		Ref:          created.Ref,
		FlightNumber: created.FlightNumber,
		Departure:    created.Departure.Format(dateLayout),
	})
}

func (h *BookingHandler) remainingSeats(c *gin.Context) {
	departure, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	remaining, err := h.service.RemainingSeats(c.Request.Context(), c.Param("flightnum"), departure)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"flight_number":   c.Param("flightnum"),
		"departure":       departure.Format(dateLayout),
		"remaining_seats": remaining,
	})
}
