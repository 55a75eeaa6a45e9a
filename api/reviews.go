package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ostrikov/airbooking/internal/service/review"
)

type ReviewHandler struct {
	service review.ReviewUseCase
}

type submitReviewRequest struct {
	Passport     string `json:"passport" binding:"required"`
	FlightNumber string `json:"flight_number" binding:"required"`
	Score        int    `json:"score"`
	Comment      string `json:"comment"`
}

func NewReviewHandler(service review.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) Register(router *gin.RouterGroup) {
	router.POST("/reviews", h.submit)
}

func (h *ReviewHandler) submit(c *gin.Context) {
	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.service.SubmitReview(c.Request.Context(), review.SubmitReviewInput{
		Passport:     req.Passport,
		FlightNumber: req.FlightNumber,
		Score:        req.Score,
		Comment:      req.Comment,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"flight_number": rating.FlightNumber,
		"score":         rating.Score,
		"comment":       rating.Comment,
	})
}
