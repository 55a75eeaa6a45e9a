package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ostrikov/airbooking/internal/service/passenger"
)

type PassengerHandler struct {
	service passenger.PassengerUseCase
}

type registerPassengerRequest struct {
	Passport  string `json:"passport" binding:"required"`
	FullName  string `json:"full_name" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
	Country   string `json:"country"`
}

func NewPassengerHandler(service passenger.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.POST("/passengers", h.register)
}

func (h *PassengerHandler) register(c *gin.Context) {
	var req registerPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be YYYY-MM-DD"})
		return
	}

	p, err := h.service.Register(c.Request.Context(), passenger.RegisterInput{
		Passport:  req.Passport,
		FullName:  req.FullName,
		BirthDate: birthDate,
		Country:   req.Country,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       p.ID,
		"passport": p.Passport,
	})
}
