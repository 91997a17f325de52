package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skyrelay/emptylegs/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookRequest struct {
	FlightID   string `json:"flight_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone"`
	Passengers int    `json:"passengers"`
	Notes      string `json:"notes"`
}

type bookResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/book", h.book)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	result, err := h.service.Book(c.Request.Context(), booking.BookInput{
		FlightID:   req.FlightID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Passengers: req.Passengers,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidFlightID), errors.Is(err, booking.ErrInvalidPassengers):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		case errors.Is(err, booking.ErrFlightNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		default:
			log.Printf("create booking: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, bookResponse{
		BookingID: result.BookingID,
		Status:    string(result.Status),
	})
}
