package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skyrelay/emptylegs/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type createFlightRequest struct {
	Operator        string    `json:"operator" binding:"required"`
	AircraftType    string    `json:"aircraft_type" binding:"required"`
	Origin          string    `json:"origin" binding:"required"`
	OriginCity      string    `json:"origin_city"`
	Destination     string    `json:"destination" binding:"required"`
	DestinationCity string    `json:"destination_city"`
	DepartureTime   time.Time `json:"departure_time" binding:"required"`
	ArrivalTime     time.Time `json:"arrival_time" binding:"required"`
	SeatsAvailable  int       `json:"seats_available"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	Notes           string    `json:"notes"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights", h.list)
	router.POST("/flights", h.create)
	router.POST("/seed", h.seed)
}

func (h *FlightHandler) list(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid limit"})
		return
	}

	results, err := h.service.Search(c.Request.Context(), flights.SearchQuery{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
		Limit:       limit,
	})
	if err != nil {
		log.Printf("search flights: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	flight, err := h.service.Create(c.Request.Context(), flights.CreateFlightInput{
		Operator:        req.Operator,
		AircraftType:    req.AircraftType,
		Origin:          req.Origin,
		OriginCity:      req.OriginCity,
		Destination:     req.Destination,
		DestinationCity: req.DestinationCity,
		DepartureTime:   req.DepartureTime,
		ArrivalTime:     req.ArrivalTime,
		SeatsAvailable:  req.SeatsAvailable,
		Price:           req.Price,
		Currency:        req.Currency,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, flights.ErrInvalidFlight) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		log.Printf("create flight: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": flight.ID.Hex()})
}

func (h *FlightHandler) seed(c *gin.Context) {
	flight, err := h.service.Seed(c.Request.Context())
	if err != nil {
		log.Printf("seed flight: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted_id": flight.ID.Hex()})
}
