package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skyrelay/emptylegs/internal/domain"
	"github.com/skyrelay/emptylegs/internal/service/flights"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Search(ctx context.Context, q flights.SearchQuery) ([]domain.Flight, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, input flights.CreateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Seed(ctx context.Context) (*domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/flights?origin=las&destination=vny&date=2024-05-01&limit=10", nil)

	listings := []domain.Flight{
		{ID: primitive.NewObjectID(), Operator: "SkyJet", Origin: "LAS", Destination: "VNY", SeatsAvailable: 6, Price: 8900, Currency: "USD"},
	}

	mockService.On("Search", c.Request.Context(), flights.SearchQuery{
		Origin:      "las",
		Destination: "vny",
		Date:        "2024-05-01",
		Limit:       10,
	}).Return(listings, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, listings[0].ID.Hex(), response[0]["id"])

	mockService.AssertExpectations(t)
}

func TestFlightHandler_list_DefaultLimit(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/flights", nil)

	mockService.On("Search", c.Request.Context(), mock.MatchedBy(func(q flights.SearchQuery) bool {
		return q.Limit == 50
	})).Return([]domain.Flight{}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	mockService.AssertExpectations(t)
}

func TestFlightHandler_list_BadLimit(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/flights?limit=ten", nil)

	handler.list(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Search")
}

func TestFlightHandler_create(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	departure := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	body, _ := json.Marshal(map[string]any{
		"operator":        "SkyJet",
		"aircraft_type":   "Citation XLS+",
		"origin":          "LAS",
		"destination":     "VNY",
		"departure_time":  departure.Format(time.RFC3339),
		"arrival_time":    departure.Add(time.Hour).Format(time.RFC3339),
		"seats_available": 6,
		"price":           8900,
	})
	c.Request = httptest.NewRequest("POST", "/api/flights", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	id := primitive.NewObjectID()
	mockService.On("Create", c.Request.Context(), mock.MatchedBy(func(in flights.CreateFlightInput) bool {
		return in.Operator == "SkyJet" && in.Origin == "LAS" && in.DepartureTime.Equal(departure)
	})).Return(&domain.Flight{ID: id}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, id.Hex(), response["id"])

	mockService.AssertExpectations(t)
}

func TestFlightHandler_create_MissingFields(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(map[string]any{"operator": "SkyJet"})
	c.Request = httptest.NewRequest("POST", "/api/flights", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestFlightHandler_create_ValidationError(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	departure := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	body, _ := json.Marshal(map[string]any{
		"operator":        "SkyJet",
		"aircraft_type":   "Citation XLS+",
		"origin":          "LAS",
		"destination":     "VNY",
		"departure_time":  departure.Format(time.RFC3339),
		"arrival_time":    departure.Add(time.Hour).Format(time.RFC3339),
		"seats_available": -1,
	})
	c.Request = httptest.NewRequest("POST", "/api/flights", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), mock.Anything).
		Return(nil, flights.ErrInvalidFlight)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightHandler_seed(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/seed", nil)

	id := primitive.NewObjectID()
	mockService.On("Seed", c.Request.Context()).Return(&domain.Flight{ID: id}, nil)

	handler.seed(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, id.Hex(), response["inserted_id"])

	mockService.AssertExpectations(t)
}
