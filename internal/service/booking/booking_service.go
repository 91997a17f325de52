package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skyrelay/emptylegs/internal/domain"
	"github.com/skyrelay/emptylegs/internal/repository"
)

// Sentinel errors whose text doubles as the API detail string.
var (
	ErrInvalidFlightID   = errors.New("Invalid flight_id")
	ErrFlightNotFound    = errors.New("Flight not found")
	ErrInvalidPassengers = errors.New("Invalid passengers count")
)

type BookingUseCase interface {
	Book(ctx context.Context, input BookInput) (*BookResult, error)
}

type BookInput struct {
	FlightID   string `json:"flight_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Passengers int    `json:"passengers"`
	Notes      string `json:"notes"`
}

type BookResult struct {
	BookingID string
	Status    domain.BookingStatus
}

type BookingService struct {
	bookings repository.BookingRepository
	flights  repository.FlightRepository
}

func NewBookingService(bookings repository.BookingRepository, flights repository.FlightRepository) *BookingService {
	return &BookingService{bookings: bookings, flights: flights}
}

// Book validates the request against the referenced listing, persists a
// pending booking, then decrements the listing's seat count.
//
// The capacity check and the decrement are not one atomic unit: two
// concurrent bookings can both pass the check before either decrement
// lands, letting seats_available go negative. The decrement itself is
// fire-and-forget; once the booking record exists it is authoritative
// and a failed decrement only drifts the seat count.
func (s *BookingService) Book(ctx context.Context, input BookInput) (*BookResult, error) {
	oid, err := primitive.ObjectIDFromHex(input.FlightID)
	if err != nil {
		return nil, ErrInvalidFlightID
	}

	flight, err := s.flights.GetByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup flight: %w", err)
	}

	if input.Passengers < 1 || input.Passengers > flight.SeatsAvailable {
		return nil, ErrInvalidPassengers
	}

	record := &domain.Booking{
		FlightID:   oid.Hex(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Passengers: input.Passengers,
		Notes:      input.Notes,
		Status:     domain.BookingStatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	bookingID, err := s.bookings.Insert(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err := s.flights.DecrementSeats(ctx, oid, input.Passengers); err != nil {
		log.Printf("WARNING: seat decrement failed for flight %s after booking %s: %v", oid.Hex(), bookingID.Hex(), err)
	}

	return &BookResult{BookingID: bookingID.Hex(), Status: domain.BookingStatusPending}, nil
}

var _ BookingUseCase = (*BookingService)(nil)
