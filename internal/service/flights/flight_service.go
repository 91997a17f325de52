package flights

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/skyrelay/emptylegs/internal/domain"
	"github.com/skyrelay/emptylegs/internal/repository"
)

// ErrInvalidFlight marks listing-creation input that fails validation.
// Handlers turn it into a 400.
var ErrInvalidFlight = errors.New("invalid flight listing")

const defaultSearchLimit = 50

type FlightUseCase interface {
	Search(ctx context.Context, q SearchQuery) ([]domain.Flight, error)
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
	Seed(ctx context.Context) (*domain.Flight, error)
}

// SearchQuery holds the raw, unnormalized query parameters.
type SearchQuery struct {
	Origin      string
	Destination string
	Date        string
	Limit       int64
}

type CreateFlightInput struct {
	Operator        string
	AircraftType    string
	Origin          string
	OriginCity      string
	Destination     string
	DestinationCity string
	DepartureTime   time.Time
	ArrivalTime     time.Time
	SeatsAvailable  int
	Price           float64
	Currency        string
	Notes           string
}

type Cache interface {
	GetFlights(ctx context.Context, filterKey string) ([]domain.Flight, error)
	SetFlights(ctx context.Context, filterKey string, flights []domain.Flight) error
	Invalidate(ctx context.Context) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) Search(ctx context.Context, q SearchQuery) ([]domain.Flight, error) {
	filter := normalize(q)

	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx, filter.Key()); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, filter.Key(), flights); err != nil {
			log.Printf("cache flights: %v", err)
		}
	}
	return flights, nil
}

func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	flight, err := buildListing(input)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, flight)
	if err != nil {
		return nil, err
	}
	flight.ID = id

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("invalidate flights cache: %v", err)
		}
	}
	return flight, nil
}

// Seed inserts one hardcoded demonstration listing.
func (s *FlightService) Seed(ctx context.Context) (*domain.Flight, error) {
	now := time.Now().UTC()
	return s.Create(ctx, CreateFlightInput{
		Operator:        "SkyJet",
		AircraftType:    "Citation XLS+",
		Origin:          "LAS",
		OriginCity:      "Las Vegas",
		Destination:     "VNY",
		DestinationCity: "Los Angeles",
		DepartureTime:   now,
		ArrivalTime:     now,
		SeatsAvailable:  6,
		Price:           8900,
		Currency:        "USD",
		Notes:           "Flexible within +/- 6 hours",
	})
}

func buildListing(input CreateFlightInput) (*domain.Flight, error) {
	switch {
	case strings.TrimSpace(input.Operator) == "":
		return nil, fmt.Errorf("%w: operator is required", ErrInvalidFlight)
	case strings.TrimSpace(input.AircraftType) == "":
		return nil, fmt.Errorf("%w: aircraft_type is required", ErrInvalidFlight)
	case strings.TrimSpace(input.Origin) == "":
		return nil, fmt.Errorf("%w: origin is required", ErrInvalidFlight)
	case strings.TrimSpace(input.Destination) == "":
		return nil, fmt.Errorf("%w: destination is required", ErrInvalidFlight)
	case input.DepartureTime.IsZero():
		return nil, fmt.Errorf("%w: departure_time is required", ErrInvalidFlight)
	case input.ArrivalTime.IsZero():
		return nil, fmt.Errorf("%w: arrival_time is required", ErrInvalidFlight)
	case input.SeatsAvailable < 0:
		return nil, fmt.Errorf("%w: seats_available must not be negative", ErrInvalidFlight)
	case input.Price < 0:
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidFlight)
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "USD"
	}

	return &domain.Flight{
		Operator:        strings.TrimSpace(input.Operator),
		AircraftType:    strings.TrimSpace(input.AircraftType),
		Origin:          strings.ToUpper(strings.TrimSpace(input.Origin)),
		OriginCity:      strings.TrimSpace(input.OriginCity),
		Destination:     strings.ToUpper(strings.TrimSpace(input.Destination)),
		DestinationCity: strings.TrimSpace(input.DestinationCity),
		DepartureTime:   input.DepartureTime.UTC(),
		ArrivalTime:     input.ArrivalTime.UTC(),
		SeatsAvailable:  input.SeatsAvailable,
		Price:           input.Price,
		Currency:        currency,
		Notes:           input.Notes,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// normalize turns raw query params into a store filter: codes are
// uppercased, the date becomes a [00:00:00, 23:59:59] UTC window for
// that calendar day, and a date that does not parse disables the window
// rather than erroring.
func normalize(q SearchQuery) repository.SearchFilter {
	filter := repository.SearchFilter{
		Origin:      strings.ToUpper(strings.TrimSpace(q.Origin)),
		Destination: strings.ToUpper(strings.TrimSpace(q.Destination)),
		Limit:       q.Limit,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultSearchLimit
	}

	if raw := strings.TrimSpace(q.Date); raw != "" {
		if day, ok := parseDay(raw); ok {
			filter.DepartFrom = day
			filter.DepartTo = day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		}
	}
	return filter
}

func parseDay(raw string) (time.Time, bool) {
	if day, err := time.Parse("2006-01-02", raw); err == nil {
		return day.UTC(), true
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		ts = ts.UTC()
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

var _ FlightUseCase = (*FlightService)(nil)
