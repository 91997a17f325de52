package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skyrelay/emptylegs/internal/domain"
)

const flightCollection = "emptylegflight"

type FlightRepository interface {
	Insert(ctx context.Context, flight *domain.Flight) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Flight, error)
	Search(ctx context.Context, filter SearchFilter) ([]domain.Flight, error)
	DecrementSeats(ctx context.Context, id primitive.ObjectID, n int) error
	DecrementSeatsIfAvailable(ctx context.Context, id primitive.ObjectID, n int) (bool, error)
}

type MongoFlightRepository struct {
	col *mongo.Collection
}

func NewFlightRepository(db *mongo.Database) FlightRepository {
	return &MongoFlightRepository{col: db.Collection(flightCollection)}
}

func (r *MongoFlightRepository) Insert(ctx context.Context, flight *domain.Flight) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, flight)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert flight: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert flight: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *MongoFlightRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Flight, error) {
	var f domain.Flight
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find flight: %w", err)
	}
	return &f, nil
}

func (r *MongoFlightRepository) Search(ctx context.Context, filter SearchFilter) ([]domain.Flight, error) {
	query := bson.M{}
	if filter.Origin != "" {
		query["origin"] = filter.Origin
	}
	if filter.Destination != "" {
		query["destination"] = filter.Destination
	}
	if filter.HasDepartureWindow() {
		query["departure_time"] = bson.M{"$gte": filter.DepartFrom, "$lte": filter.DepartTo}
	}

	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}
	defer cursor.Close(ctx)

	flights := make([]domain.Flight, 0)
	if err := cursor.All(ctx, &flights); err != nil {
		return nil, fmt.Errorf("decode flights: %w", err)
	}
	return flights, nil
}

// DecrementSeats applies an unconditional $inc. Nothing stops the
// counter going negative here; capacity is checked by the caller before
// this runs and the two steps are not one atomic unit.
func (r *MongoFlightRepository) DecrementSeats(ctx context.Context, id primitive.ObjectID, n int) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"seats_available": -n}})
	if err != nil {
		return fmt.Errorf("decrement seats: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementSeatsIfAvailable is the conditional variant: the decrement
// applies only while seats_available >= n, and the return value reports
// whether it did. The booking flow does not use it; it exists for
// callers that want the stronger guarantee.
func (r *MongoFlightRepository) DecrementSeatsIfAvailable(ctx context.Context, id primitive.ObjectID, n int) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "seats_available": bson.M{"$gte": n}},
		bson.M{"$inc": bson.M{"seats_available": -n}},
	)
	if err != nil {
		return false, fmt.Errorf("conditional decrement seats: %w", err)
	}
	return res.ModifiedCount == 1, nil
}

var _ FlightRepository = (*MongoFlightRepository)(nil)
