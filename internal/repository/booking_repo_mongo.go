package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skyrelay/emptylegs/internal/domain"
)

const bookingCollection = "booking"

type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error)
}

type MongoBookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &MongoBookingRepository{col: db.Collection(bookingCollection)}
}

func (r *MongoBookingRepository) Insert(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert booking: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert booking: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

var _ BookingRepository = (*MongoBookingRepository)(nil)
