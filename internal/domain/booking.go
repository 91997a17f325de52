package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a customer's seat reservation against a Flight.
// Collection: "booking". FlightID holds the hex form of the listing's
// ObjectID; it is a weak reference with no cascade, the listing may
// disappear independently. Only "pending" is ever produced by the
// booking flow; the other statuses belong to an administrative process
// outside this service.
type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FlightID   string             `bson:"flight_id" json:"flight_id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Passengers int                `bson:"passengers" json:"passengers"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status     BookingStatus      `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
