package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Flight is one published empty-leg listing.
// Collection: "emptylegflight". Airport codes are stored uppercase.
type Flight struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Operator        string             `bson:"operator" json:"operator"`
	AircraftType    string             `bson:"aircraft_type" json:"aircraft_type"`
	Origin          string             `bson:"origin" json:"origin"`
	OriginCity      string             `bson:"origin_city,omitempty" json:"origin_city,omitempty"`
	Destination     string             `bson:"destination" json:"destination"`
	DestinationCity string             `bson:"destination_city,omitempty" json:"destination_city,omitempty"`
	DepartureTime   time.Time          `bson:"departure_time" json:"departure_time"`
	ArrivalTime     time.Time          `bson:"arrival_time" json:"arrival_time"`
	SeatsAvailable  int                `bson:"seats_available" json:"seats_available"`
	Price           float64            `bson:"price" json:"price"`
	Currency        string             `bson:"currency" json:"currency"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
