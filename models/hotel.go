package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Hotel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Location  string             `bson:"location" json:"location" validate:"required"`
	IATA      string             `bson:"iata" json:"iata"`
	Desc      string             `bson:"desc" json:"desc"`
	ImageURL  string             `bson:"imageurl" json:"imageurl"`
	Price     float64            `bson:"price" json:"price"`
	Rating    float64            `bson:"rating" json:"rating"`
	Amenities string             `bson:"amenities" json:"amenities"`
	Tags      []string           `bson:"tags" json:"tags"`
	Featured  bool               `bson:"featured" json:"featured"`
	Available []DateRange        `bson:"available" json:"available"`
	// Bookers and Bucketlisted are user ids. A user id in Bookers must not
	// also appear in Bucketlisted for the same hotel.
	Bookers      []primitive.ObjectID `bson:"bookers" json:"bookers"`
	Bucketlisted []primitive.ObjectID `bson:"bucketlisted" json:"bucketlisted"`
	Reviews      []Review             `bson:"reviews" json:"reviews"`
}

type DateRange struct {
	From time.Time `bson:"from" json:"from"`
	To   time.Time `bson:"to" json:"to"`
}

// Review is embedded in a hotel document. New reviews always start unverified.
type Review struct {
	Body     string `bson:"body" json:"body"`
	User     string `bson:"user" json:"user"`
	Verified bool   `bson:"verified" json:"verified"`
}

// ScoredHotel is the projection returned by the tag-relevance search, with the
// store's text-search score attached for display ordering.
type ScoredHotel struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Location  string             `bson:"location" json:"location"`
	Desc      string             `bson:"desc" json:"desc"`
	Price     float64            `bson:"price" json:"price"`
	ImageURL  string             `bson:"imageurl" json:"imageurl"`
	Amenities string             `bson:"amenities" json:"amenities"`
	Reviews   []Review           `bson:"reviews" json:"reviews"`
	Rating    float64            `bson:"rating" json:"rating"`
	Score     float64            `bson:"score" json:"score"`
}

func (h *Hotel) Validate() error {
	return validate.Struct(h)
}
