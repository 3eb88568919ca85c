package models

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string               `bson:"name" json:"name" validate:"required,min=2"`
	Mobile   string               `bson:"mobile" json:"mobile"`
	Email    string               `bson:"email" json:"email" validate:"required,email"`
	Password string               `bson:"password" json:"-" validate:"required,min=6"`
	Address  string               `bson:"address,omitempty" json:"address,omitempty"`
	Visited  []primitive.ObjectID `bson:"visited" json:"visited"`
	// Bucketlist holds hotel ids saved for later. An id stays here only
	// while the user has no booking for that hotel.
	Bucketlist []primitive.ObjectID `bson:"bucketlist" json:"bucketlist"`
	Booked     []Booking            `bson:"booked" json:"booked"`
}

// Booking is a snapshot of one purchase. Hotel display fields are copied at
// booking time so the history survives later catalog edits.
type Booking struct {
	DateFrom          string  `bson:"datefrom" json:"datefrom"`
	DateTo            string  `bson:"dateto" json:"dateto"`
	Source            string  `bson:"source" json:"source"`
	Destination       string  `bson:"destination" json:"destination"`
	HotelID           string  `bson:"hotelId" json:"hotelId"`
	HotelCost         float64 `bson:"hotelcost" json:"hotelcost"`
	HotelName         string  `bson:"hotelname" json:"hotelname"`
	HotelLocation     string  `bson:"hotellocation" json:"hotellocation"`
	HotelImageURL     string  `bson:"hotelimageurl" json:"hotelimageurl"`
	FlightCost        float64 `bson:"flightcost" json:"flightcost"`
	FlightArrival     string  `bson:"flightarrival" json:"flightarrival"`
	FlightDeparture   string  `bson:"flightdeparture" json:"flightdeparture"`
	FlightCarrierCode string  `bson:"flightcarriercode" json:"flightcarriercode"`
	FlightNumber      string  `bson:"flightnumber" json:"flightnumber"`
	CarCost           float64 `bson:"carcost" json:"carcost"`
	CarType           string  `bson:"cartype" json:"cartype"`
	CarImageURL       string  `bson:"carimageurl" json:"carimageurl"`
}

var validate = validator.New()

func (u *User) Validate() error {
	return validate.Struct(u)
}
