// Package store holds the persistence contracts for the two top-level
// collections and their MongoDB implementations.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tmondal/trvl-backend/models"
)

// UserStore persists account documents. Lookups that match nothing return
// mongo.ErrNoDocuments.
type UserStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	SetField(ctx context.Context, id primitive.ObjectID, field, value string) error
	PushVisited(ctx context.Context, id, hotelID primitive.ObjectID) error
	PushBucketlist(ctx context.Context, id, hotelID primitive.ObjectID) error
	PushBooking(ctx context.Context, id primitive.ObjectID, booking models.Booking) error
}

// HotelStore persists catalog documents.
type HotelStore interface {
	All(ctx context.Context) ([]models.Hotel, error)
	Featured(ctx context.Context) ([]models.Hotel, error)
	// Search matches term case-insensitively against location or iata.
	// An empty term means "no filter" and returns the full catalog.
	Search(ctx context.Context, term string) ([]models.Hotel, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Hotel, error)
	ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Hotel, error)
	Insert(ctx context.Context, hotel *models.Hotel) error
	PushBucketlister(ctx context.Context, hotelID, userID primitive.ObjectID) error
	PushBooker(ctx context.Context, hotelID, userID primitive.ObjectID) error
	PushReview(ctx context.Context, hotelID primitive.ObjectID, review models.Review) error
	// SearchByTags runs a free-text relevance query over the tags field.
	SearchByTags(ctx context.Context, query string) ([]models.ScoredHotel, error)
}
