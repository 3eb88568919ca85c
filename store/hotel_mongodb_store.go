package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tmondal/trvl-backend/models"
)

const hotelsCollection = "hotels"

type HotelMongoDBStore struct {
	hotels *mongo.Collection
}

func NewHotelMongoDBStore(db *mongo.Database) *HotelMongoDBStore {
	return &HotelMongoDBStore{hotels: db.Collection(hotelsCollection)}
}

func (store *HotelMongoDBStore) All(ctx context.Context) ([]models.Hotel, error) {
	return store.filter(ctx, bson.M{})
}

func (store *HotelMongoDBStore) Featured(ctx context.Context) ([]models.Hotel, error) {
	return store.filter(ctx, bson.M{"featured": true})
}

func (store *HotelMongoDBStore) Search(ctx context.Context, term string) ([]models.Hotel, error) {
	if term == "" {
		return store.All(ctx)
	}
	filter := bson.M{"$or": bson.A{
		bson.M{"location": bson.M{"$regex": primitive.Regex{Pattern: term, Options: "i"}}},
		bson.M{"iata": bson.M{"$regex": primitive.Regex{Pattern: term, Options: "i"}}},
	}}
	return store.filter(ctx, filter)
}

func (store *HotelMongoDBStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := store.hotels.FindOne(ctx, bson.M{"_id": id}).Decode(&hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (store *HotelMongoDBStore) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Hotel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return store.filter(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (store *HotelMongoDBStore) Insert(ctx context.Context, hotel *models.Hotel) error {
	if hotel.ID.IsZero() {
		hotel.ID = primitive.NewObjectID()
	}
	result, err := store.hotels.InsertOne(ctx, hotel)
	if err != nil {
		return err
	}
	hotel.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (store *HotelMongoDBStore) PushBucketlister(ctx context.Context, hotelID, userID primitive.ObjectID) error {
	return store.updateOne(ctx, hotelID, bson.M{"$push": bson.M{"bucketlisted": userID}})
}

func (store *HotelMongoDBStore) PushBooker(ctx context.Context, hotelID, userID primitive.ObjectID) error {
	return store.updateOne(ctx, hotelID, bson.M{"$push": bson.M{"bookers": userID}})
}

func (store *HotelMongoDBStore) PushReview(ctx context.Context, hotelID primitive.ObjectID, review models.Review) error {
	return store.updateOne(ctx, hotelID, bson.M{"$push": bson.M{"reviews": review}})
}

// SearchByTags requires an Atlas Search text index on the tags field. Callers
// treat errors as "no recommendations" rather than failing the request.
func (store *HotelMongoDBStore) SearchByTags(ctx context.Context, query string) ([]models.ScoredHotel, error) {
	pipeline := mongo.Pipeline{
		{
			{Key: "$search", Value: bson.M{
				"text": bson.M{
					"query": query,
					"path":  "tags",
				},
			}},
		},
		{
			{Key: "$project", Value: bson.M{
				"name":      1,
				"location":  1,
				"desc":      1,
				"price":     1,
				"imageurl":  1,
				"amenities": 1,
				"reviews":   1,
				"rating":    1,
				"score":     bson.M{"$meta": "searchScore"},
			}},
		},
	}

	cursor, err := store.hotels.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scored []models.ScoredHotel
	if err := cursor.All(ctx, &scored); err != nil {
		return nil, err
	}
	return scored, nil
}

func (store *HotelMongoDBStore) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := store.hotels.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (store *HotelMongoDBStore) filter(ctx context.Context, filter bson.M) ([]models.Hotel, error) {
	cursor, err := store.hotels.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}
