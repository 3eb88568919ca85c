package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tmondal/trvl-backend/models"
)

const usersCollection = "users"

type UserMongoDBStore struct {
	users *mongo.Collection
}

func NewUserMongoDBStore(db *mongo.Database) *UserMongoDBStore {
	return &UserMongoDBStore{users: db.Collection(usersCollection)}
}

func (store *UserMongoDBStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return store.filterOne(ctx, bson.M{"_id": id})
}

func (store *UserMongoDBStore) GetByName(ctx context.Context, name string) (*models.User, error) {
	return store.filterOne(ctx, bson.M{"name": name})
}

func (store *UserMongoDBStore) Insert(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	result, err := store.users.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (store *UserMongoDBStore) SetField(ctx context.Context, id primitive.ObjectID, field, value string) error {
	return store.updateOne(ctx, id, bson.M{"$set": bson.M{field: value}})
}

func (store *UserMongoDBStore) PushVisited(ctx context.Context, id, hotelID primitive.ObjectID) error {
	return store.updateOne(ctx, id, bson.M{"$push": bson.M{"visited": hotelID}})
}

func (store *UserMongoDBStore) PushBucketlist(ctx context.Context, id, hotelID primitive.ObjectID) error {
	return store.updateOne(ctx, id, bson.M{"$push": bson.M{"bucketlist": hotelID}})
}

func (store *UserMongoDBStore) PushBooking(ctx context.Context, id primitive.ObjectID, booking models.Booking) error {
	return store.updateOne(ctx, id, bson.M{"$push": bson.M{"booked": booking}})
}

func (store *UserMongoDBStore) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := store.users.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (store *UserMongoDBStore) filterOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := store.users.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
