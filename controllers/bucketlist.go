package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tmondal/trvl-backend/models"
	"github.com/tmondal/trvl-backend/store"
)

// AddToBucketlist saves a hotel for later. Checks run in a fixed order:
// authentication, hotel existence, already-bucketlisted, already-booked.
// Only then are the user's bucketlist and the hotel's bucketlister list both
// appended (two independent writes).
func AddToBucketlist(users store.UserStore, hotels store.HotelStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			http.Error(w, "Please login first", http.StatusUnauthorized)
			return
		}

		hotelID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			http.Error(w, "Invalid hotel ID", http.StatusBadRequest)
			return
		}

		hotel, err := hotels.GetByID(r.Context(), hotelID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Hotel does not exist!", http.StatusNotFound)
			return
		}
		if err != nil {
			logger.WithError(err).Error("bucketlist: hotel lookup failed")
			http.Error(w, "Error fetching hotel", http.StatusInternalServerError)
			return
		}

		if containsID(hotel.Bucketlisted, userID) {
			http.Error(w, "Hotel already exists in your bucketlist!", http.StatusConflict)
			return
		}
		if containsID(hotel.Bookers, userID) {
			http.Error(w, "Product already purchased once!", http.StatusConflict)
			return
		}

		if err := users.PushBucketlist(r.Context(), userID, hotelID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				http.Error(w, "User does not exist!", http.StatusNotFound)
				return
			}
			logger.WithError(err).Error("bucketlist: user update failed")
			http.Error(w, "Failed to update bucketlist", http.StatusInternalServerError)
			return
		}
		if err := hotels.PushBucketlister(r.Context(), hotelID, userID); err != nil {
			logger.WithError(err).Error("bucketlist: hotel update failed")
			http.Error(w, "Failed to update bucketlist", http.StatusInternalServerError)
			return
		}

		fmt.Fprint(w, "Property added to bucketlist")
	}
}

// GetBucketlist lists the caller's saved hotels. Anonymous callers get an
// empty list.
func GetBucketlist(users store.UserStore, hotels store.HotelStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			writeJSON(w, http.StatusOK, []models.Hotel{})
			return
		}

		user, err := users.GetByID(r.Context(), userID)
		if err != nil {
			logger.WithError(err).Error("getbucketlist: user lookup failed")
			http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
			return
		}

		result, err := hotels.ByIDs(r.Context(), user.Bucketlist)
		if err != nil {
			logger.WithError(err).Error("getbucketlist: hotel fetch failed")
			http.Error(w, "Error fetching hotels", http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []models.Hotel{}
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
