package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tmondal/trvl-backend/models"
	"github.com/tmondal/trvl-backend/store"
)

type reviewRequest struct {
	HotelID string `json:"hotelId"`
	Review  string `json:"review"`
}

// AddReview appends an unverified review under the caller's display name.
func AddReview(users store.UserStore, hotels store.HotelStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			http.Error(w, "Please login first!", http.StatusUnauthorized)
			return
		}

		var req reviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}
		if req.Review == "" {
			http.Error(w, "Review text is required", http.StatusBadRequest)
			return
		}

		hotelID, err := primitive.ObjectIDFromHex(req.HotelID)
		if err != nil {
			http.Error(w, "Invalid hotel ID", http.StatusBadRequest)
			return
		}

		user, err := users.GetByID(r.Context(), userID)
		if err != nil {
			logger.WithError(err).Error("addreview: user lookup failed")
			http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
			return
		}

		review := models.Review{Body: req.Review, User: user.Name, Verified: false}
		err = hotels.PushReview(r.Context(), hotelID, review)
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Hotel does not exist!", http.StatusNotFound)
			return
		}
		if err != nil {
			logger.WithError(err).Error("addreview: hotel update failed")
			http.Error(w, "Failed to add review", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, "New review added!")
	}
}
