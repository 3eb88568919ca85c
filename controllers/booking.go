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

// Book records one purchase: the full snapshot is appended to the user's
// booking history, and when a hotel is part of the trip the user is added to
// that hotel's booker list. The two writes are independent; a failure of the
// second leaves the first in place (documented non-atomicity).
func Book(users store.UserStore, hotels store.HotelStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			http.Error(w, "User not logged in!", http.StatusUnauthorized)
			return
		}

		var booking models.Booking
		if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		var hotelID primitive.ObjectID
		if booking.HotelID != "" {
			var err error
			hotelID, err = primitive.ObjectIDFromHex(booking.HotelID)
			if err != nil {
				http.Error(w, "Invalid hotel ID", http.StatusBadRequest)
				return
			}
		}

		if err := users.PushBooking(r.Context(), userID, booking); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				http.Error(w, "User doesn't exist", http.StatusNotFound)
				return
			}
			logger.WithError(err).Error("book: user update failed")
			http.Error(w, "Booking failed", http.StatusInternalServerError)
			return
		}

		if booking.HotelID != "" {
			if err := hotels.PushBooker(r.Context(), hotelID, userID); err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					http.Error(w, "Hotel doesn't exist", http.StatusNotFound)
					return
				}
				logger.WithError(err).Error("book: hotel update failed")
				http.Error(w, "Booking failed", http.StatusInternalServerError)
				return
			}
		}

		fmt.Fprint(w, "Booking confirmed!")
	}
}

// GetBookedHotels lists the catalog entries behind the caller's bookings.
// Anonymous callers get an empty list.
func GetBookedHotels(users store.UserStore, hotels store.HotelStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			writeJSON(w, http.StatusOK, []models.Hotel{})
			return
		}

		user, err := users.GetByID(r.Context(), userID)
		if err != nil {
			logger.WithError(err).Error("getbookedhotels: user lookup failed")
			http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
			return
		}

		var ids []primitive.ObjectID
		seen := make(map[primitive.ObjectID]bool)
		for _, booking := range user.Booked {
			if booking.HotelID == "" {
				continue
			}
			id, err := primitive.ObjectIDFromHex(booking.HotelID)
			if err != nil || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}

		result, err := hotels.ByIDs(r.Context(), ids)
		if err != nil {
			logger.WithError(err).Error("getbookedhotels: hotel fetch failed")
			http.Error(w, "Error fetching hotels", http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []models.Hotel{}
		}
		writeJSON(w, http.StatusOK, result)
	}
}
