package controllers

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tmondal/trvl-backend/models"
	"github.com/tmondal/trvl-backend/store"
)

// Recommendations derives a tag query from the caller's most recently visited
// hotel and returns catalog entries ranked by text-search relevance. Anyone
// without a session or view history gets an empty list, and so does everyone
// when the store's text search is unavailable: recommendations degrade, they
// never fail the request.
func Recommendations(users store.UserStore, hotels store.HotelStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		empty := []models.ScoredHotel{}

		userID, ok := currentUserID(r)
		if !ok {
			writeJSON(w, http.StatusOK, empty)
			return
		}

		user, err := users.GetByID(r.Context(), userID)
		if err != nil {
			if err != mongo.ErrNoDocuments {
				logger.WithError(err).Error("recco: user lookup failed")
			}
			writeJSON(w, http.StatusOK, empty)
			return
		}
		if len(user.Visited) == 0 {
			writeJSON(w, http.StatusOK, empty)
			return
		}

		lastVisited := user.Visited[len(user.Visited)-1]
		hotel, err := hotels.GetByID(r.Context(), lastVisited)
		if err != nil || len(hotel.Tags) == 0 {
			if err != nil && err != mongo.ErrNoDocuments {
				logger.WithError(err).Error("recco: hotel lookup failed")
			}
			writeJSON(w, http.StatusOK, empty)
			return
		}

		scored, err := hotels.SearchByTags(r.Context(), strings.Join(hotel.Tags, " "))
		if err != nil {
			logger.WithError(err).Warn("recco: tag search unavailable")
			writeJSON(w, http.StatusOK, empty)
			return
		}
		if scored == nil {
			scored = empty
		}
		writeJSON(w, http.StatusOK, scored)
	}
}
