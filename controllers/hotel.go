package controllers

import (
	"context"
	"encoding/json"
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

const recentlyViewedLimit = 5

type searchRequest struct {
	SearchLoc string `json:"searchloc"`
}

// GetHotels lists the whole catalog, served from the redis cache when warm.
func GetHotels(hotels store.HotelStore, cache *store.CatalogCache, logger *logrus.Logger) http.HandlerFunc {
	return cachedCatalog(hotels.All, store.CacheKeyAllHotels, cache, logger)
}

func GetFeaturedHotels(hotels store.HotelStore, cache *store.CatalogCache, logger *logrus.Logger) http.HandlerFunc {
	return cachedCatalog(hotels.Featured, store.CacheKeyFeaturedHotels, cache, logger)
}

func cachedCatalog(fetch func(context.Context) ([]models.Hotel, error), cacheKey string, cache *store.CatalogCache, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if payload, ok := cache.Get(r.Context(), cacheKey); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}

		result, err := fetch(r.Context())
		if err != nil {
			logger.WithError(err).Error("catalog fetch failed")
			http.Error(w, "Error fetching hotels", http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []models.Hotel{}
		}

		payload, err := json.Marshal(result)
		if err != nil {
			logger.WithError(err).Error("catalog encode failed")
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
		cache.Set(r.Context(), cacheKey, payload)

		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
	}
}

// HotelSearch filters the catalog by location or IATA code. An empty search
// term is "no filter" and returns everything.
func HotelSearch(hotels store.HotelStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		result, err := hotels.Search(r.Context(), req.SearchLoc)
		if err != nil {
			logger.WithError(err).Error("hotel search failed")
			http.Error(w, "Error fetching hotels", http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []models.Hotel{}
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// GetHotelByID returns one catalog entry. For logged-in callers the hotel id
// is appended to their visit history; that write is best-effort and only
// logged on failure.
func GetHotelByID(hotels store.HotelStore, users store.UserStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			http.Error(w, "Invalid hotel ID", http.StatusBadRequest)
			return
		}

		hotel, err := hotels.GetByID(r.Context(), id)
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Hotel does not exist!", http.StatusNotFound)
			return
		}
		if err != nil {
			logger.WithError(err).Error("hotel lookup failed")
			http.Error(w, "Error fetching hotel", http.StatusInternalServerError)
			return
		}

		if userID, ok := currentUserID(r); ok {
			if err := users.PushVisited(r.Context(), userID, id); err != nil {
				logger.WithError(err).Warn("failed to record hotel visit")
			}
		}

		writeJSON(w, http.StatusOK, hotel)
	}
}

// ViewedHotels returns the caller's 2nd through 6th most recent visits. The
// most recent entry is skipped because the frontend shows it separately.
// Anonymous callers get the full catalog instead.
func ViewedHotels(hotels store.HotelStore, users store.UserStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			all, err := hotels.All(r.Context())
			if err != nil {
				logger.WithError(err).Error("catalog fetch failed")
				http.Error(w, "Error fetching hotels", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, all)
			return
		}

		user, err := users.GetByID(r.Context(), userID)
		if err != nil {
			logger.WithError(err).Error("viewedhotels: user lookup failed")
			http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
			return
		}

		result, err := hotels.ByIDs(r.Context(), recentWindow(user.Visited))
		if err != nil {
			logger.WithError(err).Error("viewedhotels: hotel fetch failed")
			http.Error(w, "Error fetching hotels", http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []models.Hotel{}
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// recentWindow picks up to recentlyViewedLimit ids preceding the most recent
// visit, deduplicated, newest first. Visited is append-only with the most
// recent entry last.
func recentWindow(visited []primitive.ObjectID) []primitive.ObjectID {
	if len(visited) < 2 {
		return nil
	}
	seen := make(map[primitive.ObjectID]bool, recentlyViewedLimit+1)
	seen[visited[len(visited)-1]] = true

	var window []primitive.ObjectID
	for i := len(visited) - 2; i >= 0 && len(window) < recentlyViewedLimit; i-- {
		if seen[visited[i]] {
			continue
		}
		seen[visited[i]] = true
		window = append(window, visited[i])
	}
	return window
}

// AddHotel creates a catalog entry.
func AddHotel(hotels store.HotelStore, cache *store.CatalogCache, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var hotel models.Hotel
		if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		if err := hotel.Validate(); err != nil {
			http.Error(w, "Invalid hotel details", http.StatusBadRequest)
			return
		}

		if err := hotels.Insert(r.Context(), &hotel); err != nil {
			logger.WithError(err).Error("addhotel: insert failed")
			http.Error(w, "Failed to create hotel", http.StatusInternalServerError)
			return
		}

		go cache.Invalidate(context.Background())

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, "New product added")
	}
}

type availabilityRequest struct {
	HotelID  string `json:"hotelID"`
	DateFrom string `json:"datefrom"`
	DateTo   string `json:"dateto"`
}

// HotelAvailability returns the hotel's open date ranges for the frontend's
// booking form.
func HotelAvailability(hotels store.HotelStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req availabilityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		id, err := primitive.ObjectIDFromHex(req.HotelID)
		if err != nil {
			http.Error(w, "Invalid hotel ID", http.StatusBadRequest)
			return
		}

		hotel, err := hotels.GetByID(r.Context(), id)
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Hotel does not exist!", http.StatusNotFound)
			return
		}
		if err != nil {
			logger.WithError(err).Error("availability lookup failed")
			http.Error(w, "Error fetching hotel", http.StatusInternalServerError)
			return
		}

		available := hotel.Available
		if available == nil {
			available = []models.DateRange{}
		}
		writeJSON(w, http.StatusOK, available)
	}
}
