package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/tmondal/trvl-backend/amadeus"
)

// FlightAPI is the slice of the Amadeus client the flight routes need.
type FlightAPI interface {
	Locations(ctx context.Context, keyword string) (json.RawMessage, error)
	FlightOffers(ctx context.Context, origin, destination, date string) (json.RawMessage, error)
}

type flightSearchRequest struct {
	Arrival           string `json:"arrival"`
	LocationDeparture string `json:"locationDeparture"`
	LocationArrival   string `json:"locationArrival"`
}

// CitySearch proxies a city/airport keyword lookup to the flight provider and
// relays the response verbatim.
func CitySearch(flights FlightAPI, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if flights == nil {
			http.Error(w, "Flight search is not configured", http.StatusServiceUnavailable)
			return
		}

		payload, err := flights.Locations(r.Context(), r.URL.Query().Get("keyword"))
		if err != nil {
			relayProviderError(w, err, logger)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
	}
}

// FlightOffers proxies a one-adult flight-offer search. The route name /date
// comes from the original frontend contract.
func FlightOffers(flights FlightAPI, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if flights == nil {
			http.Error(w, "Flight search is not configured", http.StatusServiceUnavailable)
			return
		}

		var req flightSearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		payload, err := flights.FlightOffers(r.Context(), req.LocationDeparture, req.LocationArrival, req.Arrival)
		if err != nil {
			relayProviderError(w, err, logger)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
	}
}

// relayProviderError passes the provider's own error body through when there
// is one, and maps everything else to a bad gateway.
func relayProviderError(w http.ResponseWriter, err error, logger *logrus.Logger) {
	var apiErr *amadeus.APIError
	if errors.As(err, &apiErr) {
		logger.WithField("status", apiErr.Status).Warn("flight provider error relayed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(apiErr.Status)
		w.Write(apiErr.Body)
		return
	}
	logger.WithError(err).Error("flight provider unreachable")
	http.Error(w, "Flight provider unavailable", http.StatusBadGateway)
}
