package controllers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tmondal/trvl-backend/controllers"
	"github.com/tmondal/trvl-backend/models"
)

func decodeScored(t *testing.T, rec *httptest.ResponseRecorder) []models.ScoredHotel {
	t.Helper()
	var out []models.ScoredHotel
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestRecommendationsAnonymous(t *testing.T) {
	rec := httptest.NewRecorder()
	controllers.Recommendations(newFakeUserStore(), newFakeHotelStore(), testLogger())(rec, httptest.NewRequest("GET", "/recco", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeScored(t, rec); len(got) != 0 {
		t.Fatalf("anonymous recommendations = %+v, want empty", got)
	}
}

func TestRecommendationsEmptyHistory(t *testing.T) {
	user := &models.User{Name: "alice", Email: "a@example.com", Password: "hash"}
	users := newFakeUserStore(user)

	rec := httptest.NewRecorder()
	controllers.Recommendations(users, newFakeHotelStore(), testLogger())(rec, asUser(httptest.NewRequest("GET", "/recco", nil), user.ID))
	if got := decodeScored(t, rec); len(got) != 0 {
		t.Fatalf("recommendations with no history = %+v, want empty", got)
	}
}

func TestRecommendationsQueryFromLastVisitedTags(t *testing.T) {
	older := &models.Hotel{Name: "Plaza", Location: "London", Tags: []string{"city"}}
	latest := &models.Hotel{Name: "Shore", Location: "Goa", Tags: []string{"beach", "spa", "luxury"}}
	hotels := newFakeHotelStore(older, latest)
	hotels.scored = []models.ScoredHotel{
		{Name: "Reef", Location: "Maldives", Score: 4.2},
		{Name: "Dune", Location: "Goa", Score: 1.7},
	}

	user := &models.User{Name: "alice", Email: "a@example.com", Password: "hash"}
	user.Visited = append(user.Visited, older.ID, latest.ID)
	users := newFakeUserStore(user)

	rec := httptest.NewRecorder()
	controllers.Recommendations(users, hotels, testLogger())(rec, asUser(httptest.NewRequest("GET", "/recco", nil), user.ID))

	if hotels.tagQuery != "beach spa luxury" {
		t.Fatalf("tag query = %q, want tags of most recent visit space-joined", hotels.tagQuery)
	}
	got := decodeScored(t, rec)
	if len(got) != 2 || got[0].Name != "Reef" || got[0].Score != 4.2 {
		t.Fatalf("recommendations = %+v", got)
	}
}

func TestRecommendationsDegradeWhenSearchUnavailable(t *testing.T) {
	hotel := &models.Hotel{Name: "Shore", Location: "Goa", Tags: []string{"beach"}}
	hotels := newFakeHotelStore(hotel)
	hotels.searchErr = errors.New("text index missing")

	user := &models.User{Name: "alice", Email: "a@example.com", Password: "hash"}
	user.Visited = append(user.Visited, hotel.ID)
	users := newFakeUserStore(user)

	rec := httptest.NewRecorder()
	controllers.Recommendations(users, hotels, testLogger())(rec, asUser(httptest.NewRequest("GET", "/recco", nil), user.ID))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, search failure must not fail the request", rec.Code)
	}
	if got := decodeScored(t, rec); len(got) != 0 {
		t.Fatalf("recommendations = %+v, want empty on degraded search", got)
	}
}
