package controllers_test

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tmondal/trvl-backend/controllers"
	"github.com/tmondal/trvl-backend/models"
)

// ---- fakes ----

type fakeUserStore struct {
	users map[primitive.ObjectID]*models.User
	err   error
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: map[primitive.ObjectID]*models.User{}}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeUserStore) GetByName(ctx context.Context, name string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) Insert(ctx context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) SetField(ctx context.Context, id primitive.ObjectID, field, value string) error {
	u, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	switch field {
	case "name":
		u.Name = value
	case "mobile":
		u.Mobile = value
	case "email":
		u.Email = value
	case "address":
		u.Address = value
	}
	return nil
}

func (f *fakeUserStore) PushVisited(ctx context.Context, id, hotelID primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	u, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.Visited = append(u.Visited, hotelID)
	return nil
}

func (f *fakeUserStore) PushBucketlist(ctx context.Context, id, hotelID primitive.ObjectID) error {
	u, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.Bucketlist = append(u.Bucketlist, hotelID)
	return nil
}

func (f *fakeUserStore) PushBooking(ctx context.Context, id primitive.ObjectID, booking models.Booking) error {
	u, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.Booked = append(u.Booked, booking)
	return nil
}

type fakeHotelStore struct {
	hotels    map[primitive.ObjectID]*models.Hotel
	order     []primitive.ObjectID
	scored    []models.ScoredHotel
	searchErr error
	tagQuery  string
}

func newFakeHotelStore(hotels ...*models.Hotel) *fakeHotelStore {
	f := &fakeHotelStore{hotels: map[primitive.ObjectID]*models.Hotel{}}
	for _, h := range hotels {
		if h.ID.IsZero() {
			h.ID = primitive.NewObjectID()
		}
		f.hotels[h.ID] = h
		f.order = append(f.order, h.ID)
	}
	return f
}

func (f *fakeHotelStore) All(ctx context.Context) ([]models.Hotel, error) {
	var out []models.Hotel
	for _, id := range f.order {
		out = append(out, *f.hotels[id])
	}
	return out, nil
}

func (f *fakeHotelStore) Featured(ctx context.Context) ([]models.Hotel, error) {
	var out []models.Hotel
	for _, id := range f.order {
		if f.hotels[id].Featured {
			out = append(out, *f.hotels[id])
		}
	}
	return out, nil
}

func (f *fakeHotelStore) Search(ctx context.Context, term string) ([]models.Hotel, error) {
	if term == "" {
		return f.All(ctx)
	}
	needle := strings.ToLower(term)
	var out []models.Hotel
	for _, id := range f.order {
		h := f.hotels[id]
		if strings.Contains(strings.ToLower(h.Location), needle) ||
			strings.Contains(strings.ToLower(h.IATA), needle) {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeHotelStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return h, nil
}

func (f *fakeHotelStore) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Hotel, error) {
	var out []models.Hotel
	for _, id := range ids {
		if h, ok := f.hotels[id]; ok {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeHotelStore) Insert(ctx context.Context, hotel *models.Hotel) error {
	if hotel.ID.IsZero() {
		hotel.ID = primitive.NewObjectID()
	}
	f.hotels[hotel.ID] = hotel
	f.order = append(f.order, hotel.ID)
	return nil
}

func (f *fakeHotelStore) PushBucketlister(ctx context.Context, hotelID, userID primitive.ObjectID) error {
	h, ok := f.hotels[hotelID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	h.Bucketlisted = append(h.Bucketlisted, userID)
	return nil
}

func (f *fakeHotelStore) PushBooker(ctx context.Context, hotelID, userID primitive.ObjectID) error {
	h, ok := f.hotels[hotelID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	h.Bookers = append(h.Bookers, userID)
	return nil
}

func (f *fakeHotelStore) PushReview(ctx context.Context, hotelID primitive.ObjectID, review models.Review) error {
	h, ok := f.hotels[hotelID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	h.Reviews = append(h.Reviews, review)
	return nil
}

func (f *fakeHotelStore) SearchByTags(ctx context.Context, query string) ([]models.ScoredHotel, error) {
	f.tagQuery = query
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.scored, nil
}

// ---- helpers ----

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// asUser attaches an authenticated identity the way the session middleware
// does.
func asUser(r *http.Request, id primitive.ObjectID) *http.Request {
	ctx := context.WithValue(r.Context(), controllers.UserIDKey, id.Hex())
	return r.WithContext(ctx)
}
