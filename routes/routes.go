package routes

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/tmondal/trvl-backend/controllers"
	"github.com/tmondal/trvl-backend/middleware"
	"github.com/tmondal/trvl-backend/store"
)

// Deps carries everything the route layer hands to the controllers.
type Deps struct {
	Users   store.UserStore
	Hotels  store.HotelStore
	Cache   *store.CatalogCache
	Flights controllers.FlightAPI
	Logger  *logrus.Logger
}

func Routes(router *mux.Router, deps Deps) {
	router.Use(middleware.Identity(deps.Logger))

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "TRVL backend up")
	}).Methods("GET")

	// Flight provider proxy
	router.HandleFunc("/citySearch", controllers.CitySearch(deps.Flights, deps.Logger)).Methods("GET")
	router.HandleFunc("/date", controllers.FlightOffers(deps.Flights, deps.Logger)).Methods("POST")

	// Auth
	router.HandleFunc("/register", controllers.RegisterUser(deps.Users, deps.Logger)).Methods("POST")
	router.HandleFunc("/login", controllers.LoginUser(deps.Users, deps.Logger)).Methods("POST")
	router.HandleFunc("/logout", controllers.LogoutUser()).Methods("GET")
	router.HandleFunc("/getuser", controllers.GetUser(deps.Users, deps.Logger)).Methods("GET")
	router.HandleFunc("/userstatus", controllers.UserStatus()).Methods("GET")

	// Profile updates (route suffix fixes the field; /update/number mutates
	// mobile, matching the frontend contract)
	strict(router, "/update/name", controllers.UpdateUserField(deps.Users, deps.Logger, "name"), "POST")
	strict(router, "/update/number", controllers.UpdateUserField(deps.Users, deps.Logger, "mobile"), "POST")
	strict(router, "/update/email", controllers.UpdateUserField(deps.Users, deps.Logger, "email"), "POST")
	strict(router, "/update/address", controllers.UpdateUserField(deps.Users, deps.Logger, "address"), "POST")

	// Catalog
	router.HandleFunc("/gethotels", controllers.GetHotels(deps.Hotels, deps.Cache, deps.Logger)).Methods("GET", "POST")
	router.HandleFunc("/getfeaturedhotels", controllers.GetFeaturedHotels(deps.Hotels, deps.Cache, deps.Logger)).Methods("GET")
	router.HandleFunc("/hotelsearch", controllers.HotelSearch(deps.Hotels, deps.Logger)).Methods("POST")
	router.HandleFunc("/gethotelbyid/{id}/{datefrom}/{dateto}", controllers.GetHotelByID(deps.Hotels, deps.Users, deps.Logger)).Methods("GET")
	router.HandleFunc("/viewedhotels", controllers.ViewedHotels(deps.Hotels, deps.Users, deps.Logger)).Methods("GET")
	strict(router, "/addhotel", controllers.AddHotel(deps.Hotels, deps.Cache, deps.Logger), "POST")

	// Booking and bucket list
	router.HandleFunc("/bookhotel", controllers.HotelAvailability(deps.Hotels, deps.Logger)).Methods("POST")
	strict(router, "/book", controllers.Book(deps.Users, deps.Hotels, deps.Logger), "POST")
	router.HandleFunc("/getbookedhotels", controllers.GetBookedHotels(deps.Users, deps.Hotels, deps.Logger)).Methods("GET")
	strict(router, "/addtobucketlist/{id}", controllers.AddToBucketlist(deps.Users, deps.Hotels, deps.Logger), "POST")
	router.HandleFunc("/getbucketlist", controllers.GetBucketlist(deps.Users, deps.Hotels, deps.Logger)).Methods("GET")

	// Reviews and recommendations
	strict(router, "/addreview", controllers.AddReview(deps.Users, deps.Hotels, deps.Logger), "POST")
	router.HandleFunc("/recco", controllers.Recommendations(deps.Users, deps.Hotels, deps.Logger)).Methods("GET")
}

func strict(router *mux.Router, path string, handler http.HandlerFunc, methods ...string) {
	router.Handle(path, middleware.RequireUser(handler)).Methods(methods...)
}
