package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tmondal/trvl-backend/models"
	"github.com/tmondal/trvl-backend/store"
	"github.com/tmondal/trvl-backend/utils"
)

type registerRequest struct {
	Username string `json:"username"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func RegisterUser(users store.UserStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("bad register payload")
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		user := models.User{
			Name:     req.Username,
			Mobile:   req.Mobile,
			Email:    req.Email,
			Password: req.Password,
		}
		if err := user.Validate(); err != nil {
			http.Error(w, "Invalid registration details", http.StatusBadRequest)
			return
		}

		_, err := users.GetByName(r.Context(), req.Username)
		if err == nil {
			http.Error(w, "User already exists, please login", http.StatusConflict)
			return
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			logger.WithError(err).Error("register: user lookup failed")
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

		hashedPwd, err := utils.HashPassword(req.Password)
		if err != nil {
			logger.WithError(err).Error("register: hashing failed")
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}
		user.Password = hashedPwd

		if err := users.Insert(r.Context(), &user); err != nil {
			logger.WithError(err).Error("register: insert failed")
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, "Welcome to TRVL!")
	}
}

func LoginUser(users store.UserStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		user, err := users.GetByName(r.Context(), req.Username)
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "User does not exist!", http.StatusUnauthorized)
			return
		}
		if err != nil {
			logger.WithError(err).Error("login: user lookup failed")
			http.Error(w, "Login failed", http.StatusInternalServerError)
			return
		}

		if !utils.CheckPasswordHash(req.Password, user.Password) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := utils.GenerateJWT(user.ID.Hex())
		if err != nil {
			logger.WithError(err).Error("login: token generation failed")
			http.Error(w, "Login failed", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, utils.SessionCookie(token))
		fmt.Fprint(w, "Successfully logged in!")
	}
}

func LogoutUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, utils.ExpiredSessionCookie())
		fmt.Fprint(w, "Logged out")
	}
}

func GetUser(users store.UserStore, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			http.Error(w, "Please login first", http.StatusUnauthorized)
			return
		}

		user, err := users.GetByID(r.Context(), userID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "User does not exist!", http.StatusNotFound)
			return
		}
		if err != nil {
			logger.WithError(err).Error("getuser: lookup failed")
			http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// UserStatus is a boolean auth probe for the frontend.
func UserStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, ok := currentUserID(r)
		writeJSON(w, http.StatusOK, ok)
	}
}

// UpdateUserField mutates one profile field of the logged-in user. The route
// fixes which field; the request body carries the new value under the same
// name the original frontend sends (name, mobile, email, address).
func UpdateUserField(users store.UserStore, logger *logrus.Logger, field string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			http.Error(w, "Please login first", http.StatusUnauthorized)
			return
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}
		value, present := body[field]
		if !present || value == "" {
			http.Error(w, "Missing "+field, http.StatusBadRequest)
			return
		}

		err := users.SetField(r.Context(), userID, field, value)
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "User does not exist!", http.StatusNotFound)
			return
		}
		if err != nil {
			logger.WithError(err).Errorf("update %s failed", field)
			http.Error(w, "Update failed", http.StatusInternalServerError)
			return
		}

		fmt.Fprintf(w, "User %s updated.", field)
	}
}
