package controllers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContextKey string

// UserIDKey holds the authenticated user's id (hex) in the request context.
// Absent for anonymous requests.
const UserIDKey = ContextKey("userID")

// currentUserID extracts the authenticated user's id from the request
// context. ok is false for anonymous requests.
func currentUserID(r *http.Request) (primitive.ObjectID, bool) {
	hex, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
