package utils_test

import (
	"testing"

	"github.com/tmondal/trvl-backend/utils"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("64b64b64b64b64b64b64b64b")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := utils.ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "64b64b64b64b64b64b64b64b" {
		t.Fatalf("userID = %q", claims.UserID)
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	token, err := utils.GenerateJWT("someone")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := utils.ValidateJWT(token + "x"); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("pw1secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw1secret" {
		t.Fatal("password not hashed")
	}
	if !utils.CheckPasswordHash("pw1secret", hash) {
		t.Fatal("correct password rejected")
	}
	if utils.CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}
