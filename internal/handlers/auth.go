package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage"
)

const (
	sessionLifetime = 48 * time.Hour
	// an elevated session is short lived: it exists only to unlock edits to
	// verified properties right after a password re-check
	elevatedLifetime = 10 * time.Minute
)

var jwtKey = []byte(jwtSecret())

func jwtSecret() string {
	if secret := os.Getenv(`JWT_SECRET`); secret != `` {
		return secret
	}
	return `xK9mPb2vRq8sThw4Jn6cZy3fAd7gLe5u`
}

func NewToken(userId string, elevated bool, lifetime time.Duration) (string, error) {
	claims := &models.CustomClaims{
		UserId:   userId,
		Role:     models.RoleAdmin,
		Elevated: elevated,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(jwtKey)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler signs an admin in with email and password. Seekers and owners
// hold valid credentials too, so the role on the user document is what gates
// access.
func LoginHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request loginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		defer r.Body.Close()

		credential, err := db.GetCredentialByEmail(request.Email)
		if err != nil {
			http.Error(w, `Invalid email or password`, http.StatusUnauthorized)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(request.Password)); err != nil {
			http.Error(w, `Invalid email or password`, http.StatusUnauthorized)
			return
		}

		user, err := db.GetUserById(credential.Id)
		if err != nil || user.Role != models.RoleAdmin {
			http.Error(w, `Admin access only`, http.StatusForbidden)
			return
		}

		tokenStr, err := NewToken(user.Id, false, sessionLifetime)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set(`Content-Type`, `application/json`)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.AuthorizationToken{Token: tokenStr})
	})
}

type reauthRequest struct {
	Password string `json:"password"`
}

// ReauthHandler re-checks the signed-in admin's password and hands back a
// short-lived elevated token.
func ReauthHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r)

		var request reauthRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		defer r.Body.Close()

		user, err := db.GetUserById(claims.UserId)
		if err != nil {
			http.Error(w, `User unauthorized`, http.StatusUnauthorized)
			return
		}

		credential, err := db.GetCredentialByEmail(user.Email)
		if err != nil {
			http.Error(w, `User unauthorized`, http.StatusUnauthorized)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(request.Password)); err != nil {
			http.Error(w, `Invalid password`, http.StatusUnauthorized)
			return
		}

		tokenStr, err := NewToken(user.Id, true, elevatedLifetime)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set(`Content-Type`, `application/json`)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.AuthorizationToken{Token: tokenStr})
	})
}
