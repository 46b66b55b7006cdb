package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage"
)

type contextKey string

const claimsKey contextKey = `claims`

// AuthorizationMiddleware validates the bearer token and confirms the admin
// user document still exists. Deleted admins are locked out even while their
// token is unexpired.
func AuthorizationMiddleware(next http.Handler, db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(`Authorization`)
		if !strings.HasPrefix(authHeader, `Bearer `) {
			http.Error(w, `Invalid authorization header`, http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, `Bearer `)

		claims := &models.CustomClaims{}

		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return jwtKey, nil
		})

		if err != nil || !token.Valid {
			http.Error(w, `User unauthorized`, http.StatusUnauthorized)
			return
		}

		if claims.Role != models.RoleAdmin {
			http.Error(w, `Admin access only`, http.StatusForbidden)
			return
		}

		user, err := db.GetUserById(claims.UserId)
		if err != nil || user.Role != models.RoleAdmin {
			http.Error(w, `Invalid authorization token`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ClaimsFromContext(r *http.Request) *models.CustomClaims {
	claims, _ := r.Context().Value(claimsKey).(*models.CustomClaims)
	return claims
}
