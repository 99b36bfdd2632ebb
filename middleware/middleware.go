package middleware

import (
	"context"
	"fmt"
	"net/http"

	"mercato/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	UserID string `json:"userId"`
	Phone  string `json:"phone"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func parseBearer(header string) (*Claims, error) {
	if len(header) < 8 || header[:7] != "Bearer " {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(header[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	// Expired, malformed and bad-signature tokens all collapse into the
	// same generic failure; the caller never learns which.
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Authenticate requires a valid user bearer token and stores the user id
// in the request context.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := parseBearer(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.PhoneKey, claims.Phone)
		if claims.Role != "" {
			ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
		}
		next(w, r.WithContext(ctx), ps)
	}
}

// AuthenticateAdmin additionally requires the admin role claim.
func AuthenticateAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := parseBearer(r.Header.Get("Authorization"))
		if err != nil || claims.Role != "admin" {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
		next(w, r.WithContext(ctx), ps)
	}
}

// ValidateJWT parses a raw Authorization header value into claims for
// callers that sit outside the handler-wrapping middleware.
func ValidateJWT(header string) (*Claims, error) {
	return parseBearer(header)
}
