package auth

import (
	"time"

	"mercato/globals"
	"mercato/middleware"
	"mercato/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = time.Hour

// GenerateToken signs a 1h session token carrying the user id and phone.
func GenerateToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		UserID: user.UserID,
		Phone:  user.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// GenerateAdminToken signs a 1h admin token with the role claim set.
func GenerateAdminToken(admin models.Admin) (string, error) {
	claims := &middleware.Claims{
		UserID: admin.AdminID,
		Phone:  admin.Phone,
		Role:   admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
