package globals

import (
	"context"
	"log"
	"os"
)

var JwtSecret []byte

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"
const PhoneKey ContextKey = "phone"

var Ctx = context.Background()

// LoadSecrets reads signing material from the environment. The server must
// not start with an empty JWT secret.
func LoadSecrets() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	JwtSecret = []byte(secret)
}
