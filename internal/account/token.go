package account

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTLMinutes = 60

func tokenTTL() time.Duration {
	raw := os.Getenv("JWT_EXPIRY_MINUTES")
	if raw == "" {
		return defaultTokenTTLMinutes * time.Minute
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return defaultTokenTTLMinutes * time.Minute
	}
	return time.Duration(minutes) * time.Minute
}

// generateToken issues an HS256 token whose subject is the username. The
// middleware resolves the linked employee on every request, so the token
// itself carries no role or employee claims.
func generateToken(username string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
