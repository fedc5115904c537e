package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skillvue/skillvue-backend/internal/config"
)

// ErrNoSecret is returned when token issuing is requested without a configured
// signing secret.
var ErrNoSecret = errors.New("jwt secret not configured")

// GenerateRoomToken creates a signed JWT granting entry to an interview room.
// Issued after a successful passcode check.
func GenerateRoomToken(cfg *config.Config, roomID string, ttl time.Duration) (string, error) {
	if cfg.JWT.Secret == "" {
		return "", ErrNoSecret
	}
	claims := jwt.MapClaims{
		"room":  roomID,
		"scope": "interview-room",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.JWT.Secret))
}

// ParseRoomToken validates a room token and returns the room id it grants.
func ParseRoomToken(cfg *config.Config, raw string) (string, error) {
	if cfg.JWT.Secret == "" {
		return "", ErrNoSecret
	}
	parsed, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", errors.New("invalid room token")
	}
	room, _ := claims["room"].(string)
	if room == "" {
		return "", errors.New("room claim missing")
	}
	return room, nil
}
