package middleware

import (
	"time"

	"ai-roadmap-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "roadmap_session"

// SessionIDKey is the context key under which the session ID is stored
const SessionIDKey = "session_id"

const sessionTTL = 24 * time.Hour

// Session maintains a signed session cookie so consecutive submissions from
// the same browser can be correlated in logs. It is continuity, not access
// control: requests without a valid cookie simply get a fresh one.
func Session(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.SessionSecret)

	return func(c *gin.Context) {
		sessionID := ""

		if raw, err := c.Cookie(SessionCookieName); err == nil {
			if id, ok := parseSessionToken(raw, secret); ok {
				sessionID = id
			}
		}

		if sessionID == "" {
			sessionID = uuid.New().String()
			token, err := signSessionToken(sessionID, secret)
			if err != nil {
				logrus.WithField("error", err).Warn("failed to sign session token")
			} else {
				c.SetCookie(SessionCookieName, token, int(sessionTTL.Seconds()), "/", "", cfg.IsProduction(), true)
			}
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

func signSessionToken(sessionID string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(sessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parseSessionToken(raw string, secret []byte) (string, bool) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, ok := claims["sid"].(string)
	return sid, ok && sid != ""
}
