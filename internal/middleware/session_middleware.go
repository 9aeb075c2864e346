package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the signed cart-session token.
const SessionCookie = "cart_session"

// SessionLocal is the fiber.Ctx locals key holding the session ID.
const SessionLocal = "session_id"

const sessionDuration = 24 * time.Hour

// CartSession identifies the caller's cart. A valid token on the request
// is honored; anything else (first visit, expired or tampered token) gets
// a fresh anonymous session. The cart itself starts empty on the first
// dispatch, so issuing a new session is never an error.
func CartSession(secret string) fiber.Handler {
	secretBytes := []byte(secret)

	return func(c *fiber.Ctx) error {
		sessionID := ""

		if tokenString := c.Cookies(SessionCookie); tokenString != "" {
			id, err := parseSessionToken(tokenString, secretBytes)
			if err != nil {
				log.Printf("Session token rejected: %v", err)
			} else {
				sessionID = id
			}
		}

		if sessionID == "" {
			sessionID = uuid.New().String()
			tokenString, err := issueSessionToken(sessionID, secretBytes)
			if err != nil {
				log.Printf("Failed to issue session token: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "Could not establish a session",
				})
			}
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    tokenString,
				Expires:  time.Now().Add(sessionDuration),
				HTTPOnly: true,
			})
		}

		c.Locals(SessionLocal, sessionID)
		return c.Next()
	}
}

// SessionID extracts the session ID placed in the context by CartSession.
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(SessionLocal).(string)
	return id
}

func issueSessionToken(sessionID string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(sessionDuration).Unix(),
		"iat":        time.Now().Unix(),
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

func parseSessionToken(tokenString string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", fmt.Errorf("session token is missing the session id")
	}
	return sessionID, nil
}
