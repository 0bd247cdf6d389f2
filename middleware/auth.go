package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Session and context key holding the authenticated user's email.
const EmailKey = "Email"

func jwtSecret() []byte {
	return []byte(os.Getenv("KEY"))
}

// AuthRequired checks the session cookie first and falls back to a
// Bearer JWT, so both browser clients and API clients work. The
// resolved email is stored on the gin context for the handlers.
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	if email, ok := session.Get(EmailKey).(string); ok && email != "" {
		c.Set(EmailKey, email)
		c.Next()
		return
	}

	email, err := JWTDecoder(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.Set(EmailKey, email)
	c.Next()
}

// Email returns the authenticated user's email set by AuthRequired.
func Email(c *gin.Context) string {
	email, _ := c.Get(EmailKey)
	s, _ := email.(string)
	return s
}

// GenerateToken signs a 24h JWT carrying the user's email. Issued at
// login as the session-less alternative for API clients.
func GenerateToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(jwtSecret())
}

// JWTDecoder extracts and validates the Bearer token of a request,
// returning the email it carries.
func JWTDecoder(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	return decodeBearer(header)
}

// SocketioJWTDecoder validates the JWT set on a socket.io handshake's
// auth data ("authorization" field, "Bearer " prefix).
func SocketioJWTDecoder(authData map[string]interface{}) (string, error) {
	header, _ := authData["authorization"].(string)
	return decodeBearer(header)
}

func decodeBearer(header string) (string, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", errors.New("missing Bearer token")
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("token carries no email")
	}
	return email, nil
}
