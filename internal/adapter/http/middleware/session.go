package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/session"
	"warranty_hub/pkg"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const sessionKey = "warranty_hub.session"

// SessionAuth validates the dashboard bearer token and stores the resulting
// session in the gin context. Tokens invalidated by a prior 401 from the
// warranty backend are rejected here until the caller signs in again.
type SessionAuth struct {
	jwtSecret []byte
	store     *session.Store
}

func NewSessionAuth(store *session.Store) *SessionAuth {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-key-change-in-production"
	}
	return &SessionAuth{jwtSecret: []byte(secret), store: store}
}

func (a *SessionAuth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		sess, err := a.parseSession(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}
		if a.store.IsInvalidated(token) {
			abortUnauthorized(c)
			return
		}

		SetSession(c, sess)
		c.Next()
	}
}

// SetSession stores the session in the gin context under the key SessionFrom
// reads.
func SetSession(c *gin.Context, sess *session.Session) {
	c.Set(sessionKey, sess)
}

// SessionFrom returns the session stored by the middleware. Handlers behind
// SessionAuth can rely on it being present.
func SessionFrom(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

func (a *SessionAuth) parseSession(tokenString string) (*session.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	accountID, ok := claims["account_id"].(string)
	if !ok || accountID == "" {
		return nil, ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return nil, ErrInvalidToken
	}
	// full_name is informational only; missing is fine.
	name, _ := claims["full_name"].(string)

	return &session.Session{
		Token:     tokenString,
		AccountID: accountID,
		Name:      name,
		Role:      entities.Role(roleStr),
	}, nil
}

func extractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}

func abortUnauthorized(c *gin.Context) {
	appErr := pkg.NewSessionExpiredError()
	c.AbortWithStatusJSON(http.StatusUnauthorized, appErr.ToHTTPError())
}
