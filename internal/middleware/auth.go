package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jsliwa/fishcards/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	UserIDKey = "userID"

	// AccessTokenCookie is the session cookie set by the BaaS auth flow.
	AccessTokenCookie = "sb-access-token"
)

// Authenticator validates BaaS-issued session tokens. Sessions are never
// minted or refreshed here; only the HS256 signature and expiry are checked.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(jwtSecret string) *Authenticator {
	return &Authenticator{secret: []byte(jwtSecret)}
}

func (a *Authenticator) userIDFromRequest(c *gin.Context) (uuid.UUID, bool) {
	token := ""
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimPrefix(header, "Bearer ")
	} else if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		token = cookie
	}
	if token == "" {
		return uuid.Nil, false
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		log.Debug().Err(err).Msg("Rejected session token")
		return uuid.Nil, false
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// RequireAuth aborts with 401 unless the request carries a valid session.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := a.userIDFromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "User not authenticated."})
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth attaches the user id when a valid session is present but lets
// anonymous requests through.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := a.userIDFromRequest(c); ok {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id set by RequireAuth/OptionalAuth.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
