package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shishant-cloud/ClassSchedule/internal/models"
)

// SessionCookie is the HttpOnly cookie carrying the signed session token.
const SessionCookie = "session"

const sessionTTL = 30 * 24 * time.Hour

const userKey = "user"

// Claims is the session payload: the three fields the app has always kept for
// a logged-in user, signed instead of server-side.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IssueSession signs a session token for the user.
func IssueSession(user models.User, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSession validates a session token and returns its claims.
func ParseSession(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// SetSession issues a token for the user and stores it in the session cookie.
func SetSession(c *gin.Context, user models.User, secret string) error {
	token, err := IssueSession(user, secret)
	if err != nil {
		return err
	}
	c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
	return nil
}

// ClearSession expires the session cookie.
func ClearSession(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// SessionRequired redirects to /login unless the request carries a valid
// session cookie; on success the claims are stored in the request context.
func SessionRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		claims, err := ParseSession(tokenStr, secret)
		if err != nil {
			ClearSession(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(userKey, claims)
		c.Next()
	}
}

// RequireRole gates a route behind a role; a non-matching session is sent back
// to /login like any other auth failure.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok || claims.Role != role {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session claims set by SessionRequired.
func CurrentUser(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
