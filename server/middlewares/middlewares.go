package middlewares

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/diskusiapp/diskusi/service"
	Logger "github.com/diskusiapp/diskusi/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	principalKey = "principal"
	tokenTTL     = 24 * time.Hour
)

var jwtSecret []byte

// Setup initializes package scoped state needed to perform middleware
// functionalities. This function must be called before any middleware is
// used.
func Setup() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Server side authorization is crucial, abort directly.
		Logger.Log.Fatal("JWT_SECRET is not set")
	}
	jwtSecret = []byte(secret)
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken mints a signed token carrying the user's id and role.
func IssueToken(userID, role string) (string, error) {
	c := claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(jwtSecret)
}

func parseToken(token string) (*claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return c, nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// Auth verifies the bearer token and stores the verified principal (id,
// role) in the request context. Handlers read it back with GetPrincipal;
// nothing downstream ever re-parses the token.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		claims, err := parseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(principalKey, service.Principal{UserID: claims.Subject, Role: claims.Role})
		c.Next()
	}
}

// OptionalAuth sets the principal when a valid token is present and lets
// anonymous requests through. Used on public reads that still want the
// viewer's is_liked/is_bookmarked bits.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := parseToken(token); err == nil {
				c.Set(principalKey, service.Principal{UserID: claims.Subject, Role: claims.Role})
			}
		}
		c.Next()
	}
}

// AdminOnly gates the admin API group. Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok || !principal.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the verified principal set by Auth/OptionalAuth.
func GetPrincipal(c *gin.Context) (service.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return service.Principal{}, false
	}
	principal, ok := v.(service.Principal)
	return principal, ok
}
