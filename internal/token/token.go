package token

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie carrying the token for browser clients.
const CookieName = "token"

// ErrInvalidToken is returned for any token that fails signature, expiry or
// claims checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload: just the user id plus registered claims.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Service issues and verifies signed session tokens.
type Service struct {
	secret       []byte
	ttl          time.Duration
	secureCookie bool
}

// NewService creates a token service. secureCookie should be true in
// production so the cookie is only sent over HTTPS.
func NewService(secret string, ttl time.Duration, secureCookie bool) *Service {
	return &Service{
		secret:       []byte(secret),
		ttl:          ttl,
		secureCookie: secureCookie,
	}
}

// Generate signs a token embedding the user id with the configured expiry.
func (s *Service) Generate(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies a token and returns the embedded user id.
func (s *Service) Parse(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

// SetCookie attaches the token as an http-only, same-site-strict cookie. The
// same token is also returned in the JSON body for non-browser clients.
func (s *Service) SetCookie(c *gin.Context, tok string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, tok, int(s.ttl.Seconds()), "/", "", s.secureCookie, true)
}
