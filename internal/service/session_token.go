package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenService emite tokens HS256 atados al slug de una sesión. Sin
// secreto configurado el servicio queda deshabilitado y las escrituras no
// exigen token.
type SessionTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

type SessionClaims struct {
	Slug string `json:"slug"`
	jwt.RegisteredClaims
}

var (
	ErrSessionTokenInvalid = errors.New("session token invalid")
	ErrSessionTokenExpired = errors.New("session token expired")
)

func NewSessionTokenService(secret string, ttl time.Duration) *SessionTokenService {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &SessionTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "dog-personality-quiz",
	}
}

func (s *SessionTokenService) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

// Issue devuelve "" cuando el servicio está deshabilitado.
func (s *SessionTokenService) Issue(slug string) (string, error) {
	if !s.Enabled() {
		return "", nil
	}
	if strings.TrimSpace(slug) == "" {
		return "", ErrSessionTokenInvalid
	}
	now := time.Now().UTC()
	claims := SessionClaims{
		Slug: slug,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   slug,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida firma, emisor y expiración, y que el token pertenezca al slug.
func (s *SessionTokenService) Verify(tokenString, slug string) error {
	if !s.Enabled() {
		return nil
	}
	if strings.TrimSpace(tokenString) == "" {
		return ErrSessionTokenInvalid
	}
	var claims SessionClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrSessionTokenExpired
		}
		return ErrSessionTokenInvalid
	}
	if claims.Issuer != s.issuer || claims.Slug == "" || claims.Subject != claims.Slug {
		return ErrSessionTokenInvalid
	}
	if claims.Slug != slug {
		return ErrSessionTokenInvalid
	}
	return nil
}
