package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenExpiry is the lifetime of a session token. There is no refresh; clients log in again.
const TokenExpiry = 24 * time.Hour

// ErrInvalidToken is the only error Verify returns, whatever check failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	now    func() time.Time
	parser *jwt.Parser
}

// Option configures a JWTService.
type Option func(*JWTService)

// WithClock overrides the time source used for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string, opts ...Option) *JWTService {
	s := &JWTService{
		secret: []byte(secret),
		now:    time.Now,
		// Expiry is checked against s.now below, not jwt's package clock.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue generates a signed token for the user that expires after TokenExpiry.
func (s *JWTService) Issue(userID uint) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token and returns its claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if !claims.VerifyExpiresAt(s.now(), true) || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
