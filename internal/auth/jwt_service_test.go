package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)}
	svc := NewJWTService("test-secret", WithClock(clock.Now))

	token, err := svc.Issue(42)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, clock.now.Add(TokenExpiry).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_Expiry(t *testing.T) {
	issuedAt := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		valid   bool
	}{
		{name: "fresh", elapsed: 0, valid: true},
		{name: "just before 24h", elapsed: TokenExpiry - time.Minute, valid: true},
		{name: "at 24h", elapsed: TokenExpiry, valid: false},
		{name: "after 24h", elapsed: TokenExpiry + time.Second, valid: false},
		{name: "days later", elapsed: 72 * time.Hour, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: issuedAt}
			svc := NewJWTService("test-secret", WithClock(clock.Now))

			token, err := svc.Issue(7)
			require.NoError(t, err)

			clock.now = issuedAt.Add(tt.elapsed)
			claims, err := svc.Verify(token)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, uint(7), claims.UserID)
			} else {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			}
		})
	}
}

func TestJWTService_RejectsTampering(t *testing.T) {
	svc := NewJWTService("test-secret")
	token, err := svc.Issue(1)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	unsigned, err := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "bad signature", token: parts[0] + "." + parts[1] + ".c2lnbmF0dXJl"},
		{name: "swapped payload", token: parts[0] + ".eyJ1c2VyX2lkIjo5OTl9." + parts[2]},
		{name: "alg none", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_RotatedSecret(t *testing.T) {
	token, err := NewJWTService("old-secret").Issue(3)
	require.NoError(t, err)

	_, err = NewJWTService("new-secret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsMissingUser(t *testing.T) {
	svc := NewJWTService("test-secret")
	token, err := svc.Issue(0)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
