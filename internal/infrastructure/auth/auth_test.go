package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.NoError(t, h.Verify("admin123", hash))
	assert.Error(t, h.Verify("wrong", hash))
	assert.Error(t, h.Verify("admin123", "not-a-hash"))
}

func TestNewBcryptPasswordHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", 60)

	token, err := svc.Generate(42, authorization.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("secret", 60)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewJWTService("other", 60).Generate(1, authorization.RoleUser)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		restore := biztime.SetClock(func() time.Time { return past })
		token, err := svc.Generate(1, authorization.RoleUser)
		restore()
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := &Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.Error(t, err)
	})
}

func TestNewJWTService_DefaultExpiry(t *testing.T) {
	assert.Equal(t, 7*24*60, NewJWTService("s", 0).AccessExpMinutes())
}
