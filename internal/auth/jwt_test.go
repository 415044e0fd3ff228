package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GenerateAccessToken("admin-1", "owner@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "owner@example.com", claims.Email)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken("admin-1", "owner@example.com")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GenerateAccessToken("admin-1", "owner@example.com")
	require.NoError(t, err)

	other := NewJWTManager("different-secret", time.Hour)
	_, err = other.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTGarbageToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	_, err := m.ParseAndValidate("not.a.token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasherWithCost(4)

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, h.Compare(hash, "correct horse battery staple"))
	assert.Error(t, h.Compare(hash, "wrong password"))
}
