package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "berjamaah_backend/internals/features/users/user/model"
)

func TestComputeRefreshHashDeterministic(t *testing.T) {
	h1 := computeRefreshHash("token-a", "secret")
	h2 := computeRefreshHash("token-a", "secret")
	assert.Equal(t, h1, h2)

	assert.NotEqual(t, h1, computeRefreshHash("token-b", "secret"))
	assert.NotEqual(t, h1, computeRefreshHash("token-a", "secret-lain"))
	assert.Len(t, h1, 32) // SHA-256
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(assert.AnError))
}

func TestBuildAccessClaims(t *testing.T) {
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	u := userModel.UserModel{
		ID:       uuid.New(),
		UserName: "fulan",
		Role:     "user",
	}

	claims := buildAccessClaims(u, now)

	assert.Equal(t, u.ID.String(), claims["id"])
	assert.Equal(t, "fulan", claims["user_name"])
	assert.Equal(t, "user", claims["role"])
	assert.Equal(t, now.Unix(), claims["iat"])
	assert.Equal(t, now.Add(accessTTLDefault).Unix(), claims["exp"])

	// claims harus bisa ditandatangani
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
}

func TestBuildRefreshClaims(t *testing.T) {
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	userID := uuid.New()

	claims := buildRefreshClaims(userID, now)

	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, now.Add(refreshTTLDefault).Unix(), claims["exp"])
}
