package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClassifyBanCheck(t *testing.T) {
	assert.NoError(t, classifyBanCheck(nil))

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"user tidak ditemukan", gorm.ErrRecordNotFound, fiber.StatusUnauthorized},
		{"user banned", errUserBanned, fiber.StatusForbidden},
		// kegagalan DB bukan berarti akun dinonaktifkan
		{"db error", errors.New("connection refused"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyBanCheck(tc.err)
			fe, ok := err.(*fiber.Error)
			require.True(t, ok, "expected *fiber.Error, got %T", err)
			assert.Equal(t, tc.want, fe.Code)
		})
	}
}

func TestValidateTokenExpiry(t *testing.T) {
	future := jwt.MapClaims{"exp": float64(time.Now().Add(time.Hour).Unix())}
	assert.NoError(t, validateTokenExpiry(future, 30*time.Second))

	past := jwt.MapClaims{"exp": float64(time.Now().Add(-time.Hour).Unix())}
	assert.Error(t, validateTokenExpiry(past, 30*time.Second))

	// baru lewat beberapa detik masih lolos karena skew
	justExpired := jwt.MapClaims{"exp": float64(time.Now().Add(-5 * time.Second).Unix())}
	assert.NoError(t, validateTokenExpiry(justExpired, 30*time.Second))

	assert.Error(t, validateTokenExpiry(jwt.MapClaims{}, 0))
	assert.Error(t, validateTokenExpiry(jwt.MapClaims{"exp": "besok"}, 0))
}
