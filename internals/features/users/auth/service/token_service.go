package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "berjamaah_backend/internals/features/users/auth/model"
	userModel "berjamaah_backend/internals/features/users/user/model"
	helpers "berjamaah_backend/internals/helpers"
)

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := helpers.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	// Parse & validate refresh JWT
	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh ada di DB
	hash := computeRefreshHash(refreshCookie, refreshSecret)
	var stored authModel.RefreshTokenModel
	if err := db.Where("token = ?", hash).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if time.Now().UTC().After(stored.ExpiresAt) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token kadaluarsa")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if user.IsBanned {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	// ROTATE: hapus token lama, terbitkan pasangan baru
	if err := db.Delete(&authModel.RefreshTokenModel{}, "token = ?", hash).Error; err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	access, _, err := issueTokens(db, c, user)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	return helpers.JsonOK(c, "Token berhasil diperbarui", fiber.Map{
		"access_token": access,
	})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helpers.GetRawAccessToken(c)
	if strings.TrimSpace(raw) != "" {
		// blacklist access token sampai TTL habis
		if err := db.Create(&authModel.TokenBlacklistModel{
			Token:     raw,
			ExpiredAt: time.Now().UTC().Add(accessTTLDefault),
		}).Error; err != nil {
			log.Println("[ERROR] blacklist token:", err)
		}
	}

	// hapus hash refresh milik sesi ini
	if refreshCookie := helpers.GetRefreshTokenFromCookie(c); refreshCookie != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			hash := computeRefreshHash(refreshCookie, refreshSecret)
			_ = db.Delete(&authModel.RefreshTokenModel{}, "token = ?", hash).Error
		}
	}

	clearAuthCookies(c)
	return helpers.JsonOK(c, "Logout berhasil", nil)
}
