package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"berjamaah_backend/internals/configs"
	authModel "berjamaah_backend/internals/features/users/auth/model"
	userModel "berjamaah_backend/internals/features/users/user/model"
	helpers "berjamaah_backend/internals/helpers"
)

/* ==========================
   Const & small helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// driver pgx menyisipkan SQLSTATE di pesan
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}

/* ==========================
   Claims & cookies
========================== */

func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":        u.ID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func setAuthCookies(c *fiber.Ctx, access, refresh string, now time.Time) {
	secure := os.Getenv("RAILWAY_ENVIRONMENT") != ""
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  now.Add(accessTTLDefault),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  expired,
			HTTPOnly: true,
			Path:     "/",
		})
	}
}

// issueTokens membuat access+refresh, menyimpan hash refresh, dan set cookies
func issueTokens(db *gorm.DB, c *fiber.Ctx, u userModel.UserModel) (string, string, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	now := nowUTC()
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	if err := db.Create(&authModel.RefreshTokenModel{
		UserID:    u.ID,
		Token:     computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}).Error; err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setAuthCookies(c, access, refresh, now)
	return access, refresh, nil
}

/* ==========================
   REGISTER
========================== */

type RegisterInput struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx, in RegisterInput) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName: in.UserName,
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: string(hashed),
	}
	user.SetDefaultValues()

	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] register:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}

	return helpers.JsonCreated(c, "Pendaftaran berhasil. Silakan login.", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

/* ==========================
   LOGIN
========================== */

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx, in LoginInput) error {
	var user userModel.UserModel
	if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(in.Email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if user.IsBanned {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, _, err := issueTokens(db, c, user)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

/* ==========================
   LOGIN GOOGLE
========================== */

type LoginGoogleInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// POST /api/auth/login-google
// Verifikasi Google ID token, buat user baru saat pertama kali login.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx, in LoginGoogleInput) error {
	clientID := configs.GoogleClientID
	if clientID == "" {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID belum diset")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(in.IDToken, []string{clientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Google ID token tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(in.IDToken)
	if err != nil || claimSet.Email == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Gagal membaca klaim Google")
	}

	email := strings.ToLower(claimSet.Email)
	var user userModel.UserModel
	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// generate password acak; login selanjutnya tetap via Google
		random, hashErr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if hashErr != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses akun Google")
		}
		user = userModel.UserModel{
			UserName: claimSet.Name,
			Email:    email,
			Password: string(random),
			GoogleID: strptr(claimSet.Sub),
		}
		user.SetDefaultValues()
		if user.UserName == "" {
			user.UserName = strings.Split(email, "@")[0]
		}
		if err := db.Create(&user).Error; err != nil {
			log.Println("[ERROR] login-google create:", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun Google")
		}
	case err != nil:
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if user.IsBanned {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	access, _, err := issueTokens(db, c, user)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	return helpers.JsonOK(c, "Login Google berhasil", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}
