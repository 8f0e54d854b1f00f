package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"berjamaah_backend/internals/constants"
	"berjamaah_backend/internals/features/users/user/dto"
	"berjamaah_backend/internals/features/users/user/model"
	helpers "berjamaah_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GET /api/u/users/me
func (ctl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helpers.JsonOK(c, "Profil berhasil diambil", dto.ToUserResponse(user))
}

// PUT /api/u/users/me
func (ctl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctl.DB.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helpers.JsonUpdated(c, "Profil berhasil diperbarui", dto.ToUserResponse(user))
}

// GET /api/u/users/:id — admin atau dirinya sendiri
func (ctl *UserController) GetUserByID(c *fiber.Ctx) error {
	callerID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	if callerID != targetID && helpers.GetRoleFromToken(c) != constants.RoleAdmin {
		return helpers.JsonError(c, fiber.StatusForbidden, "Anda tidak berhak melihat user ini")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helpers.JsonOK(c, "User berhasil diambil", dto.ToUserResponse(user))
}

// PATCH /api/a/users/:id/role — admin
func (ctl *UserController) UpdateUserRole(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var req dto.UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	res := ctl.DB.Model(&model.UserModel{}).
		Where("id = ?", targetID).
		Update("role", req.Role)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui role")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helpers.JsonUpdated(c, "Role user berhasil diperbarui", fiber.Map{
		"id":   targetID,
		"role": req.Role,
	})
}

// PATCH /api/a/users/:id/ban — admin
func (ctl *UserController) BanUser(c *fiber.Ctx) error {
	return ctl.setBanned(c, true, "User berhasil dibanned")
}

// PATCH /api/a/users/:id/unban — admin
func (ctl *UserController) UnbanUser(c *fiber.Ctx) error {
	return ctl.setBanned(c, false, "Ban user berhasil dicabut")
}

func (ctl *UserController) setBanned(c *fiber.Ctx, banned bool, message string) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	res := ctl.DB.Model(&model.UserModel{}).
		Where("id = ?", targetID).
		Update("is_banned", banned)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status ban")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helpers.JsonUpdated(c, message, fiber.Map{
		"id":        targetID,
		"is_banned": banned,
	})
}
