package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"berjamaah_backend/internals/features/users/auth/service"
	helpers "berjamaah_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var in service.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ac.Validate.Struct(in); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	return service.Register(ac.DB, c, in)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var in service.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ac.Validate.Struct(in); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	return service.Login(ac.DB, c, in)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var in service.LoginGoogleInput
	if err := c.BodyParser(&in); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ac.Validate.Struct(in); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	return service.LoginGoogle(ac.DB, c, in)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}
