package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"berjamaah_backend/internals/features/users/user/controller"
)

// UserRoutes: profil & lookup user (group sudah ber-auth)
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	users := r.Group("/users")
	users.Get("/me", ctl.GetProfile)
	users.Put("/me", ctl.UpdateProfile)
	users.Get("/:id", ctl.GetUserByID)
}

// UserAdminRoutes: mutasi role/ban oleh admin
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	users := r.Group("/users")
	users.Patch("/:id/role", ctl.UpdateUserRole)
	users.Patch("/:id/ban", ctl.BanUser)
	users.Patch("/:id/unban", ctl.UnbanUser)
}
