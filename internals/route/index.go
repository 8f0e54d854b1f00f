package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"berjamaah_backend/internals/constants"
	donationRoute "berjamaah_backend/internals/features/donations/donation/route"
	programRoute "berjamaah_backend/internals/features/programs/program/route"
	authRoute "berjamaah_backend/internals/features/users/auth/route"
	userRoute "berjamaah_backend/internals/features/users/user/route"
	helpers "berjamaah_backend/internals/helpers"
	authMiddleware "berjamaah_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// webhook Midtrans: tanpa auth, path ada di skip list AuthMiddleware
	donationRoute.DonationWebhookRoutes(app.Group("/api"), db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa token
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → wajib token valid
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN → token + role admin
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("panel admin"), constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserRoutes(private, db)
	userRoute.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Program routes...")
	programRoute.ProgramPublicRoutes(public, db)
	programRoute.ProgramUserRoutes(private, db)
	programRoute.ProgramAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Donation routes...")
	donationRoute.DonationPublicRoutes(public, db)
	donationRoute.DonationUserRoutes(private, db)
	donationRoute.DonationAdminRoutes(admin, db)

	// sanity endpoint untuk cek token
	private.Get("/private-data", func(c *fiber.Ctx) error {
		userID, err := helpers.GetUserIDFromToken(c)
		if err != nil {
			return helpers.FromFiberError(c, err)
		}
		return helpers.JsonOK(c, "Token valid", fiber.Map{"user_id": userID})
	})
}
