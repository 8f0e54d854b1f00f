package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"berjamaah_backend/internals/features/donations/donation/controller"
)

// DonationPublicRoutes: donasi tamu + webhook gateway
func DonationPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDonationController(db)

	donations := r.Group("/donations")
	donations.Post("/", ctl.CreateDonation)
}

// DonationWebhookRoutes dipasang di luar group auth, path-nya masuk skip list
// AuthMiddleware
func DonationWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDonationController(db)
	r.Post("/donations/notification", ctl.HandleNotification)
}

// DonationUserRoutes: riwayat & bukti transfer milik sendiri
func DonationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDonationController(db)

	donations := r.Group("/donations")
	donations.Get("/", ctl.GetUserDonations)
	donations.Get("/:id", ctl.GetDonationByID)
	donations.Post("/:id/proofs", ctl.AddDonationProof)
}

// DonationAdminRoutes: antrian verifikasi + aksi verifikasi
func DonationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDonationController(db)

	donations := r.Group("/donations")
	donations.Get("/", ctl.GetAllDonations)
	donations.Patch("/:id/verify", ctl.VerifyDonation)
	donations.Patch("/:id/confirm", ctl.ConfirmDonation)
	donations.Patch("/:id/reject", ctl.RejectDonation)
}
