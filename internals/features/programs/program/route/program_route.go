package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"berjamaah_backend/internals/features/programs/program/controller"
)

// ProgramPublicRoutes: katalog program untuk donatur (tanpa auth)
func ProgramPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewProgramController(db)

	programs := r.Group("/programs")
	programs.Get("/", ctl.GetAll)
	programs.Get("/:id", ctl.GetByID)
	programs.Get("/:id/stats", ctl.GetProgramStats)
	programs.Get("/:id/periods", ctl.GetProgramPeriods)
}

// ProgramUserRoutes: pembuatan & pengelolaan program milik sendiri
func ProgramUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewProgramController(db)

	programs := r.Group("/programs")
	programs.Post("/", ctl.CreateProgram)
	programs.Post("/one-time", ctl.CreateOneTime)
	programs.Post("/recurring", ctl.CreateRecurring)
	programs.Post("/selected-dates", ctl.CreateSelectedDates)
	programs.Put("/:id", ctl.UpdateProgram)
	programs.Delete("/:id", ctl.DeleteProgram)
	programs.Post("/:id/periods", ctl.CreateProgramPeriod)

	periods := r.Group("/program-periods")
	periods.Put("/:id", ctl.UpdateProgramPeriod)
	periods.Delete("/:id", ctl.DeleteProgramPeriod)
}

// ProgramAdminRoutes: antrian review + aksi lifecycle
func ProgramAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewProgramController(db)

	programs := r.Group("/programs")
	programs.Get("/drafts", ctl.GetDraftPrograms)
	programs.Patch("/:id/approve", ctl.ApproveProgram)
	programs.Patch("/:id/reject", ctl.RejectProgram)
	programs.Patch("/:id/pause", ctl.PauseProgram)
	programs.Patch("/:id/resume", ctl.ResumeProgram)
	programs.Patch("/:id/end", ctl.EndProgram)
}
