package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"berjamaah_backend/internals/features/programs/program/dto"
	"berjamaah_backend/internals/features/programs/program/model"
	"berjamaah_backend/internals/features/programs/program/service"
	helpers "berjamaah_backend/internals/helpers"
)

/* ==========================
   Admin: approval & lifecycle
========================== */

// GET /api/a/programs/drafts — antrian review admin
func (ctl *ProgramController) GetDraftPrograms(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	base := ctl.DB.Model(&model.ProgramModel{}).
		Where("program_status = ?", service.StatusDraft)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung draft")
	}

	var programs []model.ProgramModel
	if err := ctl.DB.
		Where("program_status = ?", service.StatusDraft).
		Preload("ProgramPeriods").
		Order("created_at asc").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&programs).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil draft")
	}

	items := make([]dto.ProgramResponse, 0, len(programs))
	for _, p := range programs {
		items = append(items, dto.ToProgramResponse(p))
	}
	return helpers.JsonOK(c, "Draft program berhasil diambil", dto.ProgramListResponse{
		Items:   items,
		Total:   total,
		HasMore: int64(paging.Offset+paging.Limit) < total,
	})
}

// PATCH /api/a/programs/:id/approve
func (ctl *ProgramController) ApproveProgram(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Program ID tidak valid")
	}
	adminID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	program, err := service.ApproveProgram(ctl.DB, programID, adminID)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonUpdated(c, "Program berhasil di-approve ✅", dto.ToProgramResponse(*program))
}

// PATCH /api/a/programs/:id/reject
func (ctl *ProgramController) RejectProgram(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Program ID tidak valid")
	}
	adminID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	var req dto.RejectProgramRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	program, err := service.RejectProgram(ctl.DB, programID, adminID, req.Reason)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonUpdated(c, "Program ditolak", dto.ToProgramResponse(*program))
}

// PATCH /api/a/programs/:id/pause
func (ctl *ProgramController) PauseProgram(c *fiber.Ctx) error {
	return ctl.transition(c, service.ActionPause, "Program dijeda")
}

// PATCH /api/a/programs/:id/resume
func (ctl *ProgramController) ResumeProgram(c *fiber.Ctx) error {
	return ctl.transition(c, service.ActionResume, "Program diaktifkan kembali")
}

// PATCH /api/a/programs/:id/end
func (ctl *ProgramController) EndProgram(c *fiber.Ctx) error {
	return ctl.transition(c, service.ActionEnd, "Program diakhiri")
}

func (ctl *ProgramController) transition(c *fiber.Ctx, action service.ProgramAction, okMsg string) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Program ID tidak valid")
	}

	program, err := service.TransitionProgram(ctl.DB, programID, action)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonUpdated(c, okMsg, dto.ToProgramResponse(*program))
}
