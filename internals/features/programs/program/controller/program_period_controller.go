package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"berjamaah_backend/internals/constants"
	"berjamaah_backend/internals/features/programs/program/dto"
	"berjamaah_backend/internals/features/programs/program/model"
	helpers "berjamaah_backend/internals/helpers"
)

/* ==========================
   Period CRUD (creator atau admin)
========================== */

// loadProgramForSchedule: guard kepemilikan untuk edit jadwal (creator/admin)
func (ctl *ProgramController) loadProgramForSchedule(c *fiber.Ctx, programID uuid.UUID) (*model.ProgramModel, error) {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var program model.ProgramModel
	if err := ctl.DB.First(&program, "program_id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Program tidak ditemukan")
		}
		return nil, err
	}

	if program.ProgramCreatedBy != userID && helpers.GetRoleFromToken(c) != constants.RoleAdmin {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak mengubah jadwal program ini")
	}
	return &program, nil
}

// GET /api/public/programs/:id/periods
func (ctl *ProgramController) GetProgramPeriods(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Program ID tidak valid")
	}

	var count int64
	if err := ctl.DB.Model(&model.ProgramModel{}).
		Where("program_id = ?", programID).
		Count(&count).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil program")
	}
	if count == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Program tidak ditemukan")
	}

	var periods []model.ProgramPeriodModel
	if err := ctl.DB.
		Where("program_period_program_id = ?", programID).
		Order("program_period_cycle_number asc").
		Find(&periods).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil periode")
	}

	items := make([]dto.ProgramPeriodResponse, 0, len(periods))
	for _, p := range periods {
		items = append(items, dto.ToProgramPeriodResponse(p))
	}
	return helpers.JsonOK(c, "Daftar periode berhasil diambil", items)
}

// POST /api/u/programs/:id/periods
func (ctl *ProgramController) CreateProgramPeriod(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Program ID tidak valid")
	}

	program, err := ctl.loadProgramForSchedule(c, programID)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	var req dto.CreateProgramPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	if !req.EndDate.After(req.StartDate) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai harus setelah tanggal mulai")
	}

	// cycle berikutnya = max(cycle)+1
	var maxCycle int
	if err := ctl.DB.Model(&model.ProgramPeriodModel{}).
		Select("COALESCE(MAX(program_period_cycle_number), 0)").
		Where("program_period_program_id = ?", program.ProgramID).
		Scan(&maxCycle).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung cycle")
	}

	period := model.ProgramPeriodModel{
		ProgramPeriodProgramID:   program.ProgramID,
		ProgramPeriodStartDate:   req.StartDate,
		ProgramPeriodEndDate:     req.EndDate,
		ProgramPeriodCycleNumber: maxCycle + 1,
	}
	if err := ctl.DB.Create(&period).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan periode")
	}

	return helpers.JsonCreated(c, "Periode berhasil dibuat", dto.ToProgramPeriodResponse(period))
}

// PUT /api/u/program-periods/:id
func (ctl *ProgramController) UpdateProgramPeriod(c *fiber.Ctx) error {
	periodID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Period ID tidak valid")
	}

	var period model.ProgramPeriodModel
	if err := ctl.DB.First(&period, "program_period_id = ?", periodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Periode tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil periode")
	}

	if _, err := ctl.loadProgramForSchedule(c, period.ProgramPeriodProgramID); err != nil {
		return helpers.FromFiberError(c, err)
	}

	var req dto.UpdateProgramPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	start := period.ProgramPeriodStartDate
	end := period.ProgramPeriodEndDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if !end.After(start) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai harus setelah tanggal mulai")
	}

	period.ProgramPeriodStartDate = start
	period.ProgramPeriodEndDate = end
	if err := ctl.DB.Save(&period).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui periode")
	}

	return helpers.JsonUpdated(c, "Periode berhasil diperbarui", dto.ToProgramPeriodResponse(period))
}

// DELETE /api/u/program-periods/:id — independen dari parent Program
func (ctl *ProgramController) DeleteProgramPeriod(c *fiber.Ctx) error {
	periodID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Period ID tidak valid")
	}

	var period model.ProgramPeriodModel
	if err := ctl.DB.First(&period, "program_period_id = ?", periodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Periode tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil periode")
	}

	if _, err := ctl.loadProgramForSchedule(c, period.ProgramPeriodProgramID); err != nil {
		return helpers.FromFiberError(c, err)
	}

	if err := ctl.DB.Delete(&period).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus periode")
	}
	return helpers.JsonDeleted(c, "Periode berhasil dihapus", fiber.Map{"id": periodID})
}
