package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"berjamaah_backend/internals/features/programs/program/dto"
	"berjamaah_backend/internals/features/programs/program/model"
	"berjamaah_backend/internals/features/programs/program/service"
	helpers "berjamaah_backend/internals/helpers"
)

type ProgramController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db, Validate: validator.New()}
}

/* ==========================
   CREATE (tiga bentuk temporal)
========================== */

// POST /api/u/programs/one-time
func (ctl *ProgramController) CreateOneTime(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	var req dto.CreateOneTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	program, err := service.CreateOneTime(ctl.DB, dto.CreateInputFromFields(req.Title, req.Description, req.Category, req.TargetAmount, userID), req.StartDate, req.EndDate)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonCreated(c, "Program berhasil dibuat (draft)", dto.ToProgramResponse(*program))
}

// POST /api/u/programs/recurring
func (ctl *ProgramController) CreateRecurring(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	var req dto.CreateRecurringRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	program, err := service.CreateRecurring(ctl.DB,
		dto.CreateInputFromFields(req.Title, req.Description, req.Category, req.TargetAmount, userID),
		service.RecurringSpec{
			Frequency:    req.RecurringFrequency,
			Day:          req.RecurringDay,
			DurationDays: req.RecurringDurationDays,
			TotalCycles:  req.TotalCycles,
		})
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonCreated(c, "Program recurring berhasil dibuat (draft)", dto.ToProgramResponse(*program))
}

// POST /api/u/programs/selected-dates
func (ctl *ProgramController) CreateSelectedDates(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	var req dto.CreateSelectedDatesRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	program, err := service.CreateSelectedDates(ctl.DB,
		dto.CreateInputFromFields(req.Title, req.Description, req.Category, req.TargetAmount, userID),
		req.SelectedDateTimes)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonCreated(c, "Program berhasil dibuat (draft)", dto.ToProgramResponse(*program))
}

// POST /api/u/programs — entry generik, dispatch berdasarkan program_type
func (ctl *ProgramController) CreateProgram(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	in := dto.CreateInputFromFields(req.Title, req.Description, req.Category, req.TargetAmount, userID)

	var program *model.ProgramModel
	switch service.ProgramType(req.ProgramType) {
	case service.TypeOneTime:
		if req.StartDate == nil || req.EndDate == nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "start_date dan end_date wajib untuk one_time")
		}
		program, err = service.CreateOneTime(ctl.DB, in, *req.StartDate, *req.EndDate)
	case service.TypeMultiple:
		if req.RecurringFrequency == nil || req.RecurringDurationDays == nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "recurring_frequency dan recurring_duration_days wajib untuk multiple")
		}
		day := 0
		if req.RecurringDay != nil {
			day = *req.RecurringDay
		}
		program, err = service.CreateRecurring(ctl.DB, in, service.RecurringSpec{
			Frequency:    *req.RecurringFrequency,
			Day:          day,
			DurationDays: *req.RecurringDurationDays,
			TotalCycles:  req.TotalCycles,
		})
	case service.TypeSelectedDate:
		program, err = service.CreateSelectedDates(ctl.DB, in, req.SelectedDateTimes)
	default:
		return helpers.JsonError(c, fiber.StatusBadRequest, "program_type tidak valid")
	}
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonCreated(c, "Program berhasil dibuat (draft)", dto.ToProgramResponse(*program))
}

/* ==========================
   READ
========================== */

// GET /api/public/programs?status=&category=&limit=&offset=
func (ctl *ProgramController) GetAll(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	filter := service.ProgramFilter{}
	if v := c.Query("status"); v != "" {
		if !service.IsValidStatus(v) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Status filter tidak valid")
		}
		filter.Status = &v
	}
	if v := c.Query("category"); v != "" {
		filter.Category = &v
	}

	base := service.ApplyProgramFilter(ctl.DB.Model(&model.ProgramModel{}), filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung program")
	}

	var programs []model.ProgramModel
	if err := service.ApplyProgramFilter(ctl.DB.Model(&model.ProgramModel{}), filter).
		Preload("ProgramPeriods").
		Order("created_at desc").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&programs).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil program")
	}

	items := make([]dto.ProgramResponse, 0, len(programs))
	for _, p := range programs {
		items = append(items, dto.ToProgramResponse(p))
	}

	return helpers.JsonOK(c, "Daftar program berhasil diambil", dto.ProgramListResponse{
		Items:   items,
		Total:   total,
		HasMore: int64(paging.Offset+paging.Limit) < total,
	})
}

// GET /api/public/programs/:id
func (ctl *ProgramController) GetByID(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Program ID tidak valid")
	}

	var program model.ProgramModel
	if err := ctl.DB.Preload("ProgramPeriods").
		First(&program, "program_id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Program tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil program")
	}

	return helpers.JsonOK(c, "Program berhasil diambil", dto.ToProgramResponse(program))
}

// GET /api/public/programs/:id/stats
func (ctl *ProgramController) GetProgramStats(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Program ID tidak valid")
	}

	var program model.ProgramModel
	if err := ctl.DB.Preload("ProgramPeriods").
		First(&program, "program_id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Program tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil program")
	}

	// SUM donasi confirmed; selalu dihitung ulang, tidak dicache
	var confirmedTotal int64
	if err := ctl.DB.Table("donations").
		Select("COALESCE(SUM(donation_amount), 0)").
		Where("donation_program_id = ? AND donation_status = ? AND deleted_at IS NULL", programID, "confirmed").
		Scan(&confirmedTotal).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung donasi")
	}

	stats := service.ComputeProgramStats(program.ProgramTargetAmount, confirmedTotal, program.ProgramPeriods, time.Now())
	return helpers.JsonOK(c, "Statistik program berhasil dihitung", stats)
}

/* ==========================
   UPDATE / DELETE (creator only)
========================== */

// PUT /api/u/programs/:id
func (ctl *ProgramController) UpdateProgram(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Program ID tidak valid")
	}

	var req dto.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	program, err := service.FindOwnedProgram(ctl.DB, programID, userID)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["program_title"] = *req.Title
	}
	if req.Description != nil {
		updates["program_description"] = *req.Description
	}
	if req.Category != nil {
		updates["program_category"] = *req.Category
	}
	if req.TargetAmount != nil {
		updates["program_target_amount"] = *req.TargetAmount
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctl.DB.Model(program).Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui program")
	}

	var updated model.ProgramModel
	if err := ctl.DB.Preload("ProgramPeriods").
		First(&updated, "program_id = ?", programID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil program")
	}
	return helpers.JsonUpdated(c, "Program berhasil diperbarui", dto.ToProgramResponse(updated))
}

// DELETE /api/u/programs/:id
func (ctl *ProgramController) DeleteProgram(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Program ID tidak valid")
	}

	program, err := service.FindOwnedProgram(ctl.DB, programID, userID)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	if err := ctl.DB.Delete(program).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus program")
	}
	return helpers.JsonDeleted(c, "Program berhasil dihapus", fiber.Map{"id": programID})
}
