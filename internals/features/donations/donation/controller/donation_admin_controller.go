package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"berjamaah_backend/internals/features/donations/donation/dto"
	"berjamaah_backend/internals/features/donations/donation/model"
	"berjamaah_backend/internals/features/donations/donation/service"
	helpers "berjamaah_backend/internals/helpers"
)

/* ==========================
   Admin: verifikasi donasi manual
========================== */

// GET /api/a/donations?status=&program_id= — antrian verifikasi
func (ctl *DonationController) GetAllDonations(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	status := strings.TrimSpace(c.Query("status"))
	if status != "" && !service.IsValidDonationStatus(status) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Status donasi tidak valid")
	}
	var programID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("program_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Program ID tidak valid")
		}
		programID = &id
	}

	applyFilter := func(tx *gorm.DB) *gorm.DB {
		if status != "" {
			tx = tx.Where("donation_status = ?", status)
		}
		if programID != nil {
			tx = tx.Where("donation_program_id = ?", *programID)
		}
		return tx
	}

	var total int64
	if err := applyFilter(ctl.DB.Model(&model.DonationModel{})).Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung donasi")
	}

	var donations []model.DonationModel
	if err := applyFilter(ctl.DB.Model(&model.DonationModel{})).
		Preload("DonationProofs").
		Order("created_at asc").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&donations).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	items := make([]dto.DonationResponse, 0, len(donations))
	for _, d := range donations {
		items = append(items, dto.ToDonationResponse(d))
	}
	return helpers.JsonList(c, "Daftar donasi berhasil diambil", items, helpers.BuildListMeta(total, paging))
}

// PATCH /api/a/donations/:id/verify
func (ctl *DonationController) VerifyDonation(c *fiber.Ctx) error {
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Donation ID tidak valid")
	}
	adminID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	donation, err := service.VerifyDonation(ctl.DB, donationID, adminID)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonUpdated(c, "Donasi berhasil diverifikasi ✅", dto.ToDonationResponse(*donation))
}

// PATCH /api/a/donations/:id/confirm
func (ctl *DonationController) ConfirmDonation(c *fiber.Ctx) error {
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Donation ID tidak valid")
	}

	donation, err := service.ConfirmDonation(ctl.DB, donationID)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonUpdated(c, "Donasi dikonfirmasi, dana tercatat 🎉", dto.ToDonationResponse(*donation))
}

// PATCH /api/a/donations/:id/reject
func (ctl *DonationController) RejectDonation(c *fiber.Ctx) error {
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Donation ID tidak valid")
	}

	var req dto.RejectDonationRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	donation, err := service.RejectDonation(ctl.DB, donationID, req.Reason)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonUpdated(c, "Donasi ditolak", dto.ToDonationResponse(*donation))
}
