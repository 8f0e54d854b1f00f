package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"berjamaah_backend/internals/features/donations/donation/dto"
	"berjamaah_backend/internals/features/donations/donation/model"
	"berjamaah_backend/internals/features/donations/donation/service"
	helpers "berjamaah_backend/internals/helpers"
)

type DonationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db, Validate: validator.New()}
}

// POST /api/public/donations — tamu maupun user login boleh berdonasi.
// user_id diisi kalau token ada, tidak wajib.
func (ctl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var req dto.CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var userID *uuid.UUID
	if id, err := helpers.GetUserIDFromToken(c); err == nil {
		userID = &id
	}

	donation, err := service.CreateDonation(ctl.DB, service.CreateDonationInput{
		UserID:          userID,
		ProgramID:       req.ProgramID,
		ProgramPeriodID: req.ProgramPeriodID,
		Amount:          req.Amount,
		Message:         req.Message,
		DonorName:       req.DonorName,
		DonorEmail:      req.DonorEmail,
		DonorPhone:      req.DonorPhone,
		BankName:        req.BankName,
		AccountName:     req.AccountName,
		TransferDate:    req.TransferDate,
		UseGateway:      req.UseGateway,
	})
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	return helpers.JsonCreated(c, "Donasi berhasil dibuat, menunggu verifikasi 🙏", dto.ToDonationResponse(*donation))
}

// GET /api/u/donations — riwayat donasi milik user, terbaru dulu
func (ctl *DonationController) GetUserDonations(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	paging := helpers.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&model.DonationModel{}).
		Where("donation_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung donasi")
	}

	var donations []model.DonationModel
	if err := ctl.DB.
		Where("donation_user_id = ?", userID).
		Preload("DonationProofs").
		Preload("DonationProgram").
		Preload("DonationPeriod").
		Order("created_at desc").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&donations).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	items := make([]dto.DonationResponse, 0, len(donations))
	for _, d := range donations {
		items = append(items, dto.ToDonationResponse(d))
	}
	return helpers.JsonOK(c, "Riwayat donasi berhasil diambil", dto.DonationListResponse{
		Items:   items,
		Total:   total,
		HasMore: int64(paging.Offset+paging.Limit) < total,
	})
}

// GET /api/u/donations/:id — hanya donasi milik sendiri (404 untuk milik orang)
func (ctl *DonationController) GetDonationByID(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Donation ID tidak valid")
	}

	var donation model.DonationModel
	if err := ctl.DB.
		Preload("DonationProofs").
		Preload("DonationProgram").
		Preload("DonationPeriod").
		First(&donation, "donation_id = ? AND donation_user_id = ?", donationID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Donasi tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	return helpers.JsonOK(c, "Donasi berhasil diambil", dto.ToDonationResponse(donation))
}

// POST /api/u/donations/:id/proofs — unggah bukti transfer
func (ctl *DonationController) AddDonationProof(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Donation ID tidak valid")
	}

	var donation model.DonationModel
	if err := ctl.DB.First(&donation, "donation_id = ? AND donation_user_id = ?", donationID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Donasi tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	if service.DonationStatus(donation.DonationStatus) != service.StatusPendingVerification {
		return helpers.JsonError(c, fiber.StatusBadRequest,
			"Bukti transfer hanya bisa ditambah saat donasi menunggu verifikasi")
	}

	var req dto.AddDonationProofRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	proof := model.DonationProofModel{
		DonationProofDonationID: donation.DonationID,
		DonationProofImageURL:   req.ImageURL,
		DonationProofIsPrimary:  req.IsPrimary,
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.DonationProofModel{}).
			Where("donation_proof_donation_id = ?", donation.DonationID).
			Count(&existing).Error; err != nil {
			return err
		}
		// bukti pertama otomatis primary
		if existing == 0 {
			proof.DonationProofIsPrimary = true
		} else if req.IsPrimary {
			// hanya satu bukti primary per donasi
			if err := tx.Model(&model.DonationProofModel{}).
				Where("donation_proof_donation_id = ?", donation.DonationID).
				Update("donation_proof_is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&proof).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan bukti transfer")
	}

	return helpers.JsonCreated(c, "Bukti transfer berhasil ditambahkan", dto.ToDonationProofResponse(proof))
}

// POST /api/donations/notification — endpoint webhook Midtrans (tanpa auth)
func (ctl *DonationController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := service.HandleDonationStatusWebhook(ctl.DB, body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Gagal memproses notifikasi")
	}
	return helpers.JsonOK(c, "Notifikasi diproses", nil)
}
