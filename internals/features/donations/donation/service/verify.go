package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"berjamaah_backend/internals/features/donations/donation/model"
	periodModel "berjamaah_backend/internals/features/programs/program/model"
)

/* ==========================
   Verifikasi manual oleh admin
========================== */

func findDonation(db *gorm.DB, donationID uuid.UUID) (*model.DonationModel, error) {
	var donation model.DonationModel
	if err := db.First(&donation, "donation_id = ?", donationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Donasi tidak ditemukan")
		}
		return nil, err
	}
	return &donation, nil
}

// changeStatus menjalankan conditional UPDATE pada status asal supaya dua
// admin yang memproses donasi yang sama tidak dua-duanya menang.
func changeStatus(db *gorm.DB, donationID uuid.UUID, from, to DonationStatus, extra map[string]interface{}) error {
	updates := map[string]interface{}{"donation_status": to}
	for k, v := range extra {
		updates[k] = v
	}

	res := db.Model(&model.DonationModel{}).
		Where("donation_id = ? AND donation_status = ?", donationID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			"Status donasi sudah berubah, aksi tidak bisa dijalankan")
	}
	return nil
}

// VerifyDonation: pending_verification → verified (bukti transfer dicek admin)
func VerifyDonation(db *gorm.DB, donationID, adminID uuid.UUID) (*model.DonationModel, error) {
	donation, err := findDonation(db, donationID)
	if err != nil {
		return nil, err
	}

	from := DonationStatus(donation.DonationStatus)
	if !CanChangeDonationStatus(from, StatusVerified) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Donasi berstatus "+string(from)+" tidak bisa diverifikasi")
	}

	now := time.Now()
	if err := changeStatus(db, donationID, from, StatusVerified, map[string]interface{}{
		"donation_verified_by": adminID,
		"donation_verified_at": now,
	}); err != nil {
		return nil, err
	}
	return findDonation(db, donationID)
}

// ConfirmDonation: verified → confirmed. Dana baru dihitung masuk di sini:
// current_amount periode dinaikkan dalam transaction yang sama.
func ConfirmDonation(db *gorm.DB, donationID uuid.UUID) (*model.DonationModel, error) {
	donation, err := findDonation(db, donationID)
	if err != nil {
		return nil, err
	}

	from := DonationStatus(donation.DonationStatus)
	if !CanChangeDonationStatus(from, StatusConfirmed) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Donasi berstatus "+string(from)+" tidak bisa dikonfirmasi")
	}

	now := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := changeStatus(tx, donationID, from, StatusConfirmed, map[string]interface{}{
			"donation_paid_at": now,
		}); err != nil {
			return err
		}
		return tx.Model(&periodModel.ProgramPeriodModel{}).
			Where("program_period_id = ?", donation.DonationProgramPeriodID).
			Update("program_period_current_amount",
				gorm.Expr("program_period_current_amount + ?", donation.DonationAmount)).Error
	})
	if err != nil {
		return nil, err
	}
	return findDonation(db, donationID)
}

// RejectDonation: pending_verification/verified → rejected, alasan dicatat
func RejectDonation(db *gorm.DB, donationID uuid.UUID, reason string) (*model.DonationModel, error) {
	donation, err := findDonation(db, donationID)
	if err != nil {
		return nil, err
	}

	from := DonationStatus(donation.DonationStatus)
	if !CanChangeDonationStatus(from, StatusRejected) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Donasi berstatus "+string(from)+" tidak bisa ditolak")
	}

	var extra map[string]interface{}
	if reason != "" {
		extra = map[string]interface{}{"donation_rejection_reason": reason}
	}
	if err := changeStatus(db, donationID, from, StatusRejected, extra); err != nil {
		return nil, err
	}
	return findDonation(db, donationID)
}
