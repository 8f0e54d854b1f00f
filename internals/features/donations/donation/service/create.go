package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"berjamaah_backend/internals/features/donations/donation/model"
	programModel "berjamaah_backend/internals/features/programs/program/model"
	programService "berjamaah_backend/internals/features/programs/program/service"
)

/* ==========================
   Pembuatan donasi
========================== */

type CreateDonationInput struct {
	UserID          *uuid.UUID
	ProgramID       uuid.UUID
	ProgramPeriodID uuid.UUID
	Amount          int64
	Message         string
	DonorName       string
	DonorEmail      *string
	DonorPhone      *string

	BankName     *string
	AccountName  *string
	TransferDate *time.Time

	UseGateway bool
}

// NewOrderID membuat order id unik bergaya DONATION-<unixnano>
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("DONATION-%d", now.UnixNano())
}

// CreateDonation memvalidasi target lalu menyimpan donasi berstatus
// pending_verification. Program harus active dan periode harus milik
// program yang sama.
func CreateDonation(db *gorm.DB, in CreateDonationInput) (*model.DonationModel, error) {
	var program programModel.ProgramModel
	if err := db.First(&program, "program_id = ?", in.ProgramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Program tidak ditemukan")
		}
		return nil, err
	}
	if program.ProgramStatus != string(programService.StatusActive) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Donasi hanya bisa untuk program yang sedang aktif")
	}

	var period programModel.ProgramPeriodModel
	if err := db.First(&period, "program_period_id = ?", in.ProgramPeriodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Periode program tidak ditemukan")
		}
		return nil, err
	}
	if period.ProgramPeriodProgramID != program.ProgramID {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Periode tidak termasuk dalam program yang dipilih")
	}

	donation := buildDonation(in, time.Now())

	// create + ambil token Snap dalam satu transaction: gagal ambil token
	// berarti rollback, tidak ada donasi pending yatim yang bikin retry dobel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&donation).Error; err != nil {
			return err
		}
		if !in.UseGateway {
			return nil
		}

		email := ""
		if in.DonorEmail != nil {
			email = *in.DonorEmail
		}
		token, err := GenerateSnapToken(donation, in.DonorName, email)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
		}
		donation.DonationPaymentToken = token
		return tx.Model(&model.DonationModel{}).
			Where("donation_id = ?", donation.DonationID).
			Update("donation_payment_token", token).Error
	})
	if err != nil {
		return nil, err
	}

	return &donation, nil
}

// buildDonation menyusun row donasi baru (pure, tanpa I/O)
func buildDonation(in CreateDonationInput, now time.Time) model.DonationModel {
	gateway := "manual"
	if in.UseGateway {
		gateway = "midtrans"
	}
	return model.DonationModel{
		DonationUserID:          in.UserID,
		DonationProgramID:       in.ProgramID,
		DonationProgramPeriodID: in.ProgramPeriodID,
		DonationAmount:          in.Amount,
		DonationMessage:         in.Message,
		DonationDonorName:       in.DonorName,
		DonationDonorEmail:      in.DonorEmail,
		DonationDonorPhone:      in.DonorPhone,
		DonationStatus:          string(StatusPendingVerification),
		DonationOrderID:         NewOrderID(now),
		DonationBankName:        in.BankName,
		DonationAccountName:     in.AccountName,
		DonationTransferDate:    in.TransferDate,
		DonationPaymentGateway:  gateway,
	}
}
