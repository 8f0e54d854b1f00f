package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"berjamaah_backend/internals/features/donations/donation/model"
	periodModel "berjamaah_backend/internals/features/programs/program/model"
)

// HandleDonationStatusWebhook dipanggil saat menerima notifikasi dari Midtrans.
// Settlement/capture langsung confirmed (gateway sudah memverifikasi dana),
// expire/cancel/deny jadi rejected.
func HandleDonationStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var donation model.DonationModel
	if err := db.Where("donation_order_id = ?", orderID).First(&donation).Error; err != nil {
		log.Println("[ERROR] Donasi tidak ditemukan:", err)
		return fmt.Errorf("donation with order_id %s not found", orderID)
	}

	if DonationStatus(donation.DonationStatus) == StatusConfirmed {
		// notifikasi Midtrans bisa terkirim lebih dari sekali
		log.Println("[INFO] Donasi sudah confirmed, notifikasi diabaikan:", orderID)
		return nil
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		return db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&model.DonationModel{}).
				Where("donation_id = ? AND donation_status <> ?", donation.DonationID, StatusConfirmed).
				Updates(map[string]interface{}{
					"donation_status":  StatusConfirmed,
					"donation_paid_at": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil
			}
			return tx.Model(&periodModel.ProgramPeriodModel{}).
				Where("program_period_id = ?", donation.DonationProgramPeriodID).
				Update("program_period_current_amount",
					gorm.Expr("program_period_current_amount + ?", donation.DonationAmount)).Error
		})

	case "expire", "cancel", "deny":
		return db.Model(&model.DonationModel{}).
			Where("donation_id = ?", donation.DonationID).
			Update("donation_status", StatusRejected).Error

	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}
}
