package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationProofModel menyimpan bukti transfer yang diunggah donatur
type DonationProofModel struct {
	DonationProofID         uuid.UUID `gorm:"column:donation_proof_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_proof_id"`
	DonationProofDonationID uuid.UUID `gorm:"column:donation_proof_donation_id;type:uuid;not null;index" json:"donation_proof_donation_id"`

	DonationProofImageURL  string `gorm:"column:donation_proof_image_url;type:text;not null" json:"donation_proof_image_url"`
	DonationProofIsPrimary bool   `gorm:"column:donation_proof_is_primary;default:false" json:"donation_proof_is_primary"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DonationProofModel) TableName() string {
	return "donation_proofs"
}
