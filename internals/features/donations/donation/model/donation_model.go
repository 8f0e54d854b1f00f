package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	programModel "berjamaah_backend/internals/features/programs/program/model"
)

type DonationModel struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`

	// nullable: donasi tamu tidak punya akun
	DonationUserID *uuid.UUID `gorm:"column:donation_user_id;type:uuid;index" json:"donation_user_id,omitempty"`

	DonationProgramID       uuid.UUID `gorm:"column:donation_program_id;type:uuid;not null;index" json:"donation_program_id"`
	DonationProgramPeriodID uuid.UUID `gorm:"column:donation_program_period_id;type:uuid;not null;index" json:"donation_program_period_id"`

	DonationAmount  int64  `gorm:"column:donation_amount;not null;check:donation_amount > 0" json:"donation_amount"`
	DonationMessage string `gorm:"column:donation_message;type:text" json:"donation_message"`

	DonationDonorName  string  `gorm:"column:donation_donor_name;type:varchar(50);not null" json:"donation_donor_name"`
	DonationDonorEmail *string `gorm:"column:donation_donor_email;type:varchar(100)" json:"donation_donor_email,omitempty"`
	DonationDonorPhone *string `gorm:"column:donation_donor_phone;type:varchar(20)" json:"donation_donor_phone,omitempty"`

	DonationStatus string `gorm:"column:donation_status;type:varchar(30);default:'pending_verification'" json:"donation_status"`

	DonationOrderID string `gorm:"column:donation_order_id;type:varchar(100);not null;unique" json:"donation_order_id"`

	// detail transfer manual (diisi donatur, dicek admin)
	DonationBankName     *string    `gorm:"column:donation_bank_name;type:varchar(50)" json:"donation_bank_name,omitempty"`
	DonationAccountName  *string    `gorm:"column:donation_account_name;type:varchar(100)" json:"donation_account_name,omitempty"`
	DonationTransferDate *time.Time `gorm:"column:donation_transfer_date" json:"donation_transfer_date,omitempty"`

	DonationPaymentToken   string `gorm:"column:donation_payment_token;type:text" json:"donation_payment_token,omitempty"`
	DonationPaymentGateway string `gorm:"column:donation_payment_gateway;type:varchar(50);default:'manual'" json:"donation_payment_gateway"`
	DonationPaymentMethod  string `gorm:"column:donation_payment_method;type:varchar(50)" json:"donation_payment_method,omitempty"`

	DonationRejectionReason *string `gorm:"column:donation_rejection_reason;type:text" json:"donation_rejection_reason,omitempty"`

	DonationVerifiedBy *uuid.UUID `gorm:"column:donation_verified_by;type:uuid" json:"donation_verified_by,omitempty"`
	DonationVerifiedAt *time.Time `gorm:"column:donation_verified_at" json:"donation_verified_at,omitempty"`
	DonationPaidAt     *time.Time `gorm:"column:donation_paid_at" json:"donation_paid_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`

	DonationProofs  []DonationProofModel              `gorm:"foreignKey:DonationProofDonationID" json:"donation_proofs,omitempty"`
	DonationProgram *programModel.ProgramModel        `gorm:"foreignKey:DonationProgramID;references:ProgramID" json:"donation_program,omitempty"`
	DonationPeriod  *programModel.ProgramPeriodModel  `gorm:"foreignKey:DonationProgramPeriodID;references:ProgramPeriodID" json:"donation_period,omitempty"`
}

func (DonationModel) TableName() string {
	return "donations"
}
