package dto

import (
	"time"

	"github.com/google/uuid"

	"berjamaah_backend/internals/features/donations/donation/model"
)

/* ==========================
   Requests
========================== */

type CreateDonationRequest struct {
	ProgramID       uuid.UUID `json:"program_id" validate:"required"`
	ProgramPeriodID uuid.UUID `json:"program_period_id" validate:"required"`
	Amount          int64     `json:"amount" validate:"required,gt=0"`
	Message         string    `json:"message" validate:"omitempty,max=500"`

	DonorName  string  `json:"donor_name" validate:"required,min=2,max=50"`
	DonorEmail *string `json:"donor_email" validate:"omitempty,email"`
	DonorPhone *string `json:"donor_phone" validate:"omitempty,max=20"`

	BankName     *string    `json:"bank_name" validate:"omitempty,max=50"`
	AccountName  *string    `json:"account_name" validate:"omitempty,max=100"`
	TransferDate *time.Time `json:"transfer_date"`

	// true = bayar lewat Midtrans Snap, false = transfer manual
	UseGateway bool `json:"use_gateway"`
}

type RejectDonationRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type AddDonationProofRequest struct {
	ImageURL  string `json:"image_url" validate:"required,url"`
	IsPrimary bool   `json:"is_primary"`
}

/* ==========================
   Responses
========================== */

// Ringkasan program/periode untuk riwayat donasi
type DonationProgramSummary struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

type DonationPeriodSummary struct {
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CycleNumber int       `json:"cycle_number"`
}

type DonationProofResponse struct {
	ID        uuid.UUID `json:"id"`
	ImageURL  string    `json:"image_url"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

func ToDonationProofResponse(p model.DonationProofModel) DonationProofResponse {
	return DonationProofResponse{
		ID:        p.DonationProofID,
		ImageURL:  p.DonationProofImageURL,
		IsPrimary: p.DonationProofIsPrimary,
		CreatedAt: p.CreatedAt,
	}
}

type DonationResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	ProgramID       uuid.UUID  `json:"program_id"`
	ProgramPeriodID uuid.UUID  `json:"program_period_id"`
	Amount          int64      `json:"amount"`
	Message         string     `json:"message,omitempty"`
	DonorName       string     `json:"donor_name"`
	Status          string     `json:"status"`
	OrderID         string     `json:"order_id"`
	PaymentGateway  string     `json:"payment_gateway"`
	PaymentToken    string     `json:"payment_token,omitempty"`
	BankName        *string    `json:"bank_name,omitempty"`
	AccountName     *string    `json:"account_name,omitempty"`
	TransferDate    *time.Time `json:"transfer_date,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`

	Proofs  []DonationProofResponse `json:"proofs,omitempty"`
	Program *DonationProgramSummary `json:"program,omitempty"`
	Period  *DonationPeriodSummary  `json:"period,omitempty"`
}

func ToDonationResponse(d model.DonationModel) DonationResponse {
	resp := DonationResponse{
		ID:              d.DonationID,
		UserID:          d.DonationUserID,
		ProgramID:       d.DonationProgramID,
		ProgramPeriodID: d.DonationProgramPeriodID,
		Amount:          d.DonationAmount,
		Message:         d.DonationMessage,
		DonorName:       d.DonationDonorName,
		Status:          d.DonationStatus,
		OrderID:         d.DonationOrderID,
		PaymentGateway:  d.DonationPaymentGateway,
		PaymentToken:    d.DonationPaymentToken,
		BankName:        d.DonationBankName,
		AccountName:     d.DonationAccountName,
		TransferDate:    d.DonationTransferDate,
		RejectionReason: d.DonationRejectionReason,
		PaidAt:          d.DonationPaidAt,
		CreatedAt:       d.CreatedAt,
	}
	for _, proof := range d.DonationProofs {
		resp.Proofs = append(resp.Proofs, ToDonationProofResponse(proof))
	}
	if d.DonationProgram != nil {
		resp.Program = &DonationProgramSummary{
			Title:  d.DonationProgram.ProgramTitle,
			Status: d.DonationProgram.ProgramStatus,
		}
	}
	if d.DonationPeriod != nil {
		resp.Period = &DonationPeriodSummary{
			StartDate:   d.DonationPeriod.ProgramPeriodStartDate,
			EndDate:     d.DonationPeriod.ProgramPeriodEndDate,
			CycleNumber: d.DonationPeriod.ProgramPeriodCycleNumber,
		}
	}
	return resp
}

type DonationListResponse struct {
	Items   []DonationResponse `json:"items"`
	Total   int64              `json:"total"`
	HasMore bool               `json:"has_more"`
}
