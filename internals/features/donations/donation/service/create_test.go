package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildDonation(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	in := CreateDonationInput{
		UserID:          &userID,
		ProgramID:       uuid.New(),
		ProgramPeriodID: uuid.New(),
		Amount:          250000,
		Message:         "semoga berkah",
		DonorName:       "Hamba Allah",
	}

	d := buildDonation(in, now)

	assert.Equal(t, &userID, d.DonationUserID)
	assert.Equal(t, in.ProgramID, d.DonationProgramID)
	assert.Equal(t, in.ProgramPeriodID, d.DonationProgramPeriodID)
	assert.Equal(t, int64(250000), d.DonationAmount)
	assert.Equal(t, string(StatusPendingVerification), d.DonationStatus)
	assert.Equal(t, NewOrderID(now), d.DonationOrderID)
	assert.Equal(t, "manual", d.DonationPaymentGateway)
	assert.Empty(t, d.DonationPaymentToken)
}

func TestBuildDonationGateway(t *testing.T) {
	in := CreateDonationInput{
		ProgramID:       uuid.New(),
		ProgramPeriodID: uuid.New(),
		Amount:          100000,
		DonorName:       "Tamu",
		UseGateway:      true,
	}

	d := buildDonation(in, time.Now())

	assert.Equal(t, "midtrans", d.DonationPaymentGateway)
	assert.Nil(t, d.DonationUserID)
	assert.Equal(t, string(StatusPendingVerification), d.DonationStatus)
}
