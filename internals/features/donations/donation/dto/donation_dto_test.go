package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateDonationRequestValidation(t *testing.T) {
	v := validator.New()

	valid := CreateDonationRequest{
		ProgramID:       uuid.New(),
		ProgramPeriodID: uuid.New(),
		Amount:          50_000,
		DonorName:       "Hamba Allah",
	}
	assert.NoError(t, v.Struct(valid))

	zeroAmount := valid
	zeroAmount.Amount = 0
	assert.Error(t, v.Struct(zeroAmount))

	negativeAmount := valid
	negativeAmount.Amount = -10_000
	assert.Error(t, v.Struct(negativeAmount))

	noName := valid
	noName.DonorName = ""
	assert.Error(t, v.Struct(noName))

	badEmail := valid
	email := "bukan-email"
	badEmail.DonorEmail = &email
	assert.Error(t, v.Struct(badEmail))
}

func TestAddDonationProofRequestValidation(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(AddDonationProofRequest{
		ImageURL: "https://cdn.berjamaah.id/proofs/abc.jpg",
	}))
	assert.Error(t, v.Struct(AddDonationProofRequest{ImageURL: ""}))
	assert.Error(t, v.Struct(AddDonationProofRequest{ImageURL: "bukan url"}))
}
