package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berjamaah_backend/internals/features/programs/program/model"
)

func TestCreateOneTimeRequestValidation(t *testing.T) {
	v := validator.New()
	now := time.Now()

	valid := CreateOneTimeRequest{
		Title:        "Renovasi Musholla",
		TargetAmount: 5_000_000,
		StartDate:    now,
		EndDate:      now.AddDate(0, 1, 0),
	}
	assert.NoError(t, v.Struct(valid))

	noTitle := valid
	noTitle.Title = ""
	assert.Error(t, v.Struct(noTitle))

	shortTitle := valid
	shortTitle.Title = "ab"
	assert.Error(t, v.Struct(shortTitle))

	zeroTarget := valid
	zeroTarget.TargetAmount = 0
	assert.Error(t, v.Struct(zeroTarget))
}

func TestCreateRecurringRequestValidation(t *testing.T) {
	v := validator.New()

	valid := CreateRecurringRequest{
		Title:                 "Jumat Berkah",
		TargetAmount:          1_000_000,
		RecurringFrequency:    "weekly",
		RecurringDay:          5,
		RecurringDurationDays: 1,
	}
	assert.NoError(t, v.Struct(valid))

	badFreq := valid
	badFreq.RecurringFrequency = "yearly"
	assert.Error(t, v.Struct(badFreq))

	zeroDuration := valid
	zeroDuration.RecurringDurationDays = 0
	assert.Error(t, v.Struct(zeroDuration))
}

func TestCreateProgramRequestDispatchValidation(t *testing.T) {
	v := validator.New()

	req := CreateProgramRequest{
		ProgramType:  "one_time",
		Title:        "Santunan Yatim",
		TargetAmount: 2_000_000,
	}
	assert.NoError(t, v.Struct(req))

	req.ProgramType = "recurring" // bukan nama tipe yang dikenal
	assert.Error(t, v.Struct(req))
}

func TestToProgramResponseAggregates(t *testing.T) {
	now := time.Now()
	program := model.ProgramModel{
		ProgramID:           uuid.New(),
		ProgramTitle:        "Wakaf Sumur",
		ProgramTargetAmount: 1_000_000,
		ProgramStatus:       "active",
		ProgramType:         "one_time",
		ProgramCreatedBy:    uuid.New(),
		ProgramPeriods: []model.ProgramPeriodModel{
			{
				ProgramPeriodID:            uuid.New(),
				ProgramPeriodStartDate:     now,
				ProgramPeriodEndDate:       now.AddDate(0, 1, 0),
				ProgramPeriodCurrentAmount: 250_000,
				ProgramPeriodCycleNumber:   1,
			},
			{
				ProgramPeriodID:            uuid.New(),
				ProgramPeriodStartDate:     now.AddDate(0, 1, 0),
				ProgramPeriodEndDate:       now.AddDate(0, 2, 0),
				ProgramPeriodCurrentAmount: 250_000,
				ProgramPeriodCycleNumber:   2,
			},
		},
	}

	resp := ToProgramResponse(program)

	assert.Equal(t, int64(500_000), resp.CurrentAmount)
	assert.Equal(t, 50, resp.ProgressPercentage)
	require.Len(t, resp.Periods, 2)
	assert.Equal(t, 1, resp.Periods[0].CycleNumber)
	assert.Equal(t, 2, resp.Periods[1].CycleNumber)
}
