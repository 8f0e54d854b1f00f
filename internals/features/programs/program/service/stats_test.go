package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"berjamaah_backend/internals/features/programs/program/model"
)

func periodWith(amount int64, start, end time.Time) model.ProgramPeriodModel {
	return model.ProgramPeriodModel{
		ProgramPeriodCurrentAmount: amount,
		ProgramPeriodStartDate:     start,
		ProgramPeriodEndDate:       end,
	}
}

func TestCurrentAmount(t *testing.T) {
	now := time.Now()
	periods := []model.ProgramPeriodModel{
		periodWith(250_000, now, now.AddDate(0, 1, 0)),
		periodWith(750_000, now, now.AddDate(0, 2, 0)),
		periodWith(0, now, now.AddDate(0, 3, 0)),
	}

	assert.Equal(t, int64(1_000_000), CurrentAmount(periods))
	assert.Equal(t, int64(0), CurrentAmount(nil))
}

func TestProgressPercentage(t *testing.T) {
	assert.Equal(t, 50, ProgressPercentage(500_000, 1_000_000))
	assert.Equal(t, 100, ProgressPercentage(1_000_000, 1_000_000))
	// melampaui target tetap dilaporkan apa adanya
	assert.Equal(t, 150, ProgressPercentage(1_500_000, 1_000_000))
	// pembulatan setengah ke atas
	assert.Equal(t, 33, ProgressPercentage(1, 3))
	assert.Equal(t, 67, ProgressPercentage(2, 3))
	// target nol/negatif tidak membagi
	assert.Equal(t, 0, ProgressPercentage(500_000, 0))
	assert.Equal(t, 0, ProgressPercentage(500_000, -1))
}

func TestComputeProgramStats(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	periods := []model.ProgramPeriodModel{
		// sudah selesai
		periodWith(400_000, now.AddDate(0, -2, 0), now.AddDate(0, -1, 0)),
		// sedang berjalan
		periodWith(100_000, now.AddDate(0, 0, -5), now.AddDate(0, 0, 5)),
		// belum mulai
		periodWith(0, now.AddDate(0, 1, 0), now.AddDate(0, 2, 0)),
	}

	stats := ComputeProgramStats(1_000_000, 500_000, periods, now)

	assert.Equal(t, int64(500_000), stats.TotalDonations)
	assert.Equal(t, int64(500_000), stats.TotalPeriodAmount)
	assert.Equal(t, 3, stats.TotalPeriods)
	assert.Equal(t, 1, stats.ActivePeriods)
	assert.Equal(t, 1, stats.CompletedPeriods)
	assert.InDelta(t, 50.0, stats.ProgressPercentage, 0.0001)
}

// Program baru: target 1.000.000, satu periode berjalan, belum ada donasi.
func TestComputeProgramStatsFreshProgram(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	periods := []model.ProgramPeriodModel{
		periodWith(0, now.AddDate(0, 0, -1), now.AddDate(0, 1, 0)),
	}

	stats := ComputeProgramStats(1_000_000, 0, periods, now)

	assert.Equal(t, int64(0), stats.TotalDonations)
	assert.Equal(t, int64(0), stats.TotalPeriodAmount)
	assert.Equal(t, 1, stats.TotalPeriods)
	assert.Equal(t, 1, stats.ActivePeriods)
	assert.Equal(t, 0, stats.CompletedPeriods)
	assert.Equal(t, 0.0, stats.ProgressPercentage)
}

func TestComputeProgramStatsZeroTarget(t *testing.T) {
	stats := ComputeProgramStats(0, 250_000, nil, time.Now())
	assert.Equal(t, 0.0, stats.ProgressPercentage)
	assert.Equal(t, 0, stats.TotalPeriods)
}
