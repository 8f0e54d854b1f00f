package service

import (
	"math"
	"time"

	"berjamaah_backend/internals/features/programs/program/model"
)

/* ==========================
   Agregasi (pure, tanpa I/O)
   Selalu diturunkan ulang dari field tersimpan, tidak dicache.
========================== */

// CurrentAmount = Σ current_amount semua periode program
func CurrentAmount(periods []model.ProgramPeriodModel) int64 {
	var total int64
	for _, p := range periods {
		total += p.ProgramPeriodCurrentAmount
	}
	return total
}

// ProgressPercentage = round(current/target × 100); 0 kalau target ≤ 0
func ProgressPercentage(currentAmount, targetAmount int64) int {
	if targetAmount <= 0 {
		return 0
	}
	return int(math.Round(float64(currentAmount) / float64(targetAmount) * 100))
}

type ProgramStats struct {
	TotalDonations     int64   `json:"total_donations"`
	TotalPeriodAmount  int64   `json:"total_period_amount"`
	TotalPeriods       int     `json:"total_periods"`
	ActivePeriods      int     `json:"active_periods"`
	CompletedPeriods   int     `json:"completed_periods"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// ComputeProgramStats menghitung statistik program dari baris yang sudah
// dimuat. confirmedDonationTotal = SUM(amount) donasi berstatus confirmed.
func ComputeProgramStats(targetAmount, confirmedDonationTotal int64, periods []model.ProgramPeriodModel, now time.Time) ProgramStats {
	stats := ProgramStats{
		TotalDonations:    confirmedDonationTotal,
		TotalPeriodAmount: CurrentAmount(periods),
		TotalPeriods:      len(periods),
	}

	for _, p := range periods {
		if !p.ProgramPeriodStartDate.After(now) && !p.ProgramPeriodEndDate.Before(now) {
			stats.ActivePeriods++
		}
		if p.ProgramPeriodEndDate.Before(now) {
			stats.CompletedPeriods++
		}
	}

	if targetAmount > 0 {
		stats.ProgressPercentage = float64(confirmedDonationTotal) / float64(targetAmount) * 100
	}
	return stats
}
