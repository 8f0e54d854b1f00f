package service

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"berjamaah_backend/internals/features/programs/program/model"
)

/* ==========================
   Pembentukan periode (pure, tanpa I/O)
========================== */

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

func IsValidFrequency(f string) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// BuildOneTimePeriod: satu periode, cycle 1. end harus SETELAH start.
func BuildOneTimePeriod(programID uuid.UUID, start, end time.Time) (model.ProgramPeriodModel, error) {
	if !end.After(start) {
		return model.ProgramPeriodModel{}, fiber.NewError(fiber.StatusBadRequest,
			"Tanggal selesai harus setelah tanggal mulai")
	}
	return model.ProgramPeriodModel{
		ProgramPeriodProgramID:   programID,
		ProgramPeriodStartDate:   start,
		ProgramPeriodEndDate:     end,
		ProgramPeriodCycleNumber: 1,
	}, nil
}

type RecurringSpec struct {
	Frequency    string
	Day          int
	DurationDays int
	TotalCycles  *int
}

// BuildSeedRecurringPeriod: seed period dengan tanggal placeholder (now,
// now+24 jam), menunggu aktivasi scheduler. Tidak ada validasi rentang
// tanggal di tahap create.
func BuildSeedRecurringPeriod(programID uuid.UUID, spec RecurringSpec, now time.Time) (model.ProgramPeriodModel, error) {
	if !IsValidFrequency(spec.Frequency) {
		return model.ProgramPeriodModel{}, fiber.NewError(fiber.StatusBadRequest,
			"Frekuensi recurring tidak valid (daily/weekly/monthly)")
	}
	if spec.DurationDays <= 0 {
		return model.ProgramPeriodModel{}, fiber.NewError(fiber.StatusBadRequest,
			"Durasi recurring harus lebih dari 0 hari")
	}

	freq := spec.Frequency
	day := spec.Day
	duration := spec.DurationDays
	next := now

	return model.ProgramPeriodModel{
		ProgramPeriodProgramID:             programID,
		ProgramPeriodStartDate:             now,
		ProgramPeriodEndDate:               now.Add(24 * time.Hour),
		ProgramPeriodCycleNumber:           1,
		ProgramPeriodRecurringFrequency:    &freq,
		ProgramPeriodRecurringDay:          &day,
		ProgramPeriodRecurringDurationDays: &duration,
		ProgramPeriodTotalCycles:           spec.TotalCycles,
		ProgramPeriodNextActivationDate:    &next,
	}, nil
}

type SelectedDateTime struct {
	Date      string `json:"date" validate:"required"`       // 2006-01-02
	StartTime string `json:"start_time" validate:"required"` // 15:04
	EndTime   string `json:"end_time" validate:"required"`   // 15:04
}

// BuildSelectedDatePeriods: satu periode per entri, cycle_number mengikuti
// urutan input (1-based). Gagal 400 kalau list kosong, waktu identik, atau
// selesai tidak setelah mulai. Tidak ada yang tersimpan saat gagal — caller
// wajib membungkus dalam transaction.
func BuildSelectedDatePeriods(programID uuid.UUID, entries []SelectedDateTime) ([]model.ProgramPeriodModel, error) {
	if len(entries) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Daftar tanggal tidak boleh kosong")
	}

	periods := make([]model.ProgramPeriodModel, 0, len(entries))
	for i, e := range entries {
		if e.StartTime == e.EndTime {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Waktu mulai dan selesai tidak boleh sama pada entri ke-"+itoa(i+1))
		}
		day, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Format tanggal tidak valid pada entri ke-"+itoa(i+1))
		}
		start, err := combineDateTime(day, e.StartTime)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Format waktu mulai tidak valid pada entri ke-"+itoa(i+1))
		}
		end, err := combineDateTime(day, e.EndTime)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Format waktu selesai tidak valid pada entri ke-"+itoa(i+1))
		}
		if !end.After(start) {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Waktu selesai harus setelah waktu mulai pada entri ke-"+itoa(i+1))
		}

		periods = append(periods, model.ProgramPeriodModel{
			ProgramPeriodProgramID:   programID,
			ProgramPeriodStartDate:   start,
			ProgramPeriodEndDate:     end,
			ProgramPeriodCycleNumber: i + 1,
		})
	}
	return periods, nil
}

/* ==========================
   Recurrence advance (dipakai scheduler)
========================== */

// NextActivationAfter menghitung jadwal aktivasi berikutnya
func NextActivationAfter(frequency string, from time.Time) time.Time {
	switch frequency {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	default:
		return from.AddDate(0, 0, 1)
	}
}

// BuildNextCycle membentuk periode cycle berikutnya dari periode recurring
// terakhir. ok=false kalau total_cycles sudah tercapai atau periode bukan
// recurring.
func BuildNextCycle(last model.ProgramPeriodModel, activateAt time.Time) (model.ProgramPeriodModel, bool) {
	if last.ProgramPeriodRecurringFrequency == nil || last.ProgramPeriodRecurringDurationDays == nil {
		return model.ProgramPeriodModel{}, false
	}
	if last.ProgramPeriodTotalCycles != nil && last.ProgramPeriodCycleNumber >= *last.ProgramPeriodTotalCycles {
		return model.ProgramPeriodModel{}, false
	}

	duration := *last.ProgramPeriodRecurringDurationDays
	next := NextActivationAfter(*last.ProgramPeriodRecurringFrequency, activateAt)

	return model.ProgramPeriodModel{
		ProgramPeriodProgramID:             last.ProgramPeriodProgramID,
		ProgramPeriodStartDate:             activateAt,
		ProgramPeriodEndDate:               activateAt.AddDate(0, 0, duration),
		ProgramPeriodCycleNumber:           last.ProgramPeriodCycleNumber + 1,
		ProgramPeriodRecurringFrequency:    last.ProgramPeriodRecurringFrequency,
		ProgramPeriodRecurringDay:          last.ProgramPeriodRecurringDay,
		ProgramPeriodRecurringDurationDays: last.ProgramPeriodRecurringDurationDays,
		ProgramPeriodTotalCycles:           last.ProgramPeriodTotalCycles,
		ProgramPeriodNextActivationDate:    &next,
	}, true
}

/* ==========================
   Internal
========================== */

func combineDateTime(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

func itoa(n int) string { return strconv.Itoa(n) }
