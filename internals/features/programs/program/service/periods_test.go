package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T", err)
	return fe.Code
}

func TestBuildOneTimePeriod(t *testing.T) {
	programID := uuid.New()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	period, err := BuildOneTimePeriod(programID, start, end)
	require.NoError(t, err)
	assert.Equal(t, programID, period.ProgramPeriodProgramID)
	assert.Equal(t, start, period.ProgramPeriodStartDate)
	assert.Equal(t, end, period.ProgramPeriodEndDate)
	assert.Equal(t, 1, period.ProgramPeriodCycleNumber)
	assert.Equal(t, int64(0), period.ProgramPeriodCurrentAmount)
}

func TestBuildOneTimePeriodRejectsBadRange(t *testing.T) {
	programID := uuid.New()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// end == start juga ditolak (harus strictly after)
	_, err := BuildOneTimePeriod(programID, start, start)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	_, err = BuildOneTimePeriod(programID, start, start.AddDate(0, 0, -1))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestBuildSeedRecurringPeriod(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	cycles := 5

	seed, err := BuildSeedRecurringPeriod(uuid.New(), RecurringSpec{
		Frequency:    FrequencyWeekly,
		Day:          1,
		DurationDays: 3,
		TotalCycles:  &cycles,
	}, now)
	require.NoError(t, err)

	assert.Equal(t, 1, seed.ProgramPeriodCycleNumber)
	require.NotNil(t, seed.ProgramPeriodRecurringFrequency)
	assert.Equal(t, FrequencyWeekly, *seed.ProgramPeriodRecurringFrequency)
	require.NotNil(t, seed.ProgramPeriodNextActivationDate)
	assert.Equal(t, now, *seed.ProgramPeriodNextActivationDate)
}

func TestBuildSeedRecurringPeriodValidation(t *testing.T) {
	now := time.Now()

	_, err := BuildSeedRecurringPeriod(uuid.New(), RecurringSpec{Frequency: "yearly", DurationDays: 3}, now)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	_, err = BuildSeedRecurringPeriod(uuid.New(), RecurringSpec{Frequency: FrequencyDaily, DurationDays: 0}, now)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestBuildSelectedDatePeriods(t *testing.T) {
	programID := uuid.New()
	periods, err := BuildSelectedDatePeriods(programID, []SelectedDateTime{
		{Date: "2026-04-01", StartTime: "08:00", EndTime: "17:00"},
		{Date: "2026-04-15", StartTime: "09:30", EndTime: "12:00"},
	})
	require.NoError(t, err)
	require.Len(t, periods, 2)

	assert.Equal(t, 1, periods[0].ProgramPeriodCycleNumber)
	assert.Equal(t, 2, periods[1].ProgramPeriodCycleNumber)
	assert.Equal(t, time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC), periods[0].ProgramPeriodStartDate)
	assert.Equal(t, time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC), periods[1].ProgramPeriodEndDate)
}

func TestBuildSelectedDatePeriodsRejectsInvalidEntries(t *testing.T) {
	cases := []struct {
		name    string
		entries []SelectedDateTime
	}{
		{"kosong", nil},
		{"waktu identik", []SelectedDateTime{{Date: "2026-04-01", StartTime: "08:00", EndTime: "08:00"}}},
		{"tanggal rusak", []SelectedDateTime{{Date: "01-04-2026", StartTime: "08:00", EndTime: "10:00"}}},
		{"jam rusak", []SelectedDateTime{{Date: "2026-04-01", StartTime: "8am", EndTime: "10:00"}}},
		{"selesai sebelum mulai", []SelectedDateTime{{Date: "2026-04-01", StartTime: "10:00", EndTime: "08:00"}}},
		{"entri kedua rusak", []SelectedDateTime{
			{Date: "2026-04-01", StartTime: "08:00", EndTime: "10:00"},
			{Date: "2026-04-02", StartTime: "10:00", EndTime: "09:00"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildSelectedDatePeriods(uuid.New(), tc.entries)
			require.Error(t, err)
			assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
		})
	}
}

func TestNextActivationAfter(t *testing.T) {
	from := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, from.AddDate(0, 0, 1), NextActivationAfter(FrequencyDaily, from))
	assert.Equal(t, from.AddDate(0, 0, 7), NextActivationAfter(FrequencyWeekly, from))
	assert.Equal(t, from.AddDate(0, 1, 0), NextActivationAfter(FrequencyMonthly, from))
}

func TestBuildNextCycle(t *testing.T) {
	freq := FrequencyWeekly
	day := 1
	duration := 3
	cycles := 3
	activateAt := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	last, err := BuildSeedRecurringPeriod(uuid.New(), RecurringSpec{
		Frequency: freq, Day: day, DurationDays: duration, TotalCycles: &cycles,
	}, activateAt.AddDate(0, 0, -7))
	require.NoError(t, err)

	next, ok := BuildNextCycle(last, activateAt)
	require.True(t, ok)
	assert.Equal(t, 2, next.ProgramPeriodCycleNumber)
	assert.Equal(t, activateAt, next.ProgramPeriodStartDate)
	assert.Equal(t, activateAt.AddDate(0, 0, duration), next.ProgramPeriodEndDate)
	require.NotNil(t, next.ProgramPeriodNextActivationDate)
	assert.Equal(t, activateAt.AddDate(0, 0, 7), *next.ProgramPeriodNextActivationDate)
}

func TestBuildNextCycleStopsAtTotalCycles(t *testing.T) {
	cycles := 2
	activateAt := time.Now()

	last, err := BuildSeedRecurringPeriod(uuid.New(), RecurringSpec{
		Frequency: FrequencyDaily, DurationDays: 1, TotalCycles: &cycles,
	}, activateAt)
	require.NoError(t, err)

	second, ok := BuildNextCycle(last, activateAt)
	require.True(t, ok)

	_, ok = BuildNextCycle(second, activateAt)
	assert.False(t, ok, "cycle ketiga tidak boleh dibuat saat total_cycles=2")
}

func TestBuildNextCycleRejectsNonRecurring(t *testing.T) {
	period, err := BuildOneTimePeriod(uuid.New(), time.Now(), time.Now().AddDate(0, 0, 1))
	require.NoError(t, err)

	_, ok := BuildNextCycle(period, time.Now())
	assert.False(t, ok)
}
