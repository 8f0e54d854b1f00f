package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgramPeriodModel: satu jendela waktu yang bisa didanai di bawah sebuah program.
// current_amount adalah satu-satunya sumber kebenaran total terkumpul.
type ProgramPeriodModel struct {
	ProgramPeriodID        uuid.UUID `gorm:"column:program_period_id;type:uuid;default:gen_random_uuid();primaryKey" json:"program_period_id"`
	ProgramPeriodProgramID uuid.UUID `gorm:"column:program_period_program_id;type:uuid;not null;index" json:"program_period_program_id"`

	ProgramPeriodStartDate time.Time `gorm:"column:program_period_start_date;not null" json:"program_period_start_date"`
	ProgramPeriodEndDate   time.Time `gorm:"column:program_period_end_date;not null" json:"program_period_end_date"`

	ProgramPeriodCurrentAmount int64 `gorm:"column:program_period_current_amount;not null;default:0" json:"program_period_current_amount"`
	ProgramPeriodCycleNumber   int   `gorm:"column:program_period_cycle_number;not null;default:1" json:"program_period_cycle_number"`

	// Kolom recurrence, hanya terisi untuk program_type=multiple
	ProgramPeriodRecurringFrequency    *string    `gorm:"column:program_period_recurring_frequency;type:varchar(10)" json:"program_period_recurring_frequency,omitempty"` // daily|weekly|monthly
	ProgramPeriodRecurringDay          *int       `gorm:"column:program_period_recurring_day" json:"program_period_recurring_day,omitempty"`
	ProgramPeriodRecurringDurationDays *int       `gorm:"column:program_period_recurring_duration_days" json:"program_period_recurring_duration_days,omitempty"`
	ProgramPeriodTotalCycles           *int       `gorm:"column:program_period_total_cycles" json:"program_period_total_cycles,omitempty"`
	ProgramPeriodNextActivationDate    *time.Time `gorm:"column:program_period_next_activation_date;index" json:"program_period_next_activation_date,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProgramPeriodModel) TableName() string {
	return "program_periods"
}
