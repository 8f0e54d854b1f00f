package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProgramModel merepresentasikan tabel programs (kampanye penggalangan dana)
type ProgramModel struct {
	ProgramID uuid.UUID `gorm:"column:program_id;type:uuid;default:gen_random_uuid();primaryKey" json:"program_id"`

	ProgramTitle       string `gorm:"column:program_title;type:varchar(100);not null" json:"program_title"`
	ProgramDescription string `gorm:"column:program_description;type:text" json:"program_description"`
	ProgramCategory    string `gorm:"column:program_category;type:varchar(50)" json:"program_category"`

	ProgramTargetAmount int64 `gorm:"column:program_target_amount;not null;check:program_target_amount >= 0" json:"program_target_amount"`

	// draft | pending | active | paused | ended | rejected
	ProgramStatus string `gorm:"column:program_status;type:varchar(20);not null;default:'draft'" json:"program_status"`
	// one_time | multiple | selected_date
	ProgramType string `gorm:"column:program_type;type:varchar(20);not null" json:"program_type"`

	ProgramCreatedBy uuid.UUID `gorm:"column:program_created_by;type:uuid;not null;index" json:"program_created_by"`

	// Approval & rejection saling eksklusif: approve mengosongkan kolom reject, dan sebaliknya
	ProgramApprovedBy      *uuid.UUID `gorm:"column:program_approved_by;type:uuid" json:"program_approved_by,omitempty"`
	ProgramApprovedAt      *time.Time `gorm:"column:program_approved_at" json:"program_approved_at,omitempty"`
	ProgramRejectedBy      *uuid.UUID `gorm:"column:program_rejected_by;type:uuid" json:"program_rejected_by,omitempty"`
	ProgramRejectedAt      *time.Time `gorm:"column:program_rejected_at" json:"program_rejected_at,omitempty"`
	ProgramRejectionReason *string    `gorm:"column:program_rejection_reason;type:text" json:"program_rejection_reason,omitempty"`

	// Snapshot input selected_date (audit), bukan sumber kebenaran periode
	ProgramSelectedTimes datatypes.JSON `gorm:"column:program_selected_times" json:"program_selected_times,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`

	ProgramPeriods []ProgramPeriodModel `gorm:"foreignKey:ProgramPeriodProgramID;references:ProgramID" json:"program_periods,omitempty"`
}

func (ProgramModel) TableName() string {
	return "programs"
}
