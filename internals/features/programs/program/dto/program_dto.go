package dto

import (
	"time"

	"github.com/google/uuid"

	"berjamaah_backend/internals/features/programs/program/model"
	"berjamaah_backend/internals/features/programs/program/service"
)

/* ==========================
   Requests
========================== */

// CreateInputFromFields merakit input service dari field request
func CreateInputFromFields(title, description, category string, targetAmount int64, createdBy uuid.UUID) service.CreateProgramInput {
	return service.CreateProgramInput{
		Title:        title,
		Description:  description,
		Category:     category,
		TargetAmount: targetAmount,
		CreatedBy:    createdBy,
	}
}

type CreateOneTimeRequest struct {
	Title        string    `json:"title" validate:"required,min=3,max=100"`
	Description  string    `json:"description"`
	Category     string    `json:"category" validate:"omitempty,max=50"`
	TargetAmount int64     `json:"target_amount" validate:"required,gt=0"`
	StartDate    time.Time `json:"start_date" validate:"required"`
	EndDate      time.Time `json:"end_date" validate:"required"`
}

type CreateRecurringRequest struct {
	Title                 string `json:"title" validate:"required,min=3,max=100"`
	Description           string `json:"description"`
	Category              string `json:"category" validate:"omitempty,max=50"`
	TargetAmount          int64  `json:"target_amount" validate:"required,gt=0"`
	RecurringFrequency    string `json:"recurring_frequency" validate:"required,oneof=daily weekly monthly"`
	RecurringDay          int    `json:"recurring_day" validate:"gte=0,lte=31"`
	RecurringDurationDays int    `json:"recurring_duration_days" validate:"required,gt=0"`
	TotalCycles           *int   `json:"total_cycles" validate:"omitempty,gt=0"`
}

type CreateSelectedDatesRequest struct {
	Title             string                     `json:"title" validate:"required,min=3,max=100"`
	Description       string                     `json:"description"`
	Category          string                     `json:"category" validate:"omitempty,max=50"`
	TargetAmount      int64                      `json:"target_amount" validate:"required,gt=0"`
	SelectedDateTimes []service.SelectedDateTime `json:"selected_date_times" validate:"required,min=1,dive"`
}

// CreateProgramRequest: entry generik, dispatch berdasarkan program_type
type CreateProgramRequest struct {
	ProgramType string `json:"program_type" validate:"required,oneof=one_time multiple selected_date"`

	Title        string `json:"title" validate:"required,min=3,max=100"`
	Description  string `json:"description"`
	Category     string `json:"category" validate:"omitempty,max=50"`
	TargetAmount int64  `json:"target_amount" validate:"required,gt=0"`

	// one_time
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	// multiple (recurring)
	RecurringFrequency    *string `json:"recurring_frequency" validate:"omitempty,oneof=daily weekly monthly"`
	RecurringDay          *int    `json:"recurring_day" validate:"omitempty,gte=0,lte=31"`
	RecurringDurationDays *int    `json:"recurring_duration_days" validate:"omitempty,gt=0"`
	TotalCycles           *int    `json:"total_cycles" validate:"omitempty,gt=0"`

	// selected_date
	SelectedDateTimes []service.SelectedDateTime `json:"selected_date_times" validate:"omitempty,dive"`
}

type UpdateProgramRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=3,max=100"`
	Description  *string `json:"description"`
	Category     *string `json:"category" validate:"omitempty,max=50"`
	TargetAmount *int64  `json:"target_amount" validate:"omitempty,gt=0"`
}

type RejectProgramRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type CreateProgramPeriodRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

type UpdateProgramPeriodRequest struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

/* ==========================
   Responses
========================== */

type ProgramPeriodResponse struct {
	ID             uuid.UUID  `json:"id"`
	ProgramID      uuid.UUID  `json:"program_id"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	CurrentAmount  int64      `json:"current_amount"`
	CycleNumber    int        `json:"cycle_number"`
	Frequency      *string    `json:"recurring_frequency,omitempty"`
	NextActivation *time.Time `json:"next_activation_date,omitempty"`
}

func ToProgramPeriodResponse(p model.ProgramPeriodModel) ProgramPeriodResponse {
	return ProgramPeriodResponse{
		ID:             p.ProgramPeriodID,
		ProgramID:      p.ProgramPeriodProgramID,
		StartDate:      p.ProgramPeriodStartDate,
		EndDate:        p.ProgramPeriodEndDate,
		CurrentAmount:  p.ProgramPeriodCurrentAmount,
		CycleNumber:    p.ProgramPeriodCycleNumber,
		Frequency:      p.ProgramPeriodRecurringFrequency,
		NextActivation: p.ProgramPeriodNextActivationDate,
	}
}

type ProgramResponse struct {
	ID                 uuid.UUID               `json:"id"`
	Title              string                  `json:"title"`
	Description        string                  `json:"description,omitempty"`
	Category           string                  `json:"category,omitempty"`
	TargetAmount       int64                   `json:"target_amount"`
	Status             string                  `json:"status"`
	ProgramType        string                  `json:"program_type"`
	CreatedBy          uuid.UUID               `json:"created_by"`
	CurrentAmount      int64                   `json:"current_amount"`
	ProgressPercentage int                     `json:"progress_percentage"`
	RejectionReason    *string                 `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	Periods            []ProgramPeriodResponse `json:"periods,omitempty"`
}

// ToProgramResponse menghitung agregat dari periode yang sudah dimuat
func ToProgramResponse(p model.ProgramModel) ProgramResponse {
	current := service.CurrentAmount(p.ProgramPeriods)
	resp := ProgramResponse{
		ID:                 p.ProgramID,
		Title:              p.ProgramTitle,
		Description:        p.ProgramDescription,
		Category:           p.ProgramCategory,
		TargetAmount:       p.ProgramTargetAmount,
		Status:             p.ProgramStatus,
		ProgramType:        p.ProgramType,
		CreatedBy:          p.ProgramCreatedBy,
		CurrentAmount:      current,
		ProgressPercentage: service.ProgressPercentage(current, p.ProgramTargetAmount),
		RejectionReason:    p.ProgramRejectionReason,
		CreatedAt:          p.CreatedAt,
	}
	for _, period := range p.ProgramPeriods {
		resp.Periods = append(resp.Periods, ToProgramPeriodResponse(period))
	}
	return resp
}

type ProgramListResponse struct {
	Items   []ProgramResponse `json:"items"`
	Total   int64             `json:"total"`
	HasMore bool              `json:"has_more"`
}
