package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"berjamaah_backend/internals/features/programs/program/model"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name   string
		from   ProgramStatus
		action ProgramAction
		want   ProgramStatus
		ok     bool
	}{
		{"draft approve", StatusDraft, ActionApprove, StatusPending, true},
		{"draft reject", StatusDraft, ActionReject, StatusRejected, true},
		{"pending activate", StatusPending, ActionActivate, StatusActive, true},
		{"active pause", StatusActive, ActionPause, StatusPaused, true},
		{"active end", StatusActive, ActionEnd, StatusEnded, true},
		{"paused resume", StatusPaused, ActionResume, StatusActive, true},
		{"paused end", StatusPaused, ActionEnd, StatusEnded, true},

		{"draft activate ditolak", StatusDraft, ActionActivate, "", false},
		{"pending approve ditolak", StatusPending, ActionApprove, "", false},
		{"active approve ditolak", StatusActive, ActionApprove, "", false},
		{"ended resume ditolak", StatusEnded, ActionResume, "", false},
		{"rejected approve ditolak", StatusRejected, ActionApprove, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			to, ok := CanTransition(tc.from, tc.action)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, to)
		})
	}
}

func TestEndedAndRejectedAreTerminal(t *testing.T) {
	actions := []ProgramAction{ActionApprove, ActionReject, ActionActivate, ActionPause, ActionResume, ActionEnd}
	for _, status := range []ProgramStatus{StatusEnded, StatusRejected} {
		for _, action := range actions {
			_, ok := CanTransition(status, action)
			assert.False(t, ok, "status %s seharusnya final, aksi %s lolos", status, action)
		}
	}
}

func TestApproveUpdatesClearRejectionFields(t *testing.T) {
	adminID := uuid.New()
	now := time.Now()

	updates := approveUpdates(StatusPending, adminID, now)

	assert.Equal(t, StatusPending, updates["program_status"])
	assert.Equal(t, adminID, updates["program_approved_by"])
	assert.Equal(t, now, updates["program_approved_at"])

	// approval menghapus jejak rejection sebelumnya
	assert.Nil(t, updates["program_rejected_by"])
	assert.Nil(t, updates["program_rejected_at"])
	assert.Nil(t, updates["program_rejection_reason"])
	assert.Contains(t, updates, "program_rejected_by")
	assert.Contains(t, updates, "program_rejected_at")
	assert.Contains(t, updates, "program_rejection_reason")
}

func TestRejectUpdatesClearApprovalFields(t *testing.T) {
	adminID := uuid.New()
	now := time.Now()

	updates := rejectUpdates(StatusRejected, adminID, "deskripsi kurang jelas", now)

	assert.Equal(t, StatusRejected, updates["program_status"])
	assert.Equal(t, adminID, updates["program_rejected_by"])
	assert.Equal(t, now, updates["program_rejected_at"])
	assert.Equal(t, "deskripsi kurang jelas", updates["program_rejection_reason"])

	// rejection menghapus jejak approval sebelumnya
	assert.Nil(t, updates["program_approved_by"])
	assert.Nil(t, updates["program_approved_at"])
	assert.Contains(t, updates, "program_approved_by")
	assert.Contains(t, updates, "program_approved_at")
}

func TestEnsureCreator(t *testing.T) {
	creator := uuid.New()
	program := &model.ProgramModel{ProgramCreatedBy: creator}

	assert.NoError(t, EnsureCreator(program, creator))

	err := EnsureCreator(program, uuid.New())
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"draft", "pending", "active", "paused", "ended", "rejected"} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("Active"))
}

func TestIsValidProgramType(t *testing.T) {
	assert.True(t, IsValidProgramType("one_time"))
	assert.True(t, IsValidProgramType("multiple"))
	assert.True(t, IsValidProgramType("selected_date"))
	assert.False(t, IsValidProgramType("recurring"))
	assert.False(t, IsValidProgramType(""))
}
