package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"berjamaah_backend/internals/features/programs/program/model"
)

/* ==========================
   Status & transition table
========================== */

type ProgramStatus string

const (
	StatusDraft    ProgramStatus = "draft"
	StatusPending  ProgramStatus = "pending"
	StatusActive   ProgramStatus = "active"
	StatusPaused   ProgramStatus = "paused"
	StatusEnded    ProgramStatus = "ended"
	StatusRejected ProgramStatus = "rejected"
)

type ProgramAction string

const (
	ActionApprove  ProgramAction = "approve"
	ActionReject   ProgramAction = "reject"
	ActionActivate ProgramAction = "activate"
	ActionPause    ProgramAction = "pause"
	ActionResume   ProgramAction = "resume"
	ActionEnd      ProgramAction = "end"
)

// transitions adalah satu-satunya otoritas perpindahan status program.
// Setiap call site konsultasi ke sini, tidak ada lagi cek string tersebar.
var transitions = map[ProgramStatus]map[ProgramAction]ProgramStatus{
	StatusDraft: {
		ActionApprove: StatusPending,
		ActionReject:  StatusRejected,
	},
	StatusPending: {
		ActionActivate: StatusActive,
	},
	StatusActive: {
		ActionPause: StatusPaused,
		ActionEnd:   StatusEnded,
	},
	StatusPaused: {
		ActionResume: StatusActive,
		ActionEnd:    StatusEnded,
	},
}

// CanTransition mengembalikan status tujuan untuk (from, action)
func CanTransition(from ProgramStatus, action ProgramAction) (ProgramStatus, bool) {
	allowed, ok := transitions[from]
	if !ok {
		return "", false
	}
	to, ok := allowed[action]
	return to, ok
}

func IsValidStatus(s string) bool {
	switch ProgramStatus(s) {
	case StatusDraft, StatusPending, StatusActive, StatusPaused, StatusEnded, StatusRejected:
		return true
	}
	return false
}

type ProgramType string

const (
	TypeOneTime      ProgramType = "one_time"
	TypeMultiple     ProgramType = "multiple"
	TypeSelectedDate ProgramType = "selected_date"
)

func IsValidProgramType(t string) bool {
	switch ProgramType(t) {
	case TypeOneTime, TypeMultiple, TypeSelectedDate:
		return true
	}
	return false
}

/* ==========================
   Ownership guards
========================== */

// EnsureCreator menolak caller yang bukan pembuat program (403).
func EnsureCreator(program *model.ProgramModel, callerID uuid.UUID) error {
	if program.ProgramCreatedBy != callerID {
		return fiber.NewError(fiber.StatusForbidden, "Anda bukan pembuat program ini")
	}
	return nil
}

// FindOwnedProgram mengambil program dan memastikan caller adalah pembuatnya.
// 404 kalau tidak ada, 403 kalau bukan milik caller.
func FindOwnedProgram(db *gorm.DB, programID, callerID uuid.UUID) (*model.ProgramModel, error) {
	var program model.ProgramModel
	if err := db.First(&program, "program_id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Program tidak ditemukan")
		}
		return nil, err
	}
	if err := EnsureCreator(&program, callerID); err != nil {
		return nil, err
	}
	return &program, nil
}

/* ==========================
   Approve / Reject (admin)
========================== */

// approveUpdates menyusun kolom approval: set approved_by/at, kosongkan
// seluruh kolom rejection. Approval dan rejection saling eksklusif.
func approveUpdates(to ProgramStatus, adminID uuid.UUID, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"program_status":           to,
		"program_approved_by":      adminID,
		"program_approved_at":      now,
		"program_rejected_by":      nil,
		"program_rejected_at":      nil,
		"program_rejection_reason": nil,
	}
}

// rejectUpdates kebalikannya: catat rejection, kosongkan kolom approval.
func rejectUpdates(to ProgramStatus, adminID uuid.UUID, reason string, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"program_status":           to,
		"program_rejected_by":      adminID,
		"program_rejected_at":      now,
		"program_rejection_reason": reason,
		"program_approved_by":      nil,
		"program_approved_at":      nil,
	}
}

// ApproveProgram: draft → pending. Guard status dilakukan lewat conditional
// UPDATE (WHERE program_status='draft'), jadi dua approval bersamaan tidak
// mungkin dua-duanya menang.
func ApproveProgram(db *gorm.DB, programID, adminID uuid.UUID) (*model.ProgramModel, error) {
	to, ok := CanTransition(StatusDraft, ActionApprove)
	if !ok {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Transisi approve tidak terdefinisi")
	}

	res := db.Model(&model.ProgramModel{}).
		Where("program_id = ? AND program_status = ?", programID, StatusDraft).
		Updates(approveUpdates(to, adminID, time.Now()))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, classifyGuardMiss(db, programID, "Hanya program berstatus draft yang bisa di-approve")
	}

	var program model.ProgramModel
	if err := db.First(&program, "program_id = ?", programID).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

// RejectProgram: draft → rejected, catat alasan, kosongkan kolom approval.
func RejectProgram(db *gorm.DB, programID, adminID uuid.UUID, reason string) (*model.ProgramModel, error) {
	to, ok := CanTransition(StatusDraft, ActionReject)
	if !ok {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Transisi reject tidak terdefinisi")
	}

	res := db.Model(&model.ProgramModel{}).
		Where("program_id = ? AND program_status = ?", programID, StatusDraft).
		Updates(rejectUpdates(to, adminID, reason, time.Now()))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, classifyGuardMiss(db, programID, "Hanya program berstatus draft yang bisa di-reject")
	}

	var program model.ProgramModel
	if err := db.First(&program, "program_id = ?", programID).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

// TransitionProgram menjalankan aksi pause/resume/end lewat tabel transisi,
// juga dengan conditional UPDATE pada status asal.
func TransitionProgram(db *gorm.DB, programID uuid.UUID, action ProgramAction) (*model.ProgramModel, error) {
	var program model.ProgramModel
	if err := db.First(&program, "program_id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Program tidak ditemukan")
		}
		return nil, err
	}

	from := ProgramStatus(program.ProgramStatus)
	to, ok := CanTransition(from, action)
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Aksi "+string(action)+" tidak diizinkan dari status "+string(from))
	}

	res := db.Model(&model.ProgramModel{}).
		Where("program_id = ? AND program_status = ?", programID, from).
		Update("program_status", to)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// status keburu berubah oleh request lain
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Status program sudah berubah, aksi "+string(action)+" tidak bisa dijalankan")
	}

	program.ProgramStatus = string(to)
	return &program, nil
}

// classifyGuardMiss membedakan 404 (tidak ada) dari 400 (status bukan draft)
func classifyGuardMiss(db *gorm.DB, programID uuid.UUID, badReqMsg string) error {
	var count int64
	if err := db.Model(&model.ProgramModel{}).
		Where("program_id = ?", programID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Program tidak ditemukan")
	}
	return fiber.NewError(fiber.StatusBadRequest, badReqMsg)
}
