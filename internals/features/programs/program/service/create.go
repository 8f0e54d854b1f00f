package service

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"berjamaah_backend/internals/features/programs/program/model"
)

/* ==========================
   Create program (tiga bentuk temporal)
   Semua create dibungkus transaction: gagal validasi = tidak ada yang tersimpan.
========================== */

type CreateProgramInput struct {
	Title        string
	Description  string
	Category     string
	TargetAmount int64
	CreatedBy    uuid.UUID
}

func newDraft(in CreateProgramInput, programType ProgramType) model.ProgramModel {
	return model.ProgramModel{
		ProgramTitle:        in.Title,
		ProgramDescription:  in.Description,
		ProgramCategory:     in.Category,
		ProgramTargetAmount: in.TargetAmount,
		ProgramStatus:       string(StatusDraft),
		ProgramType:         string(programType),
		ProgramCreatedBy:    in.CreatedBy,
	}
}

// CreateOneTime: program draft + tepat satu periode (cycle 1)
func CreateOneTime(db *gorm.DB, in CreateProgramInput, start, end time.Time) (*model.ProgramModel, error) {
	program := newDraft(in, TypeOneTime)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&program).Error; err != nil {
			return err
		}
		period, err := BuildOneTimePeriod(program.ProgramID, start, end)
		if err != nil {
			return err
		}
		if err := tx.Create(&period).Error; err != nil {
			return err
		}
		program.ProgramPeriods = []model.ProgramPeriodModel{period}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// CreateRecurring: program draft + satu seed period placeholder yang menunggu
// aktivasi scheduler
func CreateRecurring(db *gorm.DB, in CreateProgramInput, spec RecurringSpec) (*model.ProgramModel, error) {
	program := newDraft(in, TypeMultiple)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&program).Error; err != nil {
			return err
		}
		seed, err := BuildSeedRecurringPeriod(program.ProgramID, spec, time.Now())
		if err != nil {
			return err
		}
		if err := tx.Create(&seed).Error; err != nil {
			return err
		}
		program.ProgramPeriods = []model.ProgramPeriodModel{seed}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// CreateSelectedDates: program draft + satu periode per entri tanggal.
// Entri invalid membatalkan seluruh transaksi.
func CreateSelectedDates(db *gorm.DB, in CreateProgramInput, entries []SelectedDateTime) (*model.ProgramModel, error) {
	program := newDraft(in, TypeSelectedDate)

	// snapshot input untuk audit
	if raw, err := sonic.Marshal(entries); err == nil {
		program.ProgramSelectedTimes = datatypes.JSON(raw)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		periods, err := BuildSelectedDatePeriods(uuid.Nil, entries)
		if err != nil {
			return err
		}
		if err := tx.Create(&program).Error; err != nil {
			return err
		}
		for i := range periods {
			periods[i].ProgramPeriodProgramID = program.ProgramID
		}
		if err := tx.Create(&periods).Error; err != nil {
			return err
		}
		program.ProgramPeriods = periods
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &program, nil
}
