package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"berjamaah_backend/internals/features/programs/program/model"
	"berjamaah_backend/internals/features/programs/program/service"
)

// StartProgramActivationScheduler menjalankan loop per jam yang:
//  1. mengaktifkan program pending yang periodenya sudah mulai
//  2. mengakhiri program active yang seluruh periodenya lewat
//  3. men-generate cycle berikutnya untuk program recurring yang jatuh tempo
func StartProgramActivationScheduler(db *gorm.DB) {
	go func() {
		for {
			runActivationPass(db, time.Now())
			time.Sleep(1 * time.Hour)
		}
	}()
}

func runActivationPass(db *gorm.DB, now time.Time) {
	activatePendingPrograms(db, now)
	endExpiredPrograms(db, now)
	advanceRecurringCycles(db, now)
}

// pending → active: ada periode yang sudah mulai dan belum selesai
func activatePendingPrograms(db *gorm.DB, now time.Time) {
	var programs []model.ProgramModel
	if err := db.
		Where("program_status = ?", service.StatusPending).
		Find(&programs).Error; err != nil {
		log.Printf("[SCHEDULER] gagal mengambil program pending: %v", err)
		return
	}

	for _, p := range programs {
		var count int64
		if err := db.Model(&model.ProgramPeriodModel{}).
			Where("program_period_program_id = ? AND program_period_start_date <= ? AND program_period_end_date >= ?",
				p.ProgramID, now, now).
			Count(&count).Error; err != nil {
			log.Printf("[SCHEDULER] gagal cek periode program %s: %v", p.ProgramID, err)
			continue
		}
		if count == 0 {
			continue
		}

		if _, err := service.TransitionProgram(db, p.ProgramID, service.ActionActivate); err != nil {
			log.Printf("[SCHEDULER] gagal mengaktifkan program %s: %v", p.ProgramID, err)
			continue
		}
		log.Printf("[SCHEDULER] program %s diaktifkan", p.ProgramID)
	}
}

// active → ended: semua periode sudah lewat dan tidak ada cycle menunggu
func endExpiredPrograms(db *gorm.DB, now time.Time) {
	var programs []model.ProgramModel
	if err := db.
		Where("program_status = ?", service.StatusActive).
		Find(&programs).Error; err != nil {
		log.Printf("[SCHEDULER] gagal mengambil program active: %v", err)
		return
	}

	for _, p := range programs {
		var remaining int64
		if err := db.Model(&model.ProgramPeriodModel{}).
			Where("program_period_program_id = ?", p.ProgramID).
			Where("program_period_end_date >= ? OR program_period_next_activation_date IS NOT NULL", now).
			Count(&remaining).Error; err != nil {
			log.Printf("[SCHEDULER] gagal cek sisa periode program %s: %v", p.ProgramID, err)
			continue
		}
		if remaining > 0 {
			continue
		}

		if _, err := service.TransitionProgram(db, p.ProgramID, service.ActionEnd); err != nil {
			log.Printf("[SCHEDULER] gagal mengakhiri program %s: %v", p.ProgramID, err)
			continue
		}
		log.Printf("[SCHEDULER] program %s diakhiri (semua periode selesai)", p.ProgramID)
	}
}

// recurring: periode dengan next_activation_date jatuh tempo melahirkan cycle
// berikutnya; yang cycle-nya habis di-clear supaya tidak diproses lagi
func advanceRecurringCycles(db *gorm.DB, now time.Time) {
	var due []model.ProgramPeriodModel
	if err := db.
		Where("program_period_next_activation_date IS NOT NULL AND program_period_next_activation_date <= ?", now).
		Where("program_period_recurring_frequency IS NOT NULL").
		Find(&due).Error; err != nil {
		log.Printf("[SCHEDULER] gagal mengambil periode recurring: %v", err)
		return
	}

	for _, period := range due {
		if period.ProgramPeriodRecurringDurationDays == nil {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			// seed period (cycle 1) dipakai ulang sebagai cycle pertama yang nyata
			if period.ProgramPeriodCycleNumber == 1 && period.ProgramPeriodCurrentAmount == 0 {
				duration := *period.ProgramPeriodRecurringDurationDays
				next := service.NextActivationAfter(*period.ProgramPeriodRecurringFrequency, now)
				return tx.Model(&model.ProgramPeriodModel{}).
					Where("program_period_id = ?", period.ProgramPeriodID).
					Updates(map[string]interface{}{
						"program_period_start_date":           now,
						"program_period_end_date":             now.AddDate(0, 0, duration),
						"program_period_next_activation_date": next,
					}).Error
			}

			nextCycle, ok := service.BuildNextCycle(period, now)
			if !ok {
				// total_cycles tercapai, berhenti menjadwalkan
				return tx.Model(&model.ProgramPeriodModel{}).
					Where("program_period_id = ?", period.ProgramPeriodID).
					Update("program_period_next_activation_date", nil).Error
			}

			if err := tx.Model(&model.ProgramPeriodModel{}).
				Where("program_period_id = ?", period.ProgramPeriodID).
				Update("program_period_next_activation_date", nil).Error; err != nil {
				return err
			}
			return tx.Create(&nextCycle).Error
		})
		if err != nil {
			log.Printf("[SCHEDULER] gagal advance cycle periode %s: %v", period.ProgramPeriodID, err)
			continue
		}
		log.Printf("[SCHEDULER] cycle periode program %s diproses", period.ProgramPeriodProgramID)
	}
}
