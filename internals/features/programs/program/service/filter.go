package service

import (
	"strings"

	"gorm.io/gorm"
)

// ProgramFilter: filter query bertipe eksplisit. Diterjemahkan ke predicate
// GORM oleh satu fungsi mapping, tidak pernah dimutasi di tempat lain.
type ProgramFilter struct {
	Status    *string
	Category  *string
	CreatedBy *string
}

// ApplyProgramFilter menerjemahkan filter ke query GORM
func ApplyProgramFilter(tx *gorm.DB, f ProgramFilter) *gorm.DB {
	if f.Status != nil && strings.TrimSpace(*f.Status) != "" {
		tx = tx.Where("program_status = ?", strings.TrimSpace(*f.Status))
	}
	if f.Category != nil && strings.TrimSpace(*f.Category) != "" {
		tx = tx.Where("program_category = ?", strings.TrimSpace(*f.Category))
	}
	if f.CreatedBy != nil && strings.TrimSpace(*f.CreatedBy) != "" {
		tx = tx.Where("program_created_by = ?", strings.TrimSpace(*f.CreatedBy))
	}
	return tx
}
