package storage

import (
	"github.com/renato0307/prinbox/internal/domain"
)

// runModelToDomain converts a RefreshRunModel (GORM) to domain.RefreshRun
func runModelToDomain(m RefreshRunModel) domain.RefreshRun {
	return domain.RefreshRun{
		Accounts:    m.Accounts,
		CompletedAt: m.CompletedAt,
		ID:          m.ID,
		Rows:        m.Rows,
		StartedAt:   m.StartedAt,
		Trigger:     domain.Trigger(m.Trigger),
		Warnings:    m.Warnings,
	}
}

// domainToRunModel converts a domain.RefreshRun to RefreshRunModel (GORM)
func domainToRunModel(r domain.RefreshRun) RefreshRunModel {
	return RefreshRunModel{
		Accounts:    r.Accounts,
		CompletedAt: r.CompletedAt.UTC(),
		ID:          r.ID,
		Rows:        r.Rows,
		StartedAt:   r.StartedAt.UTC(),
		Trigger:     string(r.Trigger),
		Warnings:    r.Warnings,
	}
}
