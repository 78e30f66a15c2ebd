package storage

import "time"

// RefreshRunModel is the GORM model for the refresh_runs table
type RefreshRunModel struct {
	Accounts    int       `gorm:"not null;default:0"`
	CompletedAt time.Time `gorm:"not null;index:idx_completed_at"`
	CreatedAt   time.Time
	ID          string    `gorm:"primaryKey"`
	Rows        int       `gorm:"not null;default:0"`
	StartedAt   time.Time `gorm:"not null"`
	Trigger     string    `gorm:"not null;default:'timer';check:trigger IN ('startup','timer','manual','oneshot')"`
	Warnings    int       `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (RefreshRunModel) TableName() string { return "refresh_runs" }
