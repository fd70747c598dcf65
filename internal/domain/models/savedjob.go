package models

import "time"

type SavedJob struct {
	ID        uint `gorm:"primaryKey"`
	JobID     uint `gorm:"not null"`
	Job       Job
	UserID    uint `gorm:"not null"`
	User      User
	CreatedAt time.Time
}
