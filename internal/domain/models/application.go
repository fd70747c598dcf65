package models

import "time"

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
)

func ToApplicationStatus(s string) (ApplicationStatus, bool) {
	switch s {
	case string(StatusPending):
		return StatusPending, true
	case string(StatusShortlisted):
		return StatusShortlisted, true
	case string(StatusRejected):
		return StatusRejected, true
	default:
		return "", false
	}
}

type Application struct {
	ID          uint `gorm:"primaryKey"`
	JobID       uint `gorm:"not null"`
	Job         Job
	ApplicantID uint `gorm:"not null"`
	Applicant   User
	Status      ApplicationStatus `gorm:"not null;default:pending"`
	AppliedAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
