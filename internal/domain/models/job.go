package models

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

const DefaultJobCategory = "Other"

// Job with a nil PostedByID came from the external feed and has no owning
// recruiter.
type Job struct {
	ID             uint   `gorm:"primaryKey"`
	Title          string `gorm:"not null"`
	Description    string `gorm:"not null"`
	Company        string `gorm:"not null"`
	Location       string `gorm:"not null"`
	Salary         int    `gorm:"not null"`
	Category       string `gorm:"default:Other"`
	SkillsRequired string
	PostedByID     *uint
	PostedBy       *User
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (j *Job) IsExternal() bool {
	return j.PostedByID == nil
}

func (j *Job) SkillsRequiredAsArray() []string {
	if j.SkillsRequired == "" {
		return []string{}
	}
	return strings.Split(j.SkillsRequired, ",")
}

func (j *Job) SetSkillsRequired(skills []string) {
	j.SkillsRequired = strings.Join(lo.Map(skills, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}), ",")
}
