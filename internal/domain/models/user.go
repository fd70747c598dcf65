package models

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

func ToRole(s string) (Role, bool) {
	switch s {
	case string(RoleJobseeker):
		return RoleJobseeker, true
	case string(RoleRecruiter):
		return RoleRecruiter, true
	case string(RoleAdmin):
		return RoleAdmin, true
	default:
		return "", false
	}
}

// User's Password holds a bcrypt hash and must never leave the service layer.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Role      Role   `gorm:"not null;default:jobseeker"`
	Skills    string
	Resume    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewUser(name, email, passwordHash string, role Role) *User {
	return &User{
		Name:     name,
		Email:    email,
		Password: passwordHash,
		Role:     role,
	}
}

func (u *User) SkillsAsArray() []string {
	if u.Skills == "" {
		return []string{}
	}
	return strings.Split(u.Skills, ",")
}

func (u *User) SetSkills(skills []string) {
	u.Skills = strings.Join(lo.Map(skills, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}), ",")
}
