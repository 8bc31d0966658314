package model

import (
	"time"
)

type UserRole string

const (
	Athlete UserRole = "athlete"
	Parent  UserRole = "parent"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name           string   `gorm:"size:100;not null" json:"name"`
	Email          string   `gorm:"size:100;unique;not null" json:"email"`
	Password       string   `gorm:"size:100;not null" json:"-"`
	Role           UserRole `gorm:"type:enum('athlete','parent','admin');default:'athlete'" json:"role"`
	GraduationYear int      `gorm:"default:0" json:"graduationYear"`
	Sport          string   `gorm:"size:50" json:"sport"`
	Position       string   `gorm:"size:50" json:"position"`
	Height         string   `gorm:"size:20" json:"height"` // e.g. 6'2"
	GPA            float64  `gorm:"default:0" json:"gpa"`
	Avatar         string   `gorm:"size:255" json:"avatar"`
	Disabled       bool     `gorm:"default:false" json:"disabled"`
	// For parent accounts: the athlete this account observes
	AthleteID *uint     `gorm:"index" json:"athleteId"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
