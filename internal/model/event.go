package model

import "time"

type EventType string

const (
	EventCamp       EventType = "camp"
	EventShowcase   EventType = "showcase"
	EventVisit      EventType = "visit"
	EventTournament EventType = "tournament"
)

// swagger:model Event
type Event struct {
	BaseModel
	AthleteID uint      `gorm:"index;not null" json:"athleteId"`
	SchoolID  *uint     `gorm:"index" json:"schoolId"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Type      EventType `gorm:"type:varchar(20);not null" json:"type"`
	StartsAt  time.Time `gorm:"index;not null" json:"startsAt"`
	Location  string    `gorm:"size:255" json:"location"`
	Notes     string    `gorm:"type:text" json:"notes"`
}

func (Event) TableName() string {
	return "events"
}
