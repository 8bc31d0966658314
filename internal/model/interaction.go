package model

import "time"

type InteractionType string

const (
	InteractionEmail     InteractionType = "email"
	InteractionCall      InteractionType = "call"
	InteractionText      InteractionType = "text"
	InteractionDM        InteractionType = "dm"
	InteractionCampVisit InteractionType = "camp_visit"
	InteractionInPerson  InteractionType = "in_person"
)

type Sentiment string

const (
	SentimentVeryPositive Sentiment = "very_positive"
	SentimentPositive     Sentiment = "positive"
	SentimentNeutral      Sentiment = "neutral"
	SentimentNegative     Sentiment = "negative"
)

// Interaction is a single logged contact between the athlete and a school.
// swagger:model Interaction
type Interaction struct {
	BaseModel
	AthleteID  uint            `gorm:"index;not null" json:"athleteId"`
	SchoolID   uint            `gorm:"index;not null" json:"schoolId"`
	CoachID    *uint           `gorm:"index" json:"coachId"`
	Type       InteractionType `gorm:"type:varchar(20);not null" json:"type"`
	Sentiment  Sentiment       `gorm:"type:varchar(20);default:'neutral'" json:"sentiment"`
	OccurredAt time.Time       `gorm:"index;not null" json:"occurredAt"`
	Summary    string          `gorm:"type:text" json:"summary"`
}

func (Interaction) TableName() string {
	return "interactions"
}
