package model

type SchoolTier string

const (
	TierA SchoolTier = "A"
	TierB SchoolTier = "B"
	TierC SchoolTier = "C"
)

type SchoolStatus string

const (
	SchoolResearching SchoolStatus = "researching"
	SchoolInterested  SchoolStatus = "interested"
	SchoolContacted   SchoolStatus = "contacted"
	SchoolVisited     SchoolStatus = "visited"
	SchoolOffered     SchoolStatus = "offered"
	SchoolCommitted   SchoolStatus = "committed"
	SchoolDeclined    SchoolStatus = "declined"
)

// School is one program on an athlete's target list.
// swagger:model School
type School struct {
	BaseModel
	AthleteID    uint         `gorm:"index;not null" json:"athleteId"`
	Name         string       `gorm:"size:255;not null" json:"name"`
	Division     string       `gorm:"size:50" json:"division"` // D1, D2, D3, NAIA, JUCO
	Location     string       `gorm:"size:255" json:"location"`
	PriorityTier SchoolTier   `gorm:"type:varchar(5);default:'B'" json:"priorityTier"`
	Status       SchoolStatus `gorm:"type:varchar(20);default:'researching';index" json:"status"`
	Notes        string       `gorm:"type:text" json:"notes"`
}

func (School) TableName() string {
	return "schools"
}
