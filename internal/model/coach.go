package model

// swagger:model Coach
type Coach struct {
	BaseModel
	SchoolID uint   `gorm:"index;not null" json:"schoolId"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Title    string `gorm:"size:100" json:"title"` // head, assistant, recruiting coordinator
	Email    string `gorm:"size:100" json:"email"`
	Phone    string `gorm:"size:30" json:"phone"`
	Twitter  string `gorm:"size:100" json:"twitter"`
}

func (Coach) TableName() string {
	return "coaches"
}
