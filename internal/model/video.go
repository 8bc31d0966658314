package model

// Video is an uploaded film clip. Duration and resolution are probed with
// ffmpeg at upload time.
// swagger:model Video
type Video struct {
	BaseModel
	AthleteID   uint    `gorm:"index;not null" json:"athleteId"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	URL         string  `gorm:"size:512;not null" json:"url"`
	Duration    float64 `gorm:"default:0" json:"duration"` // seconds
	Width       int     `gorm:"default:0" json:"width"`
	Height      int     `gorm:"default:0" json:"height"`
	Format      string  `gorm:"size:30" json:"format"`
	IsHighlight bool    `gorm:"default:false;index" json:"isHighlight"`
}

func (Video) TableName() string {
	return "videos"
}
