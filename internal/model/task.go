package model

import "time"

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

type TaskCategory string

const (
	TaskCritical    TaskCategory = "critical"
	TaskEligibility TaskCategory = "eligibility"
	TaskGeneral     TaskCategory = "general"
)

// Task is a catalog entry on the recruiting checklist. The catalog is shared;
// per-athlete state lives in AthleteTask.
// swagger:model Task
type Task struct {
	BaseModel
	Code        string       `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Category    TaskCategory `gorm:"type:varchar(20);default:'general'" json:"category"`
	Order       int          `gorm:"default:0" json:"order"`
}

// AthleteTask tracks one athlete's progress on a catalog task.
// swagger:model AthleteTask
type AthleteTask struct {
	BaseModel
	AthleteID   uint       `gorm:"uniqueIndex:idx_athlete_task;not null" json:"athleteId"`
	TaskID      uint       `gorm:"uniqueIndex:idx_athlete_task;not null" json:"taskId"`
	Status      TaskStatus `gorm:"type:varchar(20);default:'not_started'" json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (Task) TableName() string {
	return "tasks"
}

func (AthleteTask) TableName() string {
	return "athlete_tasks"
}
