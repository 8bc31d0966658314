package repository

import (
	"recruiting_backend/internal/model"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) ListCatalog() ([]model.Task, error) {
	var tasks []model.Task
	err := r.DB.Order("`order` asc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByID(id uint) (*model.Task, error) {
	var task model.Task
	err := r.DB.First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindByCode(code string) (*model.Task, error) {
	var task model.Task
	err := r.DB.Where("code = ?", code).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListAthleteTasks(athleteID uint) ([]model.AthleteTask, error) {
	var tasks []model.AthleteTask
	err := r.DB.Where("athlete_id = ?", athleteID).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) GetAthleteTask(athleteID, taskID uint) (*model.AthleteTask, error) {
	var at model.AthleteTask
	err := r.DB.Where("athlete_id = ? AND task_id = ?", athleteID, taskID).First(&at).Error
	if err != nil {
		return nil, err
	}
	return &at, nil
}

// UpsertAthleteTask creates or updates the athlete's progress record for a
// catalog task.
func (r *TaskRepository) UpsertAthleteTask(at *model.AthleteTask) error {
	var existing model.AthleteTask
	err := r.DB.Where("athlete_id = ? AND task_id = ?", at.AthleteID, at.TaskID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(at).Error
	} else if err != nil {
		return err
	}
	existing.Status = at.Status
	existing.DueDate = at.DueDate
	existing.CompletedAt = at.CompletedAt
	if err := r.DB.Save(&existing).Error; err != nil {
		return err
	}
	at.ID = existing.ID
	return nil
}
