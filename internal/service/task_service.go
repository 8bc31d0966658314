package service

import (
	"time"

	"recruiting_backend/internal/model"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/util"

	"gorm.io/gorm"
)

type TaskService struct {
	TaskRepo    *repository.TaskRepository
	Suggestions *SuggestionService
}

func NewTaskService(taskRepo *repository.TaskRepository, suggestions *SuggestionService) *TaskService {
	return &TaskService{TaskRepo: taskRepo, Suggestions: suggestions}
}

// TaskWithProgress merges a catalog entry with the athlete's state.
type TaskWithProgress struct {
	model.Task
	Status      model.TaskStatus `json:"status"`
	DueDate     *time.Time       `json:"dueDate"`
	CompletedAt *time.Time       `json:"completedAt"`
}

func (s *TaskService) ListForAthlete(athleteID uint) ([]TaskWithProgress, error) {
	catalog, err := s.TaskRepo.ListCatalog()
	if err != nil {
		return nil, err
	}
	athleteTasks, err := s.TaskRepo.ListAthleteTasks(athleteID)
	if err != nil {
		return nil, err
	}

	byTask := make(map[uint]model.AthleteTask, len(athleteTasks))
	for _, at := range athleteTasks {
		byTask[at.TaskID] = at
	}

	out := make([]TaskWithProgress, 0, len(catalog))
	for _, task := range catalog {
		item := TaskWithProgress{Task: task, Status: model.TaskNotStarted}
		if at, ok := byTask[task.ID]; ok {
			item.Status = at.Status
			item.DueDate = at.DueDate
			item.CompletedAt = at.CompletedAt
		}
		out = append(out, item)
	}
	return out, nil
}

// UpdateStatus moves the athlete's progress on a task. Completing a task also
// closes any suggestion that pointed at it.
func (s *TaskService) UpdateStatus(athleteID, taskID uint, status model.TaskStatus, dueDate *time.Time) error {
	if _, err := s.TaskRepo.FindByID(taskID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrTaskNotFound
		}
		return err
	}

	at := &model.AthleteTask{
		AthleteID: athleteID,
		TaskID:    taskID,
		Status:    status,
		DueDate:   dueDate,
	}
	if status == model.TaskCompleted {
		now := time.Now()
		at.CompletedAt = &now
	}

	if err := s.TaskRepo.UpsertAthleteTask(at); err != nil {
		return err
	}

	if status == model.TaskCompleted {
		return s.Suggestions.AutoCompleteForTask(athleteID, taskID)
	}
	return nil
}
