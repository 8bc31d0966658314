package repository

import (
	"recruiting_backend/internal/model"

	"gorm.io/gorm"
)

type SuggestionRepository struct {
	DB *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{DB: db}
}

func (r *SuggestionRepository) Create(suggestion *model.Suggestion) error {
	return r.DB.Create(suggestion).Error
}

// CreateBatch inserts an evaluation run's output in one transaction so a run
// either lands completely or not at all.
func (r *SuggestionRepository) CreateBatch(suggestions []model.Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range suggestions {
			if err := tx.Create(&suggestions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SuggestionRepository) Update(suggestion *model.Suggestion) error {
	return r.DB.Save(suggestion).Error
}

func (r *SuggestionRepository) FindByID(id uint) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	err := r.DB.First(&suggestion, id).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// ListByAthlete returns every suggestion row for an athlete, terminal ones
// included. The engine needs full history for dedup and reappearance checks.
func (r *SuggestionRepository) ListByAthlete(athleteID uint) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	err := r.DB.Where("athlete_id = ?", athleteID).Order("created_at desc").Find(&suggestions).Error
	return suggestions, err
}

func (r *SuggestionRepository) ListActive(athleteID uint) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	err := r.DB.Where("athlete_id = ? AND dismissed = false AND completed = false", athleteID).
		Order("created_at desc").Find(&suggestions).Error
	return suggestions, err
}

// ListActiveForTask returns open suggestions pointing at a task, used for
// system auto-completion when the task gets done.
func (r *SuggestionRepository) ListActiveForTask(athleteID, taskID uint) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	err := r.DB.Where("athlete_id = ? AND related_task_id = ? AND dismissed = false AND completed = false", athleteID, taskID).
		Find(&suggestions).Error
	return suggestions, err
}

// ListActiveForRule returns open suggestions of one rule type regardless of
// scope, e.g. missing-video once a highlight clip is uploaded.
func (r *SuggestionRepository) ListActiveForRule(athleteID uint, ruleType string) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	err := r.DB.Where("athlete_id = ? AND rule_type = ? AND dismissed = false AND completed = false",
		athleteID, ruleType).Find(&suggestions).Error
	return suggestions, err
}

// ListActiveForSchoolRule returns open suggestions of one rule type for a
// school, used for system auto-completion when the triggering condition is
// resolved by the user.
func (r *SuggestionRepository) ListActiveForSchoolRule(athleteID, schoolID uint, ruleType string) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	err := r.DB.Where("athlete_id = ? AND related_school_id = ? AND rule_type = ? AND dismissed = false AND completed = false",
		athleteID, schoolID, ruleType).Find(&suggestions).Error
	return suggestions, err
}
