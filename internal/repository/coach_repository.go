package repository

import (
	"recruiting_backend/internal/model"

	"gorm.io/gorm"
)

type CoachRepository struct {
	DB *gorm.DB
}

func NewCoachRepository(db *gorm.DB) *CoachRepository {
	return &CoachRepository{DB: db}
}

func (r *CoachRepository) Create(coach *model.Coach) error {
	return r.DB.Create(coach).Error
}

func (r *CoachRepository) Update(coach *model.Coach) error {
	return r.DB.Save(coach).Error
}

func (r *CoachRepository) FindByID(id uint) (*model.Coach, error) {
	var coach model.Coach
	err := r.DB.First(&coach, id).Error
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *CoachRepository) ListBySchool(schoolID uint) ([]model.Coach, error) {
	var coaches []model.Coach
	err := r.DB.Where("school_id = ?", schoolID).Order("title asc").Find(&coaches).Error
	return coaches, err
}

func (r *CoachRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Coach{}, id).Error
}
