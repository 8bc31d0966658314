package repository

import (
	"recruiting_backend/internal/model"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Create(interaction *model.Interaction) error {
	return r.DB.Create(interaction).Error
}

func (r *InteractionRepository) FindByID(id uint) (*model.Interaction, error) {
	var interaction model.Interaction
	err := r.DB.First(&interaction, id).Error
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (r *InteractionRepository) ListByAthlete(athleteID uint) ([]model.Interaction, error) {
	var interactions []model.Interaction
	err := r.DB.Where("athlete_id = ?", athleteID).Order("occurred_at desc").Find(&interactions).Error
	return interactions, err
}

func (r *InteractionRepository) ListBySchool(athleteID, schoolID uint) ([]model.Interaction, error) {
	var interactions []model.Interaction
	err := r.DB.Where("athlete_id = ? AND school_id = ?", athleteID, schoolID).Order("occurred_at desc").Find(&interactions).Error
	return interactions, err
}

func (r *InteractionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Interaction{}, id).Error
}
