package service

import (
	"time"

	"recruiting_backend/internal/model"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/util"

	"gorm.io/gorm"
)

type InteractionService struct {
	InteractionRepo *repository.InteractionRepository
	SchoolRepo      *repository.SchoolRepository
	Suggestions     *SuggestionService
}

func NewInteractionService(
	interactionRepo *repository.InteractionRepository,
	schoolRepo *repository.SchoolRepository,
	suggestions *SuggestionService,
) *InteractionService {
	return &InteractionService{
		InteractionRepo: interactionRepo,
		SchoolRepo:      schoolRepo,
		Suggestions:     suggestions,
	}
}

// Log records an interaction and closes any open interaction-gap suggestion
// for that school: the gap the suggestion flagged no longer exists.
func (s *InteractionService) Log(athleteID uint, interaction *model.Interaction) error {
	school, err := s.SchoolRepo.FindByID(interaction.SchoolID)
	if err == gorm.ErrRecordNotFound {
		return util.ErrSchoolNotFound
	} else if err != nil {
		return err
	}
	if school.AthleteID != athleteID {
		return util.ErrPermissionDenied
	}

	interaction.AthleteID = athleteID
	if interaction.OccurredAt.IsZero() {
		interaction.OccurredAt = time.Now()
	}
	if err := s.InteractionRepo.Create(interaction); err != nil {
		return err
	}

	return s.Suggestions.AutoCompleteForSchoolRule(athleteID, interaction.SchoolID, model.RuleInteractionGap)
}

func (s *InteractionService) List(athleteID uint, schoolID *uint) ([]model.Interaction, error) {
	if schoolID != nil {
		return s.InteractionRepo.ListBySchool(athleteID, *schoolID)
	}
	return s.InteractionRepo.ListByAthlete(athleteID)
}

func (s *InteractionService) Delete(id, athleteID uint) error {
	interaction, err := s.InteractionRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return util.ErrInteractionNotFound
	} else if err != nil {
		return err
	}
	if interaction.AthleteID != athleteID {
		return util.ErrPermissionDenied
	}
	return s.InteractionRepo.Delete(id)
}
