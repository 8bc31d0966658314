package service

import (
	"recruiting_backend/internal/model"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/util"

	"gorm.io/gorm"
)

type SchoolService struct {
	SchoolRepo *repository.SchoolRepository
	CoachRepo  *repository.CoachRepository
}

func NewSchoolService(schoolRepo *repository.SchoolRepository, coachRepo *repository.CoachRepository) *SchoolService {
	return &SchoolService{SchoolRepo: schoolRepo, CoachRepo: coachRepo}
}

func (s *SchoolService) Create(athleteID uint, school *model.School) error {
	school.AthleteID = athleteID
	return s.SchoolRepo.Create(school)
}

func (s *SchoolService) Update(schoolID, athleteID uint, updates *model.School) (*model.School, error) {
	school, err := s.findOwned(schoolID, athleteID)
	if err != nil {
		return nil, err
	}

	school.Name = updates.Name
	school.Division = updates.Division
	school.Location = updates.Location
	school.PriorityTier = updates.PriorityTier
	school.Status = updates.Status
	school.Notes = updates.Notes

	if err := s.SchoolRepo.Update(school); err != nil {
		return nil, err
	}
	return school, nil
}

func (s *SchoolService) Get(schoolID, athleteID uint) (*model.School, error) {
	return s.findOwned(schoolID, athleteID)
}

func (s *SchoolService) List(athleteID uint) ([]model.School, error) {
	return s.SchoolRepo.ListByAthlete(athleteID)
}

func (s *SchoolService) Delete(schoolID, athleteID uint) error {
	if _, err := s.findOwned(schoolID, athleteID); err != nil {
		return err
	}
	return s.SchoolRepo.Delete(schoolID)
}

func (s *SchoolService) ListCoaches(schoolID, athleteID uint) ([]model.Coach, error) {
	if _, err := s.findOwned(schoolID, athleteID); err != nil {
		return nil, err
	}
	return s.CoachRepo.ListBySchool(schoolID)
}

func (s *SchoolService) AddCoach(schoolID, athleteID uint, coach *model.Coach) error {
	if _, err := s.findOwned(schoolID, athleteID); err != nil {
		return err
	}
	coach.SchoolID = schoolID
	return s.CoachRepo.Create(coach)
}

func (s *SchoolService) findOwned(schoolID, athleteID uint) (*model.School, error) {
	school, err := s.SchoolRepo.FindByID(schoolID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrSchoolNotFound
	} else if err != nil {
		return nil, err
	}
	if school.AthleteID != athleteID {
		return nil, util.ErrPermissionDenied
	}
	return school, nil
}
