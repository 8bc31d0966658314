package service

import (
	"recruiting_backend/internal/model"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// UpdateProfile writes only the athlete-editable fields.
func (s *UserService) UpdateProfile(userID uint, updates *model.User) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	user.Name = updates.Name
	user.GraduationYear = updates.GraduationYear
	user.Sport = updates.Sport
	user.Position = updates.Position
	user.Height = updates.Height
	user.GPA = updates.GPA
	user.Avatar = updates.Avatar

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListAthletes() ([]model.User, error) {
	return s.UserRepo.ListAthletes()
}
