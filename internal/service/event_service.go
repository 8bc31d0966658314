package service

import (
	"recruiting_backend/internal/model"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/util"

	"gorm.io/gorm"
)

type EventService struct {
	EventRepo *repository.EventRepository
}

func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{EventRepo: eventRepo}
}

func (s *EventService) Create(athleteID uint, event *model.Event) error {
	event.AthleteID = athleteID
	return s.EventRepo.Create(event)
}

func (s *EventService) List(athleteID uint) ([]model.Event, error) {
	return s.EventRepo.ListByAthlete(athleteID)
}

func (s *EventService) Update(eventID, athleteID uint, updates *model.Event) (*model.Event, error) {
	event, err := s.findOwned(eventID, athleteID)
	if err != nil {
		return nil, err
	}

	event.Name = updates.Name
	event.Type = updates.Type
	event.StartsAt = updates.StartsAt
	event.Location = updates.Location
	event.SchoolID = updates.SchoolID
	event.Notes = updates.Notes

	if err := s.EventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Delete(eventID, athleteID uint) error {
	if _, err := s.findOwned(eventID, athleteID); err != nil {
		return err
	}
	return s.EventRepo.Delete(eventID)
}

func (s *EventService) findOwned(eventID, athleteID uint) (*model.Event, error) {
	event, err := s.EventRepo.FindByID(eventID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrEventNotFound
	} else if err != nil {
		return nil, err
	}
	if event.AthleteID != athleteID {
		return nil, util.ErrPermissionDenied
	}
	return event, nil
}
