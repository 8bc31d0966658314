package service

import (
	"recruiting_backend/internal/engine"
	"recruiting_backend/internal/model"
)

// RecoveryService computes the on-demand recovery plan. Nothing is persisted;
// every call re-evaluates the athlete's current state.
type RecoveryService struct {
	Suggestions *SuggestionService
}

func NewRecoveryService(suggestions *SuggestionService) *RecoveryService {
	return &RecoveryService{Suggestions: suggestions}
}

// Evaluate returns the highest-priority recovery plan, or nil when the
// athlete is on track.
func (s *RecoveryService) Evaluate(athleteID uint) (*model.RecoveryPlan, error) {
	rc, err := s.Suggestions.BuildContext(athleteID)
	if err != nil {
		return nil, err
	}
	return engine.EvaluateRecovery(rc), nil
}
