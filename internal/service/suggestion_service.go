package service

import (
	"context"
	"fmt"
	"time"

	"recruiting_backend/internal/engine"
	"recruiting_backend/internal/model"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/util"
	"recruiting_backend/pkg/logger"
	"recruiting_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	evalLockTTL    = 30 * time.Second
	evalLockPrefix = "suggestion:eval:"
)

// SuggestionService owns the evaluate-reconcile-surface pipeline and the
// user-facing suggestion lifecycle.
type SuggestionService struct {
	SuggestionRepo  *repository.SuggestionRepository
	SchoolRepo      *repository.SchoolRepository
	InteractionRepo *repository.InteractionRepository
	TaskRepo        *repository.TaskRepository
	EventRepo       *repository.EventRepository
	VideoRepo       *repository.VideoRepository
	UserRepo        *repository.UserRepository
	Redis           *redis.Client
	Evaluator       *engine.Evaluator
}

func NewSuggestionService(
	suggestionRepo *repository.SuggestionRepository,
	schoolRepo *repository.SchoolRepository,
	interactionRepo *repository.InteractionRepository,
	taskRepo *repository.TaskRepository,
	eventRepo *repository.EventRepository,
	videoRepo *repository.VideoRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *SuggestionService {
	return &SuggestionService{
		SuggestionRepo:  suggestionRepo,
		SchoolRepo:      schoolRepo,
		InteractionRepo: interactionRepo,
		TaskRepo:        taskRepo,
		EventRepo:       eventRepo,
		VideoRepo:       videoRepo,
		UserRepo:        userRepo,
		Redis:           rdb,
		Evaluator:       engine.NewEvaluator(engine.DefaultRegistry(), logger.Log),
	}
}

// BuildContext assembles the snapshot every rule reads. Any storage failure
// aborts the whole run: the engine never evaluates a partial context.
func (s *SuggestionService) BuildContext(athleteID uint) (*engine.Context, error) {
	athlete, err := s.UserRepo.FindByID(athleteID)
	if err != nil {
		return nil, fmt.Errorf("%w: athlete: %v", util.ErrContextUnavailable, err)
	}

	schools, err := s.SchoolRepo.ListByAthlete(athleteID)
	if err != nil {
		return nil, fmt.Errorf("%w: schools: %v", util.ErrContextUnavailable, err)
	}

	interactions, err := s.InteractionRepo.ListByAthlete(athleteID)
	if err != nil {
		return nil, fmt.Errorf("%w: interactions: %v", util.ErrContextUnavailable, err)
	}

	tasks, err := s.TaskRepo.ListCatalog()
	if err != nil {
		return nil, fmt.Errorf("%w: task catalog: %v", util.ErrContextUnavailable, err)
	}

	athleteTasks, err := s.TaskRepo.ListAthleteTasks(athleteID)
	if err != nil {
		return nil, fmt.Errorf("%w: athlete tasks: %v", util.ErrContextUnavailable, err)
	}

	events, err := s.EventRepo.ListByAthlete(athleteID)
	if err != nil {
		return nil, fmt.Errorf("%w: events: %v", util.ErrContextUnavailable, err)
	}

	videos, err := s.VideoRepo.ListByAthlete(athleteID)
	if err != nil {
		return nil, fmt.Errorf("%w: videos: %v", util.ErrContextUnavailable, err)
	}

	return &engine.Context{
		Athlete:      *athlete,
		Schools:      schools,
		Interactions: interactions,
		Tasks:        tasks,
		AthleteTasks: athleteTasks,
		Events:       events,
		Videos:       videos,
		Now:          time.Now(),
	}, nil
}

// RunEvaluation executes one full engine pass for an athlete: collect
// candidates, insert brand-new suggestions, resurface eligible dismissed
// ones, then re-apply the surfacing cap. The run is serialized per athlete
// with a redis lock so a scheduled job and a user action cannot race each
// other into duplicate inserts.
func (s *SuggestionService) RunEvaluation(athleteID uint) error {
	ctx := context.Background()
	lockKey := fmt.Sprintf("%s%d", evalLockPrefix, athleteID)
	ok, err := s.Redis.SetNX(ctx, lockKey, 1, evalLockTTL).Result()
	if err == nil && !ok {
		// Another run for this athlete is in flight; it will produce the
		// same output, so this one can bail out.
		return nil
	}
	if err == nil {
		defer s.Redis.Del(ctx, lockKey)
	}

	start := time.Now()
	defer func() {
		monitoring.EvaluationDuration.Observe(time.Since(start).Seconds())
	}()

	rc, err := s.BuildContext(athleteID)
	if err != nil {
		return err
	}

	existing, err := s.SuggestionRepo.ListByAthlete(athleteID)
	if err != nil {
		return fmt.Errorf("%w: suggestions: %v", util.ErrContextUnavailable, err)
	}

	candidates := s.Evaluator.Collect(rc)
	fresh := s.Evaluator.NewSuggestions(candidates, existing, rc)
	reappeared := engine.Reappearances(athleteID, candidates, existing, rc.Now)

	inserts := append(fresh, reappeared...)
	if err := s.SuggestionRepo.CreateBatch(inserts); err != nil {
		return err
	}

	if len(inserts) > 0 {
		logger.Log.Info("evaluation run produced suggestions",
			zap.Uint("athlete_id", athleteID),
			zap.Int("new", len(fresh)),
			zap.Int("reappeared", len(reappeared)),
		)
	}

	return s.resurface(athleteID, rc.Now)
}

// resurface reloads the active set and re-applies the visible cap.
func (s *SuggestionService) resurface(athleteID uint, now time.Time) error {
	active, err := s.SuggestionRepo.ListActive(athleteID)
	if err != nil {
		return err
	}

	refs := make([]*model.Suggestion, len(active))
	for i := range active {
		refs[i] = &active[i]
	}

	engine.ApplySurfacing(refs, now)
	for _, sg := range refs {
		if err := s.SuggestionRepo.Update(sg); err != nil {
			return err
		}
	}
	return nil
}

// FetchResult is what the presentation layer renders.
type FetchResult struct {
	Suggestions []model.Suggestion `json:"suggestions"`
	MoreCount   int                `json:"moreCount"`
}

// FetchSuggestions returns the visible suggestions for a display context.
// location school_detail narrows to one school via scopeID.
func (s *SuggestionService) FetchSuggestions(athleteID uint, location string, scopeID *uint) (*FetchResult, error) {
	active, err := s.SuggestionRepo.ListActive(athleteID)
	if err != nil {
		return nil, err
	}

	if location == util.LocationSchoolDetail && scopeID != nil {
		var scoped []model.Suggestion
		for _, sg := range active {
			if sg.RelatedSchoolID != nil && *sg.RelatedSchoolID == *scopeID {
				scoped = append(scoped, sg)
			}
		}
		active = scoped
	}

	var visible []*model.Suggestion
	for i := range active {
		if !active[i].PendingSurface {
			visible = append(visible, &active[i])
		}
	}
	engine.Rank(visible)

	out := make([]model.Suggestion, len(visible))
	for i, sg := range visible {
		out[i] = *sg
	}

	return &FetchResult{
		Suggestions: out,
		MoreCount:   engine.MoreCount(len(active), len(out)),
	}, nil
}

// Dismiss marks a suggestion dismissed. Repeat calls are no-ops; dismissing
// a completed suggestion surfaces ErrInvalidTransition.
func (s *SuggestionService) Dismiss(id, athleteID uint) error {
	suggestion, err := s.findOwned(id, athleteID)
	if err != nil {
		return err
	}

	wasDismissed := suggestion.Dismissed
	if err := engine.Dismiss(suggestion, time.Now()); err != nil {
		return err
	}
	if wasDismissed {
		return nil
	}
	return s.SuggestionRepo.Update(suggestion)
}

// Complete marks a suggestion completed. Terminal; repeat calls are no-ops.
func (s *SuggestionService) Complete(id, athleteID uint) error {
	suggestion, err := s.findOwned(id, athleteID)
	if err != nil {
		return err
	}

	wasCompleted := suggestion.Completed
	if err := engine.Complete(suggestion, time.Now()); err != nil {
		return err
	}
	if wasCompleted {
		return nil
	}
	return s.SuggestionRepo.Update(suggestion)
}

// SurfaceMore promotes up to count pending suggestions into the visible set.
// Promotion only: no evaluator pass runs here.
func (s *SuggestionService) SurfaceMore(athleteID uint, count int) ([]model.Suggestion, error) {
	active, err := s.SuggestionRepo.ListActive(athleteID)
	if err != nil {
		return nil, err
	}

	var pending []*model.Suggestion
	for i := range active {
		if active[i].PendingSurface {
			pending = append(pending, &active[i])
		}
	}

	promoted := engine.SurfaceMore(pending, count, time.Now())
	out := make([]model.Suggestion, 0, len(promoted))
	for _, sg := range promoted {
		if err := s.SuggestionRepo.Update(sg); err != nil {
			return nil, err
		}
		out = append(out, *sg)
	}
	return out, nil
}

// AutoCompleteForTask closes open suggestions pointing at a task the athlete
// just finished. System-side completion, same terminal semantics as a user
// action.
func (s *SuggestionService) AutoCompleteForTask(athleteID, taskID uint) error {
	open, err := s.SuggestionRepo.ListActiveForTask(athleteID, taskID)
	if err != nil {
		return err
	}
	return s.completeAll(open)
}

// AutoCompleteForRule closes all open suggestions of one rule type, used when
// the resolving action is not tied to a school or task (e.g. a highlight video
// upload closing missing-video suggestions).
func (s *SuggestionService) AutoCompleteForRule(athleteID uint, ruleType string) error {
	open, err := s.SuggestionRepo.ListActiveForRule(athleteID, ruleType)
	if err != nil {
		return err
	}
	return s.completeAll(open)
}

// AutoCompleteForSchoolRule closes open suggestions of one rule type for a
// school, e.g. interaction-gap once a new interaction is logged.
func (s *SuggestionService) AutoCompleteForSchoolRule(athleteID, schoolID uint, ruleType string) error {
	open, err := s.SuggestionRepo.ListActiveForSchoolRule(athleteID, schoolID, ruleType)
	if err != nil {
		return err
	}
	return s.completeAll(open)
}

func (s *SuggestionService) completeAll(suggestions []model.Suggestion) error {
	now := time.Now()
	for i := range suggestions {
		if err := engine.Complete(&suggestions[i], now); err != nil {
			continue
		}
		if err := s.SuggestionRepo.Update(&suggestions[i]); err != nil {
			return err
		}
	}
	return nil
}

// RunForAllAthletes is the scheduled daily pass. One athlete's failure does
// not stop the sweep.
func (s *SuggestionService) RunForAllAthletes() error {
	athletes, err := s.UserRepo.ListAthletes()
	if err != nil {
		return err
	}

	for _, athlete := range athletes {
		if err := s.RunEvaluation(athlete.ID); err != nil {
			logger.Log.Error("scheduled evaluation failed",
				zap.Uint("athlete_id", athlete.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *SuggestionService) findOwned(id, athleteID uint) (*model.Suggestion, error) {
	suggestion, err := s.SuggestionRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrSuggestionNotFound
	} else if err != nil {
		return nil, err
	}
	if suggestion.AthleteID != athleteID {
		return nil, util.ErrPermissionDenied
	}
	return suggestion, nil
}
