package engine

import (
	"recruiting_backend/internal/model"
	"recruiting_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// Evaluator runs every registered rule against a context snapshot and turns
// surviving candidates into new suggestion records.
type Evaluator struct {
	registry *Registry
	logger   *zap.Logger
}

func NewEvaluator(registry *Registry, logger *zap.Logger) *Evaluator {
	return &Evaluator{registry: registry, logger: logger}
}

// Collect runs all rules and flattens their candidates. A panicking rule is
// isolated: its output is dropped for the run and the remaining rules still
// execute.
func (e *Evaluator) Collect(rc *Context) []Candidate {
	var all []Candidate
	for _, rule := range e.registry.All() {
		cands := e.runRule(rule, rc)
		all = append(all, cands...)
	}
	return all
}

func (e *Evaluator) runRule(rule Rule, rc *Context) (cands []Candidate) {
	defer func() {
		if r := recover(); r != nil {
			monitoring.RuleFailureCounter.WithLabelValues(rule.Type()).Inc()
			e.logger.Error("rule evaluation failed",
				zap.String("rule_type", rule.Type()),
				zap.Uint("athlete_id", rc.Athlete.ID),
				zap.Any("panic", r),
			)
			cands = nil
		}
	}()
	return rule.Evaluate(rc)
}

// NewSuggestions filters candidates against existing records and returns the
// ones that become brand-new suggestions.
//
// A candidate is suppressed when its dedup key matches:
//   - an active suggestion (the active-duplicate invariant),
//   - a completed suggestion of any age (completed is terminal forever), or
//   - a dismissed suggestion (resurfacing is owned by Reappearances, which
//     enforces the cooldown and escalation).
func (e *Evaluator) NewSuggestions(candidates []Candidate, existing []model.Suggestion, rc *Context) []model.Suggestion {
	blocked := make(map[string]bool, len(existing))
	for i := range existing {
		blocked[existing[i].DedupKey()] = true
	}

	var out []model.Suggestion
	seen := make(map[string]bool, len(candidates))
	for _, cand := range candidates {
		key := cand.DedupKey(rc.Athlete.ID)
		if blocked[key] || seen[key] {
			continue
		}
		seen[key] = true

		out = append(out, model.Suggestion{
			AthleteID:       rc.Athlete.ID,
			RuleType:        cand.RuleType,
			Urgency:         cand.Urgency,
			Message:         cand.Message,
			ActionType:      cand.ActionType,
			RelatedSchoolID: cand.RelatedSchoolID,
			RelatedTaskID:   cand.RelatedTaskID,
		})
		monitoring.SuggestionCounter.WithLabelValues(cand.RuleType).Inc()
	}
	return out
}
