package engine

import (
	"time"

	"recruiting_backend/internal/model"
)

// Context is the read-only snapshot every rule evaluates against. It is
// assembled once per run by the suggestion service; rules must not mutate it.
type Context struct {
	Athlete      model.User
	Schools      []model.School
	Interactions []model.Interaction
	Tasks        []model.Task // catalog
	AthleteTasks []model.AthleteTask
	Events       []model.Event
	Videos       []model.Video
	Now          time.Time
}

// LastInteractionAt returns the most recent occurred-at for a school.
func (c *Context) LastInteractionAt(schoolID uint) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, in := range c.Interactions {
		if in.SchoolID != schoolID {
			continue
		}
		if !found || in.OccurredAt.After(latest) {
			latest = in.OccurredAt
			found = true
		}
	}
	return latest, found
}

// DaysSince returns whole days elapsed between t and the snapshot clock.
func (c *Context) DaysSince(t time.Time) int {
	return int(c.Now.Sub(t).Hours() / 24)
}

// TaskByCode looks up a catalog task by its stable code.
func (c *Context) TaskByCode(code string) (model.Task, bool) {
	for _, t := range c.Tasks {
		if t.Code == code {
			return t, true
		}
	}
	return model.Task{}, false
}

// AthleteTaskFor returns the athlete's progress record for a catalog task.
func (c *Context) AthleteTaskFor(taskID uint) (model.AthleteTask, bool) {
	for _, at := range c.AthleteTasks {
		if at.TaskID == taskID {
			return at, true
		}
	}
	return model.AthleteTask{}, false
}

// PositiveInteractionWithin reports whether any interaction with sentiment
// positive or very_positive occurred inside the window.
func (c *Context) PositiveInteractionWithin(window time.Duration) bool {
	cutoff := c.Now.Add(-window)
	for _, in := range c.Interactions {
		if in.OccurredAt.Before(cutoff) {
			continue
		}
		if in.Sentiment == model.SentimentPositive || in.Sentiment == model.SentimentVeryPositive {
			return true
		}
	}
	return false
}

// HasHighlightVideo reports whether at least one highlight clip exists.
func (c *Context) HasHighlightVideo() bool {
	for _, v := range c.Videos {
		if v.IsHighlight {
			return true
		}
	}
	return false
}
