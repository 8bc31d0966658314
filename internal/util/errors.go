package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrSchoolNotFound      = errors.New("school not found")
	ErrCoachNotFound       = errors.New("coach not found")
	ErrInteractionNotFound = errors.New("interaction not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrVideoNotFound       = errors.New("video not found")

	// Engine error taxonomy
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrInvalidTransition  = errors.New("suggestion transition not allowed")
	ErrContextUnavailable = errors.New("athlete context unavailable")
)
