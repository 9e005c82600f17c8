package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these to
// HTTP statuses; anything else is logged and surfaced as a generic 500.
var (
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrQuizHasResults  = errors.New("quiz has recorded results")
	ErrAttemptConflict = errors.New("attempt already recorded for this status")
	ErrSelfDemotion    = errors.New("super admins cannot change their own role")
	ErrSelfDelete      = errors.New("super admins cannot delete their own account")
)
