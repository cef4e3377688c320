package service

import "errors"

// Policy errors surfaced as-is to controllers; the UI keys behavior off the
// specific kind, so none of these may be masked as a generic failure.
var (
	ErrNotFound                 = errors.New("resource not found")
	ErrAttemptLimitExceeded     = errors.New("attempt limit exceeded")
	ErrAttemptAlreadyInProgress = errors.New("an attempt is already in progress")
	ErrAttemptNotEditable       = errors.New("attempt is no longer editable")
	ErrAttemptNotFinalized      = errors.New("attempt has not been submitted yet")
	ErrQuestionMismatch         = errors.New("question does not belong to the attempt's quiz")
)
