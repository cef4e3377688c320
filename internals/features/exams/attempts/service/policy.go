// file: internals/features/exams/attempts/service/policy.go
package service

import (
	"time"

	amodel "tayari_backend/internals/features/exams/attempts/model"
)

/* =========================================================
   ATTEMPT POLICY
   The attempt manager is the single source of truth for the
   remaining-attempts computation; callers never re-derive it.
========================================================= */

// RemainingAttempts returns how many completed attempts the user still has.
// Nil means the quiz has no limit configured. Abandoned attempts do not
// count toward the cap.
func RemainingAttempts(attemptLimit, completedCount int) *int {
	if attemptLimit <= 0 {
		return nil
	}
	left := attemptLimit - completedCount
	if left < 0 {
		left = 0
	}
	return &left
}

// CanStartAttempt enforces the two start preconditions.
func CanStartAttempt(attemptLimit, completedCount int, hasInProgress bool) error {
	if hasInProgress {
		return ErrAttemptAlreadyInProgress
	}
	if left := RemainingAttempts(attemptLimit, completedCount); left != nil && *left == 0 {
		return ErrAttemptLimitExceeded
	}
	return nil
}

// buildOverview derives the history overview from the full per-quiz counts,
// never from a page of rows.
func buildOverview(attemptLimit, completedCount int, hasInProgress bool) *AttemptsOverview {
	return &AttemptsOverview{
		Remaining:  RemainingAttempts(attemptLimit, completedCount),
		CanAttempt: CanStartAttempt(attemptLimit, completedCount, hasInProgress) == nil,
	}
}

// AttemptExpired reports whether an in-progress attempt has outlived the quiz
// time limit. Expiry is evaluated lazily on the next interaction; there is no
// background timer.
func AttemptExpired(startedAt, now time.Time, timeLimitSec int) bool {
	if timeLimitSec <= 0 {
		return false
	}
	return now.Sub(startedAt) > time.Duration(timeLimitSec)*time.Second
}

// expireIfStale abandons an in-progress attempt that outlived the quiz time
// limit. Shared by start, record and submit so every interaction with a stale
// attempt behaves the same. Returns true when the attempt was expired; the
// caller persists it.
func expireIfStale(attempt *amodel.QuizAttemptModel, timeLimitSec int, now time.Time) bool {
	if !attempt.IsInProgress() {
		return false
	}
	if !AttemptExpired(attempt.QuizAttemptStartedAt, now, timeLimitSec) {
		return false
	}
	attempt.MarkAbandoned(now)
	return true
}
