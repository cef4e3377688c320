// file: internals/features/exams/attempts/service/attempt_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "tayari_backend/internals/features/exams/attempts/model"
	qmodel "tayari_backend/internals/features/exams/quizzes/model"
)

/* =========================================================
   SERVICE
========================================================= */

type AttemptService struct {
	DB *gorm.DB
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{DB: db}
}

// AttemptsOverview is what the consumer surfaces display next to the history.
type AttemptsOverview struct {
	// Nil = unlimited
	Remaining  *int `json:"remaining_attempts"`
	CanAttempt bool `json:"can_attempt"`
}

// AttemptResult bundles everything needed to render a result screen.
type AttemptResult struct {
	Attempt   *amodel.QuizAttemptModel
	Quiz      *qmodel.QuizModel
	Questions []qmodel.QuizQuestionModel
	Answers   []amodel.QuizAttemptAnswerModel
	Summary   ResultSummary
}

/* =========================================================
   START ATTEMPT
========================================================= */

// StartAttempt creates a new in-progress attempt iff no attempt is open for
// this (user, quiz) and the completed count is below the quiz attempt limit.
// A stale open attempt past the quiz time limit is abandoned on the way.
func (s *AttemptService) StartAttempt(ctx context.Context, userID, quizID uuid.UUID) (*amodel.QuizAttemptModel, error) {
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	var created *amodel.QuizAttemptModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		// Lazy expiry of a stale open attempt
		var open amodel.QuizAttemptModel
		err := tx.Where("quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ? AND quiz_attempt_status = ?",
			quizID, userID, amodel.AttemptInProgress).
			First(&open).Error
		hasOpen := false
		switch {
		case err == nil:
			if expireIfStale(&open, quiz.QuizTimeLimitSec, now) {
				if err := tx.Save(&open).Error; err != nil {
					return err
				}
			} else {
				hasOpen = true
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// nothing open
		default:
			return err
		}

		var completed int64
		if err := tx.Model(&amodel.QuizAttemptModel{}).
			Where("quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ? AND quiz_attempt_status = ?",
				quizID, userID, amodel.AttemptCompleted).
			Count(&completed).Error; err != nil {
			return err
		}

		if err := CanStartAttempt(quiz.QuizAttemptLimit, int(completed), hasOpen); err != nil {
			return err
		}

		var maxNumber int
		if err := tx.Model(&amodel.QuizAttemptModel{}).
			Where("quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ?", quizID, userID).
			Select("COALESCE(MAX(quiz_attempt_number), 0)").
			Scan(&maxNumber).Error; err != nil {
			return err
		}

		attempt := &amodel.QuizAttemptModel{
			QuizAttemptID:        uuid.New(),
			QuizAttemptQuizID:    quizID,
			QuizAttemptUserID:    userID,
			QuizAttemptNumber:    maxNumber + 1,
			QuizAttemptStatus:    amodel.AttemptInProgress,
			QuizAttemptStartedAt: now,
		}
		if err := tx.Create(attempt).Error; err != nil {
			// race loser on the one-in-progress unique index
			if isDuplicateKey(err) {
				return ErrAttemptAlreadyInProgress
			}
			return err
		}
		created = attempt
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] attempt started. attempt_id=%s quiz_id=%s user_id=%s number=%d",
		created.QuizAttemptID, quizID, userID, created.QuizAttemptNumber)
	return created, nil
}

/* =========================================================
   ABANDON (housekeeping)
========================================================= */

// AbandonAttempt marks an open attempt as abandoned. Abandoned attempts stay
// visible in history but never count toward the attempt-limit cap.
func (s *AttemptService) AbandonAttempt(ctx context.Context, userID, attemptID uuid.UUID) (*amodel.QuizAttemptModel, error) {
	attempt, err := s.loadOwnedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	switch attempt.QuizAttemptStatus {
	case amodel.AttemptCompleted:
		return nil, ErrAttemptNotEditable
	case amodel.AttemptAbandoned:
		return attempt, nil // no-op
	}

	attempt.MarkAbandoned(time.Now().UTC())
	if err := s.DB.WithContext(ctx).Save(attempt).Error; err != nil {
		return nil, err
	}
	return attempt, nil
}

/* =========================================================
   RECORD ANSWER (upsert)
========================================================= */

// RecordAnswer captures or overwrites the selection for one question of an
// open attempt. At most one row exists per (attempt, question); changing an
// answer before submit updates that row in place.
func (s *AttemptService) RecordAnswer(ctx context.Context, userID, attemptID, questionID uuid.UUID, selected []uuid.UUID, timeSec int) (*amodel.QuizAttemptAnswerModel, error) {
	attempt, err := s.loadOwnedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}

	quiz, err := s.loadQuiz(ctx, attempt.QuizAttemptQuizID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if expireIfStale(attempt, quiz.QuizTimeLimitSec, now) {
		if err := s.DB.WithContext(ctx).Save(attempt).Error; err != nil {
			return nil, err
		}
		return nil, ErrAttemptNotEditable
	}
	if !attempt.IsInProgress() {
		return nil, ErrAttemptNotEditable
	}

	var question qmodel.QuizQuestionModel
	if err := s.DB.WithContext(ctx).
		First(&question, "quiz_question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if question.QuizQuestionQuizID != attempt.QuizAttemptQuizID {
		return nil, ErrQuestionMismatch
	}

	// Eager correctness only for single-answer kinds: it needs the correct
	// option identity, not the marking formula. Multi-select partial credit
	// is deferred to submit.
	var isCorrect *bool
	marks := 0.0
	if question.QuizQuestionKind == qmodel.QuestionSingleSelect || question.QuizQuestionKind == qmodel.QuestionTrueFalse {
		opts, err := question.Options()
		if err != nil {
			return nil, err
		}
		score := ScoreSelection(question.QuizQuestionKind, opts, question.MarkingScheme(), selected)
		if !score.Skipped {
			isCorrect = score.IsCorrect
			marks = score.Marks
		}
	}

	var answer amodel.QuizAttemptAnswerModel
	err = s.DB.WithContext(ctx).
		Where("quiz_attempt_answer_attempt_id = ? AND quiz_attempt_answer_question_id = ?", attemptID, questionID).
		First(&answer).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		answer = amodel.QuizAttemptAnswerModel{
			QuizAttemptAnswerID:         uuid.New(),
			QuizAttemptAnswerQuizID:     attempt.QuizAttemptQuizID,
			QuizAttemptAnswerAttemptID:  attemptID,
			QuizAttemptAnswerQuestionID: questionID,
		}
	case err != nil:
		return nil, err
	}

	if err := answer.SetSelectedOptionIDs(selected); err != nil {
		return nil, err
	}
	answer.QuizAttemptAnswerIsCorrect = isCorrect
	answer.QuizAttemptAnswerMarks = marks
	answer.QuizAttemptAnswerTimeSec = timeSec
	answer.QuizAttemptAnswerAnsweredAt = now

	if err := s.DB.WithContext(ctx).Save(&answer).Error; err != nil {
		if isDuplicateKey(err) {
			// concurrent insert for the same question: last write wins is fine,
			// retry as update
			return s.RecordAnswer(ctx, userID, attemptID, questionID, selected, timeSec)
		}
		return nil, err
	}
	return &answer, nil
}

/* =========================================================
   FINALIZE (submit)
========================================================= */

// FinalizeAttempt scores every question from the final selections, aggregates
// the result and completes the attempt. Finalizing an already-completed
// attempt is a no-op that returns the stored result.
func (s *AttemptService) FinalizeAttempt(ctx context.Context, userID, attemptID uuid.UUID) (*AttemptResult, error) {
	attempt, err := s.loadOwnedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.QuizAttemptStatus == amodel.AttemptAbandoned {
		return nil, ErrAttemptNotEditable
	}
	if attempt.IsCompleted() {
		return s.buildStoredResult(ctx, attempt)
	}

	quiz, err := s.loadQuiz(ctx, attempt.QuizAttemptQuizID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	// A stale attempt expires on submit too, same as on start and record.
	if expireIfStale(attempt, quiz.QuizTimeLimitSec, now) {
		if err := s.DB.WithContext(ctx).Save(attempt).Error; err != nil {
			return nil, err
		}
		return nil, ErrAttemptNotEditable
	}

	var result *AttemptResult

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var questions []qmodel.QuizQuestionModel
		if err := tx.Where("quiz_question_quiz_id = ?", quiz.QuizID).
			Order("quiz_question_position ASC").
			Find(&questions).Error; err != nil {
			return err
		}

		var answers []amodel.QuizAttemptAnswerModel
		if err := tx.Where("quiz_attempt_answer_attempt_id = ?", attemptID).
			Find(&answers).Error; err != nil {
			return err
		}
		byQuestion := make(map[uuid.UUID]*amodel.QuizAttemptAnswerModel, len(answers))
		for i := range answers {
			byQuestion[answers[i].QuizAttemptAnswerQuestionID] = &answers[i]
		}

		scores := make([]QuestionScore, 0, len(questions))
		questionMarks := make([]float64, 0, len(questions))
		finalAnswers := make([]amodel.QuizAttemptAnswerModel, 0, len(questions))

		for i := range questions {
			q := &questions[i]
			questionMarks = append(questionMarks, q.QuizQuestionMarks)

			opts, err := q.Options()
			if err != nil {
				return err
			}

			row := byQuestion[q.QuizQuestionID]
			if row == nil {
				// untouched question: materialize a skipped row so the
				// breakdown is complete
				row = &amodel.QuizAttemptAnswerModel{
					QuizAttemptAnswerID:         uuid.New(),
					QuizAttemptAnswerQuizID:     quiz.QuizID,
					QuizAttemptAnswerAttemptID:  attemptID,
					QuizAttemptAnswerQuestionID: q.QuizQuestionID,
					QuizAttemptAnswerAnsweredAt: now,
				}
				_ = row.SetSelectedOptionIDs(nil)
			}

			score := ScoreSelection(q.QuizQuestionKind, opts, q.MarkingScheme(), row.SelectedOptionIDs())
			row.QuizAttemptAnswerIsCorrect = score.IsCorrect
			row.QuizAttemptAnswerMarks = score.Marks
			if err := tx.Save(row).Error; err != nil {
				return err
			}

			scores = append(scores, score)
			finalAnswers = append(finalAnswers, *row)
		}

		summary := BuildResult(quiz.QuizTotalMarks, quiz.QuizPassingMarks, questionMarks, scores)

		// Serialize concurrent finalize: only the transition from in_progress
		// writes; the loser re-reads the stored result below.
		res := tx.Model(&amodel.QuizAttemptModel{}).
			Where("quiz_attempt_id = ? AND quiz_attempt_status = ?", attemptID, amodel.AttemptInProgress).
			Updates(map[string]any{
				"quiz_attempt_status":       amodel.AttemptCompleted,
				"quiz_attempt_completed_at": now,
				"quiz_attempt_score":        summary.Score,
				"quiz_attempt_percentage":   summary.Percentage,
				"quiz_attempt_passed":       summary.Passed,
				"quiz_attempt_updated_at":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errFinalizeRace
		}

		attempt.MarkCompleted(summary.Score, summary.Percentage, summary.Passed, now)
		result = &AttemptResult{
			Attempt:   attempt,
			Quiz:      quiz,
			Questions: questions,
			Answers:   finalAnswers,
			Summary:   summary,
		}
		return nil
	})
	if errors.Is(err, errFinalizeRace) {
		// another submit won; return what it stored
		fresh, lerr := s.loadOwnedAttempt(ctx, userID, attemptID)
		if lerr != nil {
			return nil, lerr
		}
		return s.buildStoredResult(ctx, fresh)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] attempt finalized. attempt_id=%s score=%.2f pct=%.1f passed=%v",
		attemptID, result.Summary.Score, result.Summary.Percentage, result.Summary.Passed)
	return result, nil
}

var errFinalizeRace = errors.New("finalize race")

/* =========================================================
   RESULT (read)
========================================================= */

// GetResult returns the stored result with its per-question breakdown.
func (s *AttemptService) GetResult(ctx context.Context, userID, attemptID uuid.UUID) (*AttemptResult, error) {
	attempt, err := s.loadOwnedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if !attempt.IsCompleted() {
		return nil, ErrAttemptNotFinalized
	}
	return s.buildStoredResult(ctx, attempt)
}

// ListUserAttempts returns the caller's attempt history for one quiz plus the
// remaining-attempts overview.
func (s *AttemptService) ListUserAttempts(ctx context.Context, userID, quizID uuid.UUID, offset, limit int) ([]amodel.QuizAttemptModel, int64, *AttemptsOverview, error) {
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, 0, nil, err
	}

	base := s.DB.WithContext(ctx).Model(&amodel.QuizAttemptModel{}).
		Where("quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ?", quizID, userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, nil, err
	}

	var rows []amodel.QuizAttemptModel
	if err := base.Order("quiz_attempt_number DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, nil, err
	}

	var completed int64
	if err := s.DB.WithContext(ctx).Model(&amodel.QuizAttemptModel{}).
		Where("quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ? AND quiz_attempt_status = ?",
			quizID, userID, amodel.AttemptCompleted).
		Count(&completed).Error; err != nil {
		return nil, 0, nil, err
	}

	// The open-attempt check must cover the whole history, not the page of
	// rows being returned.
	var open int64
	if err := s.DB.WithContext(ctx).Model(&amodel.QuizAttemptModel{}).
		Where("quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ? AND quiz_attempt_status = ?",
			quizID, userID, amodel.AttemptInProgress).
		Count(&open).Error; err != nil {
		return nil, 0, nil, err
	}

	return rows, total, buildOverview(quiz.QuizAttemptLimit, int(completed), open > 0), nil
}

/* =========================================================
   Internals
========================================================= */

func (s *AttemptService) loadQuiz(ctx context.Context, quizID uuid.UUID) (*qmodel.QuizModel, error) {
	var quiz qmodel.QuizModel
	if err := s.DB.WithContext(ctx).
		First(&quiz, "quiz_id = ? AND quiz_is_published = TRUE", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (s *AttemptService) loadOwnedAttempt(ctx context.Context, userID, attemptID uuid.UUID) (*amodel.QuizAttemptModel, error) {
	var attempt amodel.QuizAttemptModel
	if err := s.DB.WithContext(ctx).
		First(&attempt, "quiz_attempt_id = ? AND quiz_attempt_user_id = ?", attemptID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

// buildStoredResult rebuilds the summary from persisted rows; finalize wrote
// them once, so this always matches what was returned at submit time.
func (s *AttemptService) buildStoredResult(ctx context.Context, attempt *amodel.QuizAttemptModel) (*AttemptResult, error) {
	var quiz qmodel.QuizModel
	if err := s.DB.WithContext(ctx).
		First(&quiz, "quiz_id = ?", attempt.QuizAttemptQuizID).Error; err != nil {
		return nil, err
	}

	var questions []qmodel.QuizQuestionModel
	if err := s.DB.WithContext(ctx).
		Where("quiz_question_quiz_id = ?", quiz.QuizID).
		Order("quiz_question_position ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	var answers []amodel.QuizAttemptAnswerModel
	if err := s.DB.WithContext(ctx).
		Where("quiz_attempt_answer_attempt_id = ?", attempt.QuizAttemptID).
		Find(&answers).Error; err != nil {
		return nil, err
	}

	byQuestion := make(map[uuid.UUID]*amodel.QuizAttemptAnswerModel, len(answers))
	for i := range answers {
		byQuestion[answers[i].QuizAttemptAnswerQuestionID] = &answers[i]
	}

	scores := make([]QuestionScore, 0, len(questions))
	questionMarks := make([]float64, 0, len(questions))
	ordered := make([]amodel.QuizAttemptAnswerModel, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		questionMarks = append(questionMarks, q.QuizQuestionMarks)
		row := byQuestion[q.QuizQuestionID]
		if row == nil {
			row = &amodel.QuizAttemptAnswerModel{
				QuizAttemptAnswerQuizID:     quiz.QuizID,
				QuizAttemptAnswerAttemptID:  attempt.QuizAttemptID,
				QuizAttemptAnswerQuestionID: q.QuizQuestionID,
			}
		}
		scores = append(scores, QuestionScore{
			Marks:     row.QuizAttemptAnswerMarks,
			IsCorrect: row.QuizAttemptAnswerIsCorrect,
			Skipped:   row.IsSkipped(),
		})
		ordered = append(ordered, *row)
	}

	return &AttemptResult{
		Attempt:   attempt,
		Quiz:      &quiz,
		Questions: questions,
		Answers:   ordered,
		Summary:   BuildResult(quiz.QuizTotalMarks, quiz.QuizPassingMarks, questionMarks, scores),
	}, nil
}

// Postgres unique violation ("23505") detection
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
