// file: internals/features/exams/attempts/model/quiz_attempt_answer_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   QuizAttemptAnswer (quiz_attempt_answers)
   - Unique: one answer row per (attempt, question); re-selection
     overwrites in place, never duplicates.
   - Empty selection = skipped.
   ========================================================= */

type QuizAttemptAnswerModel struct {
	// PK
	QuizAttemptAnswerID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_attempt_answer_id" json:"quiz_attempt_answer_id"`

	// Denormalized quiz id, filled by the service (keeps attempt/question consistent)
	QuizAttemptAnswerQuizID uuid.UUID `gorm:"type:uuid;not null;column:quiz_attempt_answer_quiz_id;index:idx_qaa_quiz" json:"quiz_attempt_answer_quiz_id"`

	// Attempt & question
	QuizAttemptAnswerAttemptID  uuid.UUID `gorm:"type:uuid;not null;column:quiz_attempt_answer_attempt_id;uniqueIndex:uq_qaa_attempt_question,priority:1" json:"quiz_attempt_answer_attempt_id"`
	QuizAttemptAnswerQuestionID uuid.UUID `gorm:"type:uuid;not null;column:quiz_attempt_answer_question_id;uniqueIndex:uq_qaa_attempt_question,priority:2" json:"quiz_attempt_answer_question_id"`

	// Selected option ids as JSONB array (empty/null = skipped)
	QuizAttemptAnswerSelected datatypes.JSON `gorm:"type:jsonb;column:quiz_attempt_answer_selected" json:"quiz_attempt_answer_selected,omitempty"`

	// Grading result
	QuizAttemptAnswerIsCorrect *bool   `gorm:"column:quiz_attempt_answer_is_correct" json:"quiz_attempt_answer_is_correct,omitempty"`
	QuizAttemptAnswerMarks     float64 `gorm:"type:numeric(6,2);not null;default:0;column:quiz_attempt_answer_marks" json:"quiz_attempt_answer_marks"`

	// Time the user spent on the question, seconds
	QuizAttemptAnswerTimeSec int `gorm:"not null;default:0;column:quiz_attempt_answer_time_sec" json:"quiz_attempt_answer_time_sec"`

	QuizAttemptAnswerAnsweredAt time.Time `gorm:"type:timestamptz;not null;default:now();column:quiz_attempt_answer_answered_at" json:"quiz_attempt_answer_answered_at"`
}

func (QuizAttemptAnswerModel) TableName() string { return "quiz_attempt_answers" }

// ------------------------
// Helpers
// ------------------------

func (m *QuizAttemptAnswerModel) SelectedOptionIDs() []uuid.UUID {
	if len(m.QuizAttemptAnswerSelected) == 0 {
		return nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(m.QuizAttemptAnswerSelected, &ids); err != nil {
		return nil
	}
	return ids
}

func (m *QuizAttemptAnswerModel) SetSelectedOptionIDs(ids []uuid.UUID) error {
	if len(ids) == 0 {
		m.QuizAttemptAnswerSelected = datatypes.JSON("[]")
		return nil
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	m.QuizAttemptAnswerSelected = datatypes.JSON(b)
	return nil
}

func (m *QuizAttemptAnswerModel) IsSkipped() bool {
	return len(m.SelectedOptionIDs()) == 0
}
