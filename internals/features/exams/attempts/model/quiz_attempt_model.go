// file: internals/features/exams/attempts/model/quiz_attempt_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Attempt status ('in_progress','completed','abandoned')
============================================================================= */

type QuizAttemptStatus string

const (
	AttemptInProgress QuizAttemptStatus = "in_progress"
	AttemptCompleted  QuizAttemptStatus = "completed"
	AttemptAbandoned  QuizAttemptStatus = "abandoned"
)

func (s QuizAttemptStatus) String() string { return string(s) }
func (s QuizAttemptStatus) Valid() bool {
	switch s {
	case AttemptInProgress, AttemptCompleted, AttemptAbandoned:
		return true
	default:
		return false
	}
}

// sql.Scanner + driver.Valuer (safe scan into the enum)
func (s *QuizAttemptStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = QuizAttemptStatus(v)
	case []byte:
		*s = QuizAttemptStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for QuizAttemptStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid QuizAttemptStatus: %q", *s)
	}
	return nil
}

func (s QuizAttemptStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid QuizAttemptStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: quiz_attempts
   - Partial unique index: one 'in_progress' row per (quiz, user).
   - Attempt number is max(existing)+1, rows are never renumbered or deleted.
============================================================================= */

type QuizAttemptModel struct {
	// PK
	QuizAttemptID uuid.UUID `json:"quiz_attempt_id" gorm:"column:quiz_attempt_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	QuizAttemptQuizID uuid.UUID `json:"quiz_attempt_quiz_id" gorm:"column:quiz_attempt_quiz_id;type:uuid;not null;index:idx_qa_quiz_user,priority:1;uniqueIndex:uq_qa_active,priority:1,where:quiz_attempt_status = 'in_progress'"`
	QuizAttemptUserID uuid.UUID `json:"quiz_attempt_user_id" gorm:"column:quiz_attempt_user_id;type:uuid;not null;index:idx_qa_quiz_user,priority:2;uniqueIndex:uq_qa_active,priority:2,where:quiz_attempt_status = 'in_progress'"`

	// 1..N per (user, quiz), assigned at creation
	QuizAttemptNumber int `json:"quiz_attempt_number" gorm:"column:quiz_attempt_number;not null"`

	// Status
	QuizAttemptStatus QuizAttemptStatus `json:"quiz_attempt_status" gorm:"column:quiz_attempt_status;type:varchar(16);not null;default:'in_progress';index:idx_qa_status"`

	// Time
	QuizAttemptStartedAt   time.Time  `json:"quiz_attempt_started_at" gorm:"column:quiz_attempt_started_at;type:timestamptz;not null;default:now()"`
	QuizAttemptCompletedAt *time.Time `json:"quiz_attempt_completed_at,omitempty" gorm:"column:quiz_attempt_completed_at;type:timestamptz"`

	// Final result (set once at finalize, immutable afterwards)
	QuizAttemptScore      *float64 `json:"quiz_attempt_score,omitempty" gorm:"column:quiz_attempt_score;type:numeric(7,2)"`
	QuizAttemptPercentage *float64 `json:"quiz_attempt_percentage,omitempty" gorm:"column:quiz_attempt_percentage;type:numeric(5,1)"`
	QuizAttemptPassed     *bool    `json:"quiz_attempt_passed,omitempty" gorm:"column:quiz_attempt_passed"`

	// Audit
	QuizAttemptCreatedAt time.Time `json:"quiz_attempt_created_at" gorm:"column:quiz_attempt_created_at;type:timestamptz;not null;default:now()"`
	QuizAttemptUpdatedAt time.Time `json:"quiz_attempt_updated_at" gorm:"column:quiz_attempt_updated_at;type:timestamptz;not null;default:now()"`
}

func (QuizAttemptModel) TableName() string { return "quiz_attempts" }

func (m *QuizAttemptModel) BeforeSave(_ *gorm.DB) error {
	m.QuizAttemptUpdatedAt = time.Now()
	return nil
}

/* ===================================================================
   Helper methods
=================================================================== */

func (m *QuizAttemptModel) IsInProgress() bool { return m.QuizAttemptStatus == AttemptInProgress }
func (m *QuizAttemptModel) IsCompleted() bool  { return m.QuizAttemptStatus == AttemptCompleted }

func (m *QuizAttemptModel) MarkCompleted(score, percentage float64, passed bool, completedAt time.Time) {
	m.QuizAttemptStatus = AttemptCompleted
	m.QuizAttemptCompletedAt = &completedAt
	m.QuizAttemptScore = &score
	m.QuizAttemptPercentage = &percentage
	m.QuizAttemptPassed = &passed
}

func (m *QuizAttemptModel) MarkAbandoned(at time.Time) {
	m.QuizAttemptStatus = AttemptAbandoned
	m.QuizAttemptCompletedAt = &at
}
