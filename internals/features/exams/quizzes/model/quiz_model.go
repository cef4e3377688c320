package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizModel struct {
	QuizID    uuid.UUID `gorm:"column:quiz_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_id"`
	QuizTitle string    `gorm:"column:quiz_title;type:varchar(180);not null" json:"quiz_title"`

	QuizTotalQuestions int     `gorm:"column:quiz_total_questions;not null;default:0" json:"quiz_total_questions"`
	QuizTotalMarks     float64 `gorm:"column:quiz_total_marks;type:numeric(7,2);not null;default:0" json:"quiz_total_marks"`
	QuizPassingMarks   float64 `gorm:"column:quiz_passing_marks;type:numeric(7,2);not null;default:0" json:"quiz_passing_marks"`

	// 0 = unlimited
	QuizAttemptLimit int `gorm:"column:quiz_attempt_limit;not null;default:0" json:"quiz_attempt_limit"`
	// 0 = untimed
	QuizTimeLimitSec int `gorm:"column:quiz_time_limit_sec;not null;default:0" json:"quiz_time_limit_sec"`

	QuizIsPublished bool `gorm:"column:quiz_is_published;not null;default:false" json:"quiz_is_published"`

	QuizCreatedAt time.Time      `gorm:"column:quiz_created_at;not null;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt time.Time      `gorm:"column:quiz_updated_at;not null;autoUpdateTime" json:"quiz_updated_at"`
	QuizDeletedAt gorm.DeletedAt `gorm:"column:quiz_deleted_at;index" json:"quiz_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (QuizModel) TableName() string { return "quizzes" }

func (m *QuizModel) IsUnlimited() bool { return m.QuizAttemptLimit <= 0 }
func (m *QuizModel) IsTimed() bool     { return m.QuizTimeLimitSec > 0 }
