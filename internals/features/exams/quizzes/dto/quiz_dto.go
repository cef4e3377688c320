// file: internals/features/exams/quizzes/dto/quiz_dto.go
package dto

import (
	"time"

	qmodel "tayari_backend/internals/features/exams/quizzes/model"

	"github.com/google/uuid"
)

/* ==========================================================================================
   REQUEST: CREATE QUIZ (admin)
========================================================================================== */

type CreateQuizRequest struct {
	QuizTitle        string  `json:"quiz_title" validate:"required,min=3,max=180"`
	QuizPassingMarks float64 `json:"quiz_passing_marks" validate:"omitempty,gte=0"`
	QuizAttemptLimit int     `json:"quiz_attempt_limit" validate:"omitempty,gte=0"`
	QuizTimeLimitSec int     `json:"quiz_time_limit_sec" validate:"omitempty,gte=0"`
	QuizIsPublished  bool    `json:"quiz_is_published"`
}

func (r *CreateQuizRequest) ToModel() *qmodel.QuizModel {
	return &qmodel.QuizModel{
		QuizTitle:        r.QuizTitle,
		QuizPassingMarks: r.QuizPassingMarks,
		QuizAttemptLimit: r.QuizAttemptLimit,
		QuizTimeLimitSec: r.QuizTimeLimitSec,
		QuizIsPublished:  r.QuizIsPublished,
	}
}

/* ==========================================================================================
   RESPONSE DTO
========================================================================================== */

type QuizResponse struct {
	QuizID             uuid.UUID `json:"quiz_id"`
	QuizTitle          string    `json:"quiz_title"`
	QuizTotalQuestions int       `json:"quiz_total_questions"`
	QuizTotalMarks     float64   `json:"quiz_total_marks"`
	QuizPassingMarks   float64   `json:"quiz_passing_marks"`
	QuizAttemptLimit   int       `json:"quiz_attempt_limit"`
	QuizTimeLimitSec   int       `json:"quiz_time_limit_sec"`
	QuizIsPublished    bool      `json:"quiz_is_published"`
	QuizCreatedAt      time.Time `json:"quiz_created_at"`
}

func ToQuizResponse(m *qmodel.QuizModel) QuizResponse {
	return QuizResponse{
		QuizID:             m.QuizID,
		QuizTitle:          m.QuizTitle,
		QuizTotalQuestions: m.QuizTotalQuestions,
		QuizTotalMarks:     m.QuizTotalMarks,
		QuizPassingMarks:   m.QuizPassingMarks,
		QuizAttemptLimit:   m.QuizAttemptLimit,
		QuizTimeLimitSec:   m.QuizTimeLimitSec,
		QuizIsPublished:    m.QuizIsPublished,
		QuizCreatedAt:      m.QuizCreatedAt,
	}
}
