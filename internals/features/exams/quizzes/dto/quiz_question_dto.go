// file: internals/features/exams/quizzes/dto/quiz_question_dto.go
package dto

import (
	qmodel "tayari_backend/internals/features/exams/quizzes/model"

	"github.com/google/uuid"
)

/* ==========================================================================================
   REQUEST: CREATE QUESTION (admin)
========================================================================================== */

type CreateQuestionOption struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type CreateQuizQuestionRequest struct {
	QuizQuestionQuizID           uuid.UUID              `json:"quiz_question_quiz_id" validate:"required"`
	QuizQuestionPosition         int                    `json:"quiz_question_position" validate:"omitempty,gte=0"`
	QuizQuestionKind             string                 `json:"quiz_question_kind" validate:"required,oneof=single_select multi_select true_false short_answer"`
	QuizQuestionText             string                 `json:"quiz_question_text" validate:"required"`
	QuizQuestionMarks            float64                `json:"quiz_question_marks" validate:"required,gt=0"`
	QuizQuestionNegativeMarks    float64                `json:"quiz_question_negative_marks" validate:"omitempty,gte=0"`
	QuizQuestionWrongPickPenalty float64                `json:"quiz_question_wrong_pick_penalty" validate:"omitempty,gte=0"`
	QuizQuestionFloor            *float64               `json:"quiz_question_floor" validate:"omitempty"`
	QuizQuestionOptions          []CreateQuestionOption `json:"quiz_question_options" validate:"omitempty,dive"`
}

func (r *CreateQuizQuestionRequest) ToModel() (*qmodel.QuizQuestionModel, error) {
	m := &qmodel.QuizQuestionModel{
		QuizQuestionQuizID:           r.QuizQuestionQuizID,
		QuizQuestionPosition:         r.QuizQuestionPosition,
		QuizQuestionKind:             qmodel.QuizQuestionKind(r.QuizQuestionKind),
		QuizQuestionText:             r.QuizQuestionText,
		QuizQuestionMarks:            r.QuizQuestionMarks,
		QuizQuestionNegativeMarks:    r.QuizQuestionNegativeMarks,
		QuizQuestionWrongPickPenalty: r.QuizQuestionWrongPickPenalty,
		QuizQuestionFloor:            r.QuizQuestionFloor,
	}
	opts := make([]qmodel.QuizQuestionOption, 0, len(r.QuizQuestionOptions))
	for _, op := range r.QuizQuestionOptions {
		opts = append(opts, qmodel.QuizQuestionOption{Text: op.Text, IsCorrect: op.IsCorrect})
	}
	if err := m.SetOptions(opts); err != nil {
		return nil, err
	}
	if err := m.ValidateShape(); err != nil {
		return nil, err
	}
	return m, nil
}

/* ==========================================================================================
   RESPONSE DTO
   Public variant hides is_correct; it goes to students mid-attempt.
========================================================================================== */

type PublicQuestionOption struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type QuizQuestionPublicResponse struct {
	QuizQuestionID       uuid.UUID              `json:"quiz_question_id"`
	QuizQuestionQuizID   uuid.UUID              `json:"quiz_question_quiz_id"`
	QuizQuestionPosition int                    `json:"quiz_question_position"`
	QuizQuestionKind     string                 `json:"quiz_question_kind"`
	QuizQuestionText     string                 `json:"quiz_question_text"`
	QuizQuestionMarks    float64                `json:"quiz_question_marks"`
	QuizQuestionOptions  []PublicQuestionOption `json:"quiz_question_options"`
}

func ToQuizQuestionPublicResponse(m *qmodel.QuizQuestionModel) (QuizQuestionPublicResponse, error) {
	opts, err := m.Options()
	if err != nil {
		return QuizQuestionPublicResponse{}, err
	}
	pub := make([]PublicQuestionOption, 0, len(opts))
	for _, op := range opts {
		pub = append(pub, PublicQuestionOption{ID: op.ID, Text: op.Text})
	}
	return QuizQuestionPublicResponse{
		QuizQuestionID:       m.QuizQuestionID,
		QuizQuestionQuizID:   m.QuizQuestionQuizID,
		QuizQuestionPosition: m.QuizQuestionPosition,
		QuizQuestionKind:     m.QuizQuestionKind.String(),
		QuizQuestionText:     m.QuizQuestionText,
		QuizQuestionMarks:    m.QuizQuestionMarks,
		QuizQuestionOptions:  pub,
	}, nil
}
