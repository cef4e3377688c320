// file: internals/features/exams/attempts/dto/attempt_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	amodel "tayari_backend/internals/features/exams/attempts/model"
	"tayari_backend/internals/features/exams/attempts/service"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type RecordAnswerRequest struct {
	SelectedOptionIDs []uuid.UUID `json:"selected_option_ids" validate:"dive,required"`
	TimeSec           int         `json:"time_sec" validate:"gte=0"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type AttemptResponse struct {
	AttemptID   uuid.UUID                `json:"attempt_id"`
	QuizID      uuid.UUID                `json:"quiz_id"`
	Number      int                      `json:"attempt_number"`
	Status      amodel.QuizAttemptStatus `json:"status"`
	StartedAt   time.Time                `json:"started_at"`
	CompletedAt *time.Time               `json:"completed_at,omitempty"`
	Score       *float64                 `json:"score,omitempty"`
	Percentage  *float64                 `json:"percentage,omitempty"`
	Passed      *bool                    `json:"passed,omitempty"`
}

func ToAttemptResponse(m *amodel.QuizAttemptModel) AttemptResponse {
	return AttemptResponse{
		AttemptID:   m.QuizAttemptID,
		QuizID:      m.QuizAttemptQuizID,
		Number:      m.QuizAttemptNumber,
		Status:      m.QuizAttemptStatus,
		StartedAt:   m.QuizAttemptStartedAt,
		CompletedAt: m.QuizAttemptCompletedAt,
		Score:       m.QuizAttemptScore,
		Percentage:  m.QuizAttemptPercentage,
		Passed:      m.QuizAttemptPassed,
	}
}

type AnswerResponse struct {
	QuestionID uuid.UUID   `json:"question_id"`
	Selected   []uuid.UUID `json:"selected_option_ids"`
	IsCorrect  *bool       `json:"is_correct,omitempty"`
	Marks      float64     `json:"marks"`
	TimeSec    int         `json:"time_sec"`
	AnsweredAt time.Time   `json:"answered_at"`
}

func ToAnswerResponse(m *amodel.QuizAttemptAnswerModel) AnswerResponse {
	sel := m.SelectedOptionIDs()
	if sel == nil {
		sel = []uuid.UUID{}
	}
	return AnswerResponse{
		QuestionID: m.QuizAttemptAnswerQuestionID,
		Selected:   sel,
		IsCorrect:  m.QuizAttemptAnswerIsCorrect,
		Marks:      m.QuizAttemptAnswerMarks,
		TimeSec:    m.QuizAttemptAnswerTimeSec,
		AnsweredAt: m.QuizAttemptAnswerAnsweredAt,
	}
}

// ResultBreakdownItem is one row of the per-question result breakdown.
// The correct option ids are only ever serialized here, after finalize;
// the pre-submit question payload strips the answer key.
type ResultBreakdownItem struct {
	QuestionID       uuid.UUID   `json:"question_id"`
	Position         int         `json:"position"`
	Text             string      `json:"text"`
	Kind             string      `json:"kind"`
	MaxMarks         float64     `json:"max_marks"`
	CorrectOptionIDs []uuid.UUID `json:"correct_option_ids"`
	Selected         []uuid.UUID `json:"selected_option_ids"`
	IsCorrect        *bool       `json:"is_correct,omitempty"`
	Marks            float64     `json:"marks"`
	Skipped          bool        `json:"skipped"`
}

type AttemptResultResponse struct {
	Attempt   AttemptResponse       `json:"attempt"`
	Summary   service.ResultSummary `json:"summary"`
	Breakdown []ResultBreakdownItem `json:"breakdown"`
}

func ToAttemptResultResponse(r *service.AttemptResult) AttemptResultResponse {
	out := AttemptResultResponse{
		Attempt:   ToAttemptResponse(r.Attempt),
		Summary:   r.Summary,
		Breakdown: make([]ResultBreakdownItem, 0, len(r.Questions)),
	}
	for i := range r.Questions {
		q := &r.Questions[i]
		item := ResultBreakdownItem{
			QuestionID:       q.QuizQuestionID,
			Position:         q.QuizQuestionPosition,
			Text:             q.QuizQuestionText,
			Kind:             q.QuizQuestionKind.String(),
			MaxMarks:         q.QuizQuestionMarks,
			CorrectOptionIDs: []uuid.UUID{},
			Selected:         []uuid.UUID{},
			Skipped:          true,
		}
		if opts, err := q.Options(); err == nil {
			for _, op := range opts {
				if op.IsCorrect {
					item.CorrectOptionIDs = append(item.CorrectOptionIDs, op.ID)
				}
			}
		}
		if i < len(r.Answers) {
			a := &r.Answers[i]
			if sel := a.SelectedOptionIDs(); sel != nil {
				item.Selected = sel
			}
			item.IsCorrect = a.QuizAttemptAnswerIsCorrect
			item.Marks = a.QuizAttemptAnswerMarks
			item.Skipped = a.IsSkipped()
		}
		out.Breakdown = append(out.Breakdown, item)
	}
	return out
}

type AttemptHistoryResponse struct {
	Attempts []AttemptResponse         `json:"attempts"`
	Overview *service.AttemptsOverview `json:"overview"`
}

func ToAttemptHistoryResponse(rows []amodel.QuizAttemptModel, overview *service.AttemptsOverview) AttemptHistoryResponse {
	out := AttemptHistoryResponse{
		Attempts: make([]AttemptResponse, 0, len(rows)),
		Overview: overview,
	}
	for i := range rows {
		out.Attempts = append(out.Attempts, ToAttemptResponse(&rows[i]))
	}
	return out
}
