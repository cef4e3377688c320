// file: internals/features/exams/quizzes/model/quiz_question_model.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Question kind
   ('single_select','multi_select','true_false','short_answer')
   Only single/multi (+true_false, a two-option single) are auto-scored.
============================================================================= */

type QuizQuestionKind string

const (
	QuestionSingleSelect QuizQuestionKind = "single_select"
	QuestionMultiSelect  QuizQuestionKind = "multi_select"
	QuestionTrueFalse    QuizQuestionKind = "true_false"
	QuestionShortAnswer  QuizQuestionKind = "short_answer"
)

func (k QuizQuestionKind) String() string { return string(k) }
func (k QuizQuestionKind) Valid() bool {
	switch k {
	case QuestionSingleSelect, QuestionMultiSelect, QuestionTrueFalse, QuestionShortAnswer:
		return true
	default:
		return false
	}
}

// AutoScored reports whether the scoring engine can grade this kind by itself.
func (k QuizQuestionKind) AutoScored() bool {
	return k == QuestionSingleSelect || k == QuestionMultiSelect || k == QuestionTrueFalse
}

func (k *QuizQuestionKind) Scan(value any) error {
	if value == nil {
		*k = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*k = QuizQuestionKind(v)
	case []byte:
		*k = QuizQuestionKind(string(v))
	default:
		return fmt.Errorf("unsupported type for QuizQuestionKind: %T", value)
	}
	if !k.Valid() {
		return fmt.Errorf("invalid QuizQuestionKind: %q", *k)
	}
	return nil
}

func (k QuizQuestionKind) Value() (driver.Value, error) {
	if k == "" {
		return nil, nil
	}
	if !k.Valid() {
		return nil, fmt.Errorf("invalid QuizQuestionKind: %q", k)
	}
	return string(k), nil
}

/* =============================================================================
   MarkingScheme: per-question marking policy, the single input the scoring
   engine needs besides the selection itself.
============================================================================= */

type MarkingScheme struct {
	// Full marks for an exactly-correct answer.
	Marks float64
	// Deduction for a wrong single-select / true-false pick (0 = no negative marking).
	NegativeMarks float64
	// Deduction per wrong pick on multi-select. 0 means the default unit
	// Marks/|correct options| (one wrong pick costs one partial-credit unit).
	WrongPickPenalty float64
	// Minimum contribution of the question. Nil means -Marks.
	Floor *float64
}

// FloorValue resolves the clamp floor (-Marks when unset).
func (s MarkingScheme) FloorValue() float64 {
	if s.Floor != nil {
		return *s.Floor
	}
	return -s.Marks
}

/* =============================================================================
   MODEL: quiz_questions
============================================================================= */

type QuizQuestionOption struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsCorrect bool      `json:"is_correct"`
}

type QuizQuestionModel struct {
	QuizQuestionID       uuid.UUID        `gorm:"column:quiz_question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_question_id"`
	QuizQuestionQuizID   uuid.UUID        `gorm:"column:quiz_question_quiz_id;type:uuid;not null;index:idx_quiz_questions_quiz" json:"quiz_question_quiz_id"`
	QuizQuestionPosition int              `gorm:"column:quiz_question_position;not null;default:0" json:"quiz_question_position"`
	QuizQuestionKind     QuizQuestionKind `gorm:"column:quiz_question_kind;type:varchar(16);not null" json:"quiz_question_kind"`
	QuizQuestionText     string           `gorm:"column:quiz_question_text;type:text;not null" json:"quiz_question_text"`

	// Marking scheme columns
	QuizQuestionMarks            float64  `gorm:"column:quiz_question_marks;type:numeric(6,2);not null;default:1" json:"quiz_question_marks"`
	QuizQuestionNegativeMarks    float64  `gorm:"column:quiz_question_negative_marks;type:numeric(6,2);not null;default:0" json:"quiz_question_negative_marks"`
	QuizQuestionWrongPickPenalty float64  `gorm:"column:quiz_question_wrong_pick_penalty;type:numeric(6,2);not null;default:0" json:"quiz_question_wrong_pick_penalty"`
	QuizQuestionFloor            *float64 `gorm:"column:quiz_question_floor;type:numeric(6,2)" json:"quiz_question_floor,omitempty"`

	// Options as JSONB: [{id,text,is_correct}]
	QuizQuestionOptions datatypes.JSON `gorm:"column:quiz_question_options;type:jsonb" json:"quiz_question_options,omitempty"`

	QuizQuestionCreatedAt time.Time      `gorm:"column:quiz_question_created_at;not null;autoCreateTime" json:"quiz_question_created_at"`
	QuizQuestionUpdatedAt time.Time      `gorm:"column:quiz_question_updated_at;not null;autoUpdateTime" json:"quiz_question_updated_at"`
	QuizQuestionDeletedAt gorm.DeletedAt `gorm:"column:quiz_question_deleted_at" json:"quiz_question_deleted_at,omitempty"`
}

func (QuizQuestionModel) TableName() string { return "quiz_questions" }

// ------------------------
// Helpers
// ------------------------

func (m *QuizQuestionModel) MarkingScheme() MarkingScheme {
	return MarkingScheme{
		Marks:            m.QuizQuestionMarks,
		NegativeMarks:    m.QuizQuestionNegativeMarks,
		WrongPickPenalty: m.QuizQuestionWrongPickPenalty,
		Floor:            m.QuizQuestionFloor,
	}
}

func (m *QuizQuestionModel) Options() ([]QuizQuestionOption, error) {
	if len(m.QuizQuestionOptions) == 0 {
		return nil, nil
	}
	var opts []QuizQuestionOption
	if err := json.Unmarshal(m.QuizQuestionOptions, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func (m *QuizQuestionModel) SetOptions(opts []QuizQuestionOption) error {
	for i := range opts {
		if opts[i].ID == uuid.Nil {
			opts[i].ID = uuid.New()
		}
	}
	b, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	m.QuizQuestionOptions = datatypes.JSON(b)
	return nil
}

// ValidateShape mirrors the DB CHECK constraints so we fail fast in the app.
func (m *QuizQuestionModel) ValidateShape() error {
	if !m.QuizQuestionKind.Valid() {
		return errors.New("invalid question kind")
	}
	opts, err := m.Options()
	if err != nil {
		return errors.New("options is not valid JSON")
	}

	if m.QuizQuestionKind == QuestionShortAnswer {
		if len(opts) != 0 {
			return errors.New("SHORT_ANSWER: options must be empty")
		}
		return nil
	}

	if len(opts) < 2 {
		return errors.New("at least 2 options required")
	}
	correct := 0
	for _, op := range opts {
		if op.Text == "" {
			return errors.New("option text must not be empty")
		}
		if op.IsCorrect {
			correct++
		}
	}
	switch m.QuizQuestionKind {
	case QuestionSingleSelect:
		if correct != 1 {
			return errors.New("SINGLE_SELECT: exactly one option must be correct")
		}
	case QuestionTrueFalse:
		if len(opts) != 2 || correct != 1 {
			return errors.New("TRUE_FALSE: exactly 2 options, one correct")
		}
	case QuestionMultiSelect:
		if correct < 1 {
			return errors.New("MULTI_SELECT: at least one option must be correct")
		}
	}
	return nil
}
