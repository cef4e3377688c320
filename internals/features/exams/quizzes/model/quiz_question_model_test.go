package model

import (
	"testing"

	"github.com/google/uuid"
)

func question(kind QuizQuestionKind, opts []QuizQuestionOption) *QuizQuestionModel {
	m := &QuizQuestionModel{
		QuizQuestionKind:  kind,
		QuizQuestionText:  "q",
		QuizQuestionMarks: 1,
	}
	if opts != nil {
		if err := m.SetOptions(opts); err != nil {
			panic(err)
		}
	}
	return m
}

func TestValidateShape(t *testing.T) {
	tests := []struct {
		name    string
		kind    QuizQuestionKind
		opts    []QuizQuestionOption
		wantErr bool
	}{
		{
			"single select with one correct option",
			QuestionSingleSelect,
			[]QuizQuestionOption{{Text: "a", IsCorrect: true}, {Text: "b"}},
			false,
		},
		{
			"single select with two correct options",
			QuestionSingleSelect,
			[]QuizQuestionOption{{Text: "a", IsCorrect: true}, {Text: "b", IsCorrect: true}},
			true,
		},
		{
			"single select with no correct option",
			QuestionSingleSelect,
			[]QuizQuestionOption{{Text: "a"}, {Text: "b"}},
			true,
		},
		{
			"fewer than two options",
			QuestionSingleSelect,
			[]QuizQuestionOption{{Text: "a", IsCorrect: true}},
			true,
		},
		{
			"empty option text",
			QuestionSingleSelect,
			[]QuizQuestionOption{{Text: "", IsCorrect: true}, {Text: "b"}},
			true,
		},
		{
			"true false with exactly two options",
			QuestionTrueFalse,
			[]QuizQuestionOption{{Text: "true", IsCorrect: true}, {Text: "false"}},
			false,
		},
		{
			"true false with three options",
			QuestionTrueFalse,
			[]QuizQuestionOption{{Text: "a", IsCorrect: true}, {Text: "b"}, {Text: "c"}},
			true,
		},
		{
			"multi select with several correct options",
			QuestionMultiSelect,
			[]QuizQuestionOption{{Text: "a", IsCorrect: true}, {Text: "b", IsCorrect: true}, {Text: "c"}},
			false,
		},
		{
			"multi select with no correct option",
			QuestionMultiSelect,
			[]QuizQuestionOption{{Text: "a"}, {Text: "b"}},
			true,
		},
		{
			"short answer without options",
			QuestionShortAnswer,
			nil,
			false,
		},
		{
			"short answer with options",
			QuestionShortAnswer,
			[]QuizQuestionOption{{Text: "a"}, {Text: "b"}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := question(tt.kind, tt.opts).ValidateShape()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShape() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetOptionsAssignsIDs(t *testing.T) {
	m := question(QuestionSingleSelect, []QuizQuestionOption{
		{Text: "a", IsCorrect: true},
		{Text: "b"},
	})

	opts, err := m.Options()
	if err != nil {
		t.Fatalf("Options() error: %v", err)
	}
	seen := map[uuid.UUID]bool{}
	for _, op := range opts {
		if op.ID == uuid.Nil {
			t.Error("option id not assigned")
		}
		if seen[op.ID] {
			t.Error("duplicate option id")
		}
		seen[op.ID] = true
	}
}

func TestMarkingSchemeFloorValue(t *testing.T) {
	s := MarkingScheme{Marks: 4}
	if got := s.FloorValue(); got != -4 {
		t.Errorf("default floor = %v, want -4", got)
	}

	zero := 0.0
	s.Floor = &zero
	if got := s.FloorValue(); got != 0 {
		t.Errorf("explicit floor = %v, want 0", got)
	}
}
