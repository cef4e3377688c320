package dto

import (
	"testing"

	"github.com/google/uuid"

	amodel "tayari_backend/internals/features/exams/attempts/model"
	"tayari_backend/internals/features/exams/attempts/service"
	qmodel "tayari_backend/internals/features/exams/quizzes/model"
)

func breakdownQuestion(t *testing.T, kind qmodel.QuizQuestionKind, marks float64, correctness ...bool) qmodel.QuizQuestionModel {
	t.Helper()
	opts := make([]qmodel.QuizQuestionOption, 0, len(correctness))
	for _, c := range correctness {
		opts = append(opts, qmodel.QuizQuestionOption{Text: "opt", IsCorrect: c})
	}
	q := qmodel.QuizQuestionModel{
		QuizQuestionID:    uuid.New(),
		QuizQuestionKind:  kind,
		QuizQuestionText:  "q",
		QuizQuestionMarks: marks,
	}
	if err := q.SetOptions(opts); err != nil {
		t.Fatalf("SetOptions: %v", err)
	}
	return q
}

func correctIDs(t *testing.T, q *qmodel.QuizQuestionModel) []uuid.UUID {
	t.Helper()
	opts, err := q.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	var ids []uuid.UUID
	for _, op := range opts {
		if op.IsCorrect {
			ids = append(ids, op.ID)
		}
	}
	return ids
}

// The result breakdown must reveal the correct option(s) per question; it is
// the only surface that ever does, and only after finalize.
func TestToAttemptResultResponse_BreakdownRevealsCorrectOptions(t *testing.T) {
	single := breakdownQuestion(t, qmodel.QuestionSingleSelect, 2, true, false, false)
	multi := breakdownQuestion(t, qmodel.QuestionMultiSelect, 3, true, true, false)

	singleOpts, _ := single.Options()
	wrongPick := []uuid.UUID{singleOpts[1].ID}

	f := false
	answered := amodel.QuizAttemptAnswerModel{
		QuizAttemptAnswerQuestionID: single.QuizQuestionID,
		QuizAttemptAnswerIsCorrect:  &f,
		QuizAttemptAnswerMarks:      -0.5,
	}
	if err := answered.SetSelectedOptionIDs(wrongPick); err != nil {
		t.Fatalf("SetSelectedOptionIDs: %v", err)
	}
	skipped := amodel.QuizAttemptAnswerModel{
		QuizAttemptAnswerQuestionID: multi.QuizQuestionID,
	}
	if err := skipped.SetSelectedOptionIDs(nil); err != nil {
		t.Fatalf("SetSelectedOptionIDs: %v", err)
	}

	result := &service.AttemptResult{
		Attempt:   &amodel.QuizAttemptModel{QuizAttemptID: uuid.New(), QuizAttemptStatus: amodel.AttemptCompleted},
		Quiz:      &qmodel.QuizModel{QuizTotalMarks: 5},
		Questions: []qmodel.QuizQuestionModel{single, multi},
		Answers:   []amodel.QuizAttemptAnswerModel{answered, skipped},
	}

	resp := ToAttemptResultResponse(result)
	if len(resp.Breakdown) != 2 {
		t.Fatalf("breakdown length = %d, want 2", len(resp.Breakdown))
	}

	first := resp.Breakdown[0]
	wantSingle := correctIDs(t, &single)
	if len(first.CorrectOptionIDs) != 1 || first.CorrectOptionIDs[0] != wantSingle[0] {
		t.Errorf("single select correct_option_ids = %v, want %v", first.CorrectOptionIDs, wantSingle)
	}
	if len(first.Selected) != 1 || first.Selected[0] != wrongPick[0] {
		t.Errorf("selected = %v, want %v", first.Selected, wrongPick)
	}
	if first.IsCorrect == nil || *first.IsCorrect {
		t.Error("wrong pick must surface is_correct=false")
	}
	if first.Marks != -0.5 {
		t.Errorf("marks = %v, want -0.5", first.Marks)
	}
	if first.Skipped {
		t.Error("answered question flagged skipped")
	}

	second := resp.Breakdown[1]
	wantMulti := correctIDs(t, &multi)
	if len(second.CorrectOptionIDs) != 2 {
		t.Fatalf("multi select correct_option_ids = %v, want %v", second.CorrectOptionIDs, wantMulti)
	}
	for i, id := range wantMulti {
		if second.CorrectOptionIDs[i] != id {
			t.Errorf("correct_option_ids[%d] = %v, want %v", i, second.CorrectOptionIDs[i], id)
		}
	}
	if !second.Skipped {
		t.Error("untouched question must read as skipped")
	}
	if len(second.Selected) != 0 {
		t.Errorf("skipped selected = %v, want empty", second.Selected)
	}
}
