package service

import (
	"testing"

	"github.com/google/uuid"

	qmodel "tayari_backend/internals/features/exams/quizzes/model"
)

// End-to-end worked example: two questions, one wrong single pick and one
// partial multi pick.
func TestBuildResult_WorkedExample(t *testing.T) {
	// Q1: single select, 2 marks, 0.5 negative, wrong pick -> -0.5
	q1opts := makeOptions(true, false, false)
	q1 := ScoreSelection(qmodel.QuestionSingleSelect, q1opts,
		qmodel.MarkingScheme{Marks: 2, NegativeMarks: 0.5}, pick(q1opts, 1))

	// Q2: multi select, 3 marks, correct {A,B}, picked {A} -> 1.5
	q2opts := makeOptions(true, true, false)
	q2 := ScoreSelection(qmodel.QuestionMultiSelect, q2opts,
		qmodel.MarkingScheme{Marks: 3}, pick(q2opts, 0))

	got := BuildResult(5, 2.5, []float64{2, 3}, []QuestionScore{q1, q2})

	if got.Score != 1.0 {
		t.Errorf("score = %v, want 1.0", got.Score)
	}
	if got.TotalMarks != 5 {
		t.Errorf("total_marks = %v, want 5", got.TotalMarks)
	}
	if got.Percentage != 20.0 {
		t.Errorf("percentage = %v, want 20.0", got.Percentage)
	}
	if got.Passed {
		t.Error("passed = true, want false")
	}
	if got.CorrectCount != 0 || got.IncorrectCount != 2 || got.SkippedCount != 0 {
		t.Errorf("partition = %d/%d/%d, want 0/2/0",
			got.CorrectCount, got.IncorrectCount, got.SkippedCount)
	}
}

func TestBuildResult_PartitionCoversEveryQuestion(t *testing.T) {
	scores := []QuestionScore{
		{Marks: 2, IsCorrect: boolPtr(true)},
		{Marks: -0.5, IsCorrect: boolPtr(false)},
		{Skipped: true},
		{Skipped: true},
		{Marks: 1.5, IsCorrect: boolPtr(false)},
	}

	got := BuildResult(10, 5, []float64{2, 2, 2, 2, 2}, scores)

	if got.TotalQuestions != 5 {
		t.Fatalf("total_questions = %d, want 5", got.TotalQuestions)
	}
	if sum := got.CorrectCount + got.IncorrectCount + got.SkippedCount; sum != got.TotalQuestions {
		t.Errorf("partition sums to %d, want %d", sum, got.TotalQuestions)
	}
	if got.CorrectCount != 1 || got.IncorrectCount != 2 || got.SkippedCount != 2 {
		t.Errorf("partition = %d/%d/%d, want 1/2/2",
			got.CorrectCount, got.IncorrectCount, got.SkippedCount)
	}
}

func TestBuildResult_NegativeScoreClampsPercentage(t *testing.T) {
	scores := []QuestionScore{
		{Marks: -1, IsCorrect: boolPtr(false)},
		{Marks: -1, IsCorrect: boolPtr(false)},
	}

	got := BuildResult(4, 2, []float64{2, 2}, scores)

	if got.Score != -2 {
		t.Errorf("score = %v, want -2 (raw score may go negative)", got.Score)
	}
	if got.Percentage != 0 {
		t.Errorf("percentage = %v, want 0 (never negative)", got.Percentage)
	}
	if got.Passed {
		t.Error("passed = true, want false")
	}
}

func TestBuildResult_PassBoundaryIsInclusive(t *testing.T) {
	scores := []QuestionScore{{Marks: 3, IsCorrect: boolPtr(true)}}

	got := BuildResult(6, 3, []float64{6}, scores)
	if !got.Passed {
		t.Error("score == passing marks must pass")
	}

	got = BuildResult(6, 3.01, []float64{6}, scores)
	if got.Passed {
		t.Error("score just under passing marks must fail")
	}
}

func TestBuildResult_TotalMarksFallsBackToQuestionSum(t *testing.T) {
	scores := []QuestionScore{
		{Marks: 2, IsCorrect: boolPtr(true)},
		{Skipped: true},
	}

	got := BuildResult(0, 1, []float64{2, 3}, scores)
	if got.TotalMarks != 5 {
		t.Errorf("total_marks = %v, want 5 (sum of question marks)", got.TotalMarks)
	}
	if got.Percentage != 40.0 {
		t.Errorf("percentage = %v, want 40.0", got.Percentage)
	}
}

func TestBuildResult_PercentageRoundsToOneDecimal(t *testing.T) {
	scores := []QuestionScore{{Marks: 1, IsCorrect: boolPtr(true)}}

	got := BuildResult(3, 1, []float64{3}, scores)
	if got.Percentage != 33.3 {
		t.Errorf("percentage = %v, want 33.3", got.Percentage)
	}
}

func TestBuildResult_EmptyQuiz(t *testing.T) {
	got := BuildResult(0, 0, nil, nil)
	if got.Percentage != 0 || got.Score != 0 || got.TotalQuestions != 0 {
		t.Errorf("empty quiz: got %+v, want all zeroes", got)
	}
}

// keep the test helpers honest: options produced by makeOptions carry ids
func TestMakeOptionsHaveIDs(t *testing.T) {
	for _, op := range makeOptions(true, false) {
		if op.ID == uuid.Nil {
			t.Fatal("option without id")
		}
	}
}
