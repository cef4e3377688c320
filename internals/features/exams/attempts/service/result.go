// file: internals/features/exams/attempts/service/result.go
package service

import "math"

/* =========================================================
   RESULT AGGREGATION
   Pure summary over the per-question scores of one attempt.
========================================================= */

type ResultSummary struct {
	Score          float64 `json:"score"`
	TotalMarks     float64 `json:"total_marks"`
	Percentage     float64 `json:"percentage"`
	Passed         bool    `json:"passed"`
	TotalQuestions int     `json:"total_questions"`
	CorrectCount   int     `json:"correct_count"`
	IncorrectCount int     `json:"incorrect_count"`
	SkippedCount   int     `json:"skipped_count"`
}

// BuildResult partitions the scores into correct/incorrect/skipped, sums the
// marks and derives percentage + pass/fail.
//
// Percentage is rounded to 1 decimal and clamped to [0,100]: the raw score may
// go negative under negative marking, the percentage never does.
func BuildResult(totalMarks, passingMarks float64, questionMarks []float64, scores []QuestionScore) ResultSummary {
	out := ResultSummary{
		TotalMarks:     totalMarks,
		TotalQuestions: len(scores),
	}
	if out.TotalMarks == 0 {
		for _, m := range questionMarks {
			out.TotalMarks += m
		}
	}

	for _, s := range scores {
		out.Score += s.Marks
		switch {
		case s.Skipped:
			out.SkippedCount++
		case s.IsCorrect != nil && *s.IsCorrect:
			out.CorrectCount++
		default:
			out.IncorrectCount++
		}
	}
	out.Score = round2(out.Score)

	if out.TotalMarks > 0 {
		pct := 100 * out.Score / out.TotalMarks
		pct = math.Round(pct*10) / 10
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		out.Percentage = pct
	}

	out.Passed = out.Score >= passingMarks
	return out
}
