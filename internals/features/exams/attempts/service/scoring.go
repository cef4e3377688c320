// file: internals/features/exams/attempts/service/scoring.go
package service

import (
	"math"

	"github.com/google/uuid"

	qmodel "tayari_backend/internals/features/exams/quizzes/model"
)

/* =========================================================
   SCORING ENGINE
   Pure function of (selection, options, marking scheme): no DB,
   no hidden state. Run once per question at submit time; re-running
   on the same final selection always yields the same marks.
========================================================= */

type QuestionScore struct {
	// Marks contributed by the question (may be negative, already clamped).
	Marks float64
	// Nil for skipped and for kinds the engine cannot grade (short answer).
	// True only on an exact match of the correct set.
	IsCorrect *bool
	// No option selected at all.
	Skipped bool
}

// ScoreSelection grades one question from the user's final selection.
//
// single_select / true_false: +marks on the correct option, -negative_marks
// otherwise (0 when no negative marking is configured).
//
// multi_select: let C = correct set, S = selected set.
//   - S ⊆ C, S ≠ ∅  → marks * |S| / |C| (proportional credit)
//   - any wrong pick → -(penalty per wrong pick × wrong picks), where the
//     penalty defaults to marks/|C| (one wrong pick costs one credit unit)
//
// Every outcome is clamped to the scheme floor (default -marks) so a single
// high-mark question cannot sink the score without bound.
func ScoreSelection(kind qmodel.QuizQuestionKind, options []qmodel.QuizQuestionOption, scheme qmodel.MarkingScheme, selected []uuid.UUID) QuestionScore {
	if len(selected) == 0 {
		return QuestionScore{Marks: 0, IsCorrect: nil, Skipped: true}
	}
	if !kind.AutoScored() {
		// short answer: graded elsewhere, contributes nothing here
		return QuestionScore{Marks: 0, IsCorrect: nil}
	}

	correct := make(map[uuid.UUID]bool, len(options))
	known := make(map[uuid.UUID]bool, len(options))
	correctCount := 0
	for _, op := range options {
		known[op.ID] = true
		if op.IsCorrect {
			correct[op.ID] = true
			correctCount++
		}
	}
	if correctCount == 0 {
		// malformed question; never reward or punish for it
		f := false
		return QuestionScore{Marks: 0, IsCorrect: &f}
	}

	switch kind {
	case qmodel.QuestionSingleSelect, qmodel.QuestionTrueFalse:
		// more than one pick on a single-select is a wrong answer
		if len(selected) == 1 && correct[selected[0]] {
			t := true
			return QuestionScore{Marks: clamp(scheme.Marks, scheme), IsCorrect: &t}
		}
		f := false
		return QuestionScore{Marks: clamp(-scheme.NegativeMarks, scheme), IsCorrect: &f}

	default: // multi_select
		hit, wrong := 0, 0
		seen := make(map[uuid.UUID]bool, len(selected))
		for _, id := range selected {
			if seen[id] {
				continue
			}
			seen[id] = true
			switch {
			case correct[id]:
				hit++
			case known[id]:
				wrong++
			default:
				// an id outside the option set counts as a wrong pick
				wrong++
			}
		}

		if wrong > 0 {
			penalty := scheme.WrongPickPenalty
			if penalty <= 0 {
				penalty = scheme.Marks / float64(correctCount)
			}
			f := false
			return QuestionScore{Marks: clamp(round2(-penalty*float64(wrong)), scheme), IsCorrect: &f}
		}

		full := hit == correctCount
		marks := round2(scheme.Marks * float64(hit) / float64(correctCount))
		return QuestionScore{Marks: clamp(marks, scheme), IsCorrect: &full}
	}
}

// clamp keeps the contribution within [floor, marks].
func clamp(v float64, scheme qmodel.MarkingScheme) float64 {
	if floor := scheme.FloorValue(); v < floor {
		v = floor
	}
	if v > scheme.Marks {
		v = scheme.Marks
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
