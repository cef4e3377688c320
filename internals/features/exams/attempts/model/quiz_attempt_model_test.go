package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAttemptTransitions(t *testing.T) {
	now := time.Now()

	t.Run("mark completed stores the final result", func(t *testing.T) {
		m := QuizAttemptModel{QuizAttemptStatus: AttemptInProgress}
		m.MarkCompleted(7.5, 75.0, true, now)

		if !m.IsCompleted() {
			t.Fatal("attempt not completed")
		}
		if m.QuizAttemptScore == nil || *m.QuizAttemptScore != 7.5 {
			t.Error("score not stored")
		}
		if m.QuizAttemptPercentage == nil || *m.QuizAttemptPercentage != 75.0 {
			t.Error("percentage not stored")
		}
		if m.QuizAttemptPassed == nil || !*m.QuizAttemptPassed {
			t.Error("passed flag not stored")
		}
		if m.QuizAttemptCompletedAt == nil {
			t.Error("completed_at not stored")
		}
	})

	t.Run("mark abandoned leaves no result", func(t *testing.T) {
		m := QuizAttemptModel{QuizAttemptStatus: AttemptInProgress}
		m.MarkAbandoned(now)

		if m.QuizAttemptStatus != AttemptAbandoned {
			t.Fatalf("status = %s, want abandoned", m.QuizAttemptStatus)
		}
		if m.QuizAttemptScore != nil || m.QuizAttemptPassed != nil {
			t.Error("abandoned attempt must not carry a result")
		}
	})
}

func TestAttemptStatusScan(t *testing.T) {
	var s QuizAttemptStatus
	if err := s.Scan([]byte("completed")); err != nil || s != AttemptCompleted {
		t.Errorf("Scan(completed) = %v, %v", s, err)
	}
	if err := s.Scan("nope"); err == nil {
		t.Error("Scan(nope) must fail")
	}
}

func TestSelectedOptionIDsRoundTrip(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	var m QuizAttemptAnswerModel
	if err := m.SetSelectedOptionIDs(ids); err != nil {
		t.Fatalf("SetSelectedOptionIDs: %v", err)
	}
	got := m.SelectedOptionIDs()
	if len(got) != 2 || got[0] != ids[0] || got[1] != ids[1] {
		t.Errorf("round trip = %v, want %v", got, ids)
	}
	if m.IsSkipped() {
		t.Error("answer with selections flagged skipped")
	}

	if err := m.SetSelectedOptionIDs(nil); err != nil {
		t.Fatalf("SetSelectedOptionIDs(nil): %v", err)
	}
	if !m.IsSkipped() {
		t.Error("empty selection must read as skipped")
	}
	if string(m.QuizAttemptAnswerSelected) != "[]" {
		t.Errorf("empty selection stored as %q, want []", m.QuizAttemptAnswerSelected)
	}
}
