package service

import (
	"errors"
	"testing"
	"time"

	amodel "tayari_backend/internals/features/exams/attempts/model"
)

func TestRemainingAttempts(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		completed int
		want      *int
	}{
		{"unlimited when no limit configured", 0, 5, nil},
		{"full allowance before any attempt", 3, 0, intPtr(3)},
		{"decrements per completed attempt", 3, 2, intPtr(1)},
		{"floors at zero", 2, 4, intPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemainingAttempts(tt.limit, tt.completed)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("remaining = %d, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("remaining = nil, want %d", *tt.want)
			case tt.want != nil && got != nil && *got != *tt.want:
				t.Errorf("remaining = %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestCanStartAttempt(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		completed     int
		hasInProgress bool
		wantErr       error
	}{
		{"first attempt allowed", 2, 0, false, nil},
		{"second attempt allowed", 2, 1, false, nil},
		{"third attempt blocked by limit", 2, 2, false, ErrAttemptLimitExceeded},
		{"open attempt blocks a new one", 2, 0, true, ErrAttemptAlreadyInProgress},
		{"open attempt wins over the limit check", 2, 2, true, ErrAttemptAlreadyInProgress},
		{"unlimited quiz never hits the cap", 0, 100, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanStartAttempt(tt.limit, tt.completed, tt.hasInProgress)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAttemptExpired(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		limitSec int
		want     bool
	}{
		{"untimed quiz never expires", start.Add(24 * time.Hour), 0, false},
		{"inside the window", start.Add(10 * time.Minute), 1800, false},
		{"exactly at the limit is still open", start.Add(30 * time.Minute), 1800, false},
		{"past the limit", start.Add(30*time.Minute + time.Second), 1800, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttemptExpired(start, tt.now, tt.limitSec); got != tt.want {
				t.Errorf("expired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildOverview(t *testing.T) {
	t.Run("open attempt blocks no matter how long the history is", func(t *testing.T) {
		// the open attempt may live on any page of the history listing;
		// the overview only sees the aggregate flag
		ov := buildOverview(0, 37, true)
		if ov.CanAttempt {
			t.Error("can_attempt = true with an open attempt")
		}
		if ov.Remaining != nil {
			t.Errorf("remaining = %d, want nil for unlimited quiz", *ov.Remaining)
		}
	})

	t.Run("within limit and nothing open", func(t *testing.T) {
		ov := buildOverview(3, 1, false)
		if !ov.CanAttempt {
			t.Error("can_attempt = false, want true")
		}
		if ov.Remaining == nil || *ov.Remaining != 2 {
			t.Error("remaining not derived from completed count")
		}
	})

	t.Run("limit exhausted", func(t *testing.T) {
		ov := buildOverview(2, 2, false)
		if ov.CanAttempt {
			t.Error("can_attempt = true at the cap")
		}
		if ov.Remaining == nil || *ov.Remaining != 0 {
			t.Error("remaining not floored at zero")
		}
	})
}

func TestExpireIfStale(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("stale open attempt is abandoned", func(t *testing.T) {
		attempt := &amodel.QuizAttemptModel{
			QuizAttemptStatus:    amodel.AttemptInProgress,
			QuizAttemptStartedAt: started,
		}
		// submitted hours past a 30 minute limit
		if !expireIfStale(attempt, 1800, started.Add(3*time.Hour)) {
			t.Fatal("stale attempt not expired")
		}
		if attempt.QuizAttemptStatus != amodel.AttemptAbandoned {
			t.Errorf("status = %s, want abandoned", attempt.QuizAttemptStatus)
		}
		if attempt.QuizAttemptScore != nil {
			t.Error("expired attempt must not carry a score")
		}
	})

	t.Run("fresh open attempt is left alone", func(t *testing.T) {
		attempt := &amodel.QuizAttemptModel{
			QuizAttemptStatus:    amodel.AttemptInProgress,
			QuizAttemptStartedAt: started,
		}
		if expireIfStale(attempt, 1800, started.Add(10*time.Minute)) {
			t.Fatal("fresh attempt expired")
		}
		if !attempt.IsInProgress() {
			t.Error("fresh attempt no longer in progress")
		}
	})

	t.Run("completed attempt is never touched", func(t *testing.T) {
		attempt := &amodel.QuizAttemptModel{
			QuizAttemptStatus:    amodel.AttemptCompleted,
			QuizAttemptStartedAt: started,
		}
		if expireIfStale(attempt, 1800, started.Add(3*time.Hour)) {
			t.Fatal("completed attempt expired")
		}
	})

	t.Run("untimed quiz never goes stale", func(t *testing.T) {
		attempt := &amodel.QuizAttemptModel{
			QuizAttemptStatus:    amodel.AttemptInProgress,
			QuizAttemptStartedAt: started,
		}
		if expireIfStale(attempt, 0, started.Add(240*time.Hour)) {
			t.Fatal("untimed attempt expired")
		}
	})
}

func intPtr(v int) *int { return &v }
