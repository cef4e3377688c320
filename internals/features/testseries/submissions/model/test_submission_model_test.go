package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestReviewStatusTransitions(t *testing.T) {
	reviewer := uuid.New()
	now := time.Now()

	t.Run("pending can be reviewed", func(t *testing.T) {
		sub := TestSubmissionModel{TestSubmissionReviewStatus: ReviewPending}
		if !sub.CanReview() {
			t.Fatal("pending submission must be reviewable")
		}
		sub.MarkReviewed(42.5, 100, "good attempt", "https://cdn.tayari.app/checked/1.pdf", reviewer, now)
		if sub.TestSubmissionReviewStatus != ReviewReviewed {
			t.Errorf("status = %s, want reviewed", sub.TestSubmissionReviewStatus)
		}
		if sub.TestSubmissionScore == nil || *sub.TestSubmissionScore != 42.5 {
			t.Error("score not recorded")
		}
		if sub.TestSubmissionTotalMarks == nil || *sub.TestSubmissionTotalMarks != 100 {
			t.Error("total marks not recorded, graded score has no denominator")
		}
		if !sub.TestSubmissionResultGenerated {
			t.Error("result must be current after review")
		}
		if sub.TestSubmissionReviewedBy == nil || *sub.TestSubmissionReviewedBy != reviewer {
			t.Error("reviewer not recorded")
		}
	})

	t.Run("reviewed cannot be reviewed again without a recheck", func(t *testing.T) {
		sub := TestSubmissionModel{TestSubmissionReviewStatus: ReviewReviewed}
		if sub.CanReview() {
			t.Fatal("reviewed submission must not be reviewable directly")
		}
	})

	t.Run("recheck reopens a reviewed submission", func(t *testing.T) {
		sub := TestSubmissionModel{TestSubmissionReviewStatus: ReviewPending}
		sub.MarkReviewed(10, 20, "", "", reviewer, now)

		if !sub.CanRequestRecheck() {
			t.Fatal("reviewed submission must allow a recheck request")
		}
		sub.MarkRecheckRequested()

		if sub.TestSubmissionReviewStatus != ReviewRecheckRequested {
			t.Errorf("status = %s, want recheck_requested", sub.TestSubmissionReviewStatus)
		}
		if sub.TestSubmissionResultGenerated {
			t.Error("result must no longer be current after a recheck")
		}
		if sub.TestSubmissionScore == nil || sub.TestSubmissionTotalMarks == nil {
			t.Error("previous score and total stay visible during recheck")
		}
		if !sub.CanReview() {
			t.Error("recheck-requested submission must be reviewable again")
		}
	})

	t.Run("pending cannot request a recheck", func(t *testing.T) {
		sub := TestSubmissionModel{TestSubmissionReviewStatus: ReviewPending}
		if sub.CanRequestRecheck() {
			t.Fatal("pending submission must not allow a recheck request")
		}
	})
}

func TestReviewStatusScan(t *testing.T) {
	var s ReviewStatus
	if err := s.Scan("reviewed"); err != nil || s != ReviewReviewed {
		t.Errorf("Scan(reviewed) = %v, %v", s, err)
	}
	if err := s.Scan("bogus"); err == nil {
		t.Error("Scan(bogus) must fail")
	}
}

func TestSeriesIsLateAt(t *testing.T) {
	deadline := time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC)

	t.Run("no deadline is never late", func(t *testing.T) {
		series := TestSeriesModel{}
		if series.IsLateAt(deadline.Add(365 * 24 * time.Hour)) {
			t.Error("series without deadline flagged late")
		}
	})

	t.Run("before or at the deadline is on time", func(t *testing.T) {
		series := TestSeriesModel{TestSeriesDeadline: &deadline}
		if series.IsLateAt(deadline.Add(-time.Minute)) {
			t.Error("submission before deadline flagged late")
		}
		if series.IsLateAt(deadline) {
			t.Error("submission exactly at deadline flagged late")
		}
	})

	t.Run("after the deadline is late", func(t *testing.T) {
		series := TestSeriesModel{TestSeriesDeadline: &deadline}
		if !series.IsLateAt(deadline.Add(time.Second)) {
			t.Error("submission after deadline not flagged late")
		}
	})
}
