// file: internals/features/testseries/submissions/model/test_submission_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Review status ('pending','reviewed','recheck_requested')
   Allowed transitions:
     pending            -> reviewed
     reviewed           -> recheck_requested
     recheck_requested  -> reviewed
============================================================================= */

type ReviewStatus string

const (
	ReviewPending          ReviewStatus = "pending"
	ReviewReviewed         ReviewStatus = "reviewed"
	ReviewRecheckRequested ReviewStatus = "recheck_requested"
)

func (s ReviewStatus) String() string { return string(s) }
func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewPending, ReviewReviewed, ReviewRecheckRequested:
		return true
	default:
		return false
	}
}

func (s *ReviewStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ReviewStatus(v)
	case []byte:
		*s = ReviewStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for ReviewStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid ReviewStatus: %q", *s)
	}
	return nil
}

func (s ReviewStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid ReviewStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: test_submissions
   - Unique: one submission per (series, user).
   - is_late is written once at creation and never recomputed.
============================================================================= */

type TestSubmissionModel struct {
	// PK
	TestSubmissionID uuid.UUID `json:"test_submission_id" gorm:"column:test_submission_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	TestSubmissionSeriesID uuid.UUID `json:"test_submission_series_id" gorm:"column:test_submission_series_id;type:uuid;not null;uniqueIndex:uq_ts_series_user,priority:1"`
	TestSubmissionUserID   uuid.UUID `json:"test_submission_user_id" gorm:"column:test_submission_user_id;type:uuid;not null;uniqueIndex:uq_ts_series_user,priority:2"`

	// Answer sheet location (object storage URL or similar)
	TestSubmissionFileURL string `json:"test_submission_file_url" gorm:"column:test_submission_file_url;type:text;not null"`

	TestSubmissionSubmittedAt time.Time `json:"test_submission_submitted_at" gorm:"column:test_submission_submitted_at;type:timestamptz;not null;default:now()"`
	TestSubmissionIsLate      bool      `json:"test_submission_is_late" gorm:"column:test_submission_is_late;not null;default:false"`

	// Review workflow
	TestSubmissionReviewStatus ReviewStatus `json:"test_submission_review_status" gorm:"column:test_submission_review_status;type:varchar(24);not null;default:'pending';index:idx_ts_review_status"`

	// Grading output (set on review)
	TestSubmissionScore          *float64   `json:"test_submission_score,omitempty" gorm:"column:test_submission_score;type:numeric(7,2)"`
	TestSubmissionTotalMarks     *float64   `json:"test_submission_total_marks,omitempty" gorm:"column:test_submission_total_marks;type:numeric(7,2)"`
	TestSubmissionCheckedFileURL string     `json:"test_submission_checked_file_url,omitempty" gorm:"column:test_submission_checked_file_url;type:text"`
	TestSubmissionRemarks        string     `json:"test_submission_remarks" gorm:"column:test_submission_remarks;type:text"`
	TestSubmissionReviewedBy     *uuid.UUID `json:"test_submission_reviewed_by,omitempty" gorm:"column:test_submission_reviewed_by;type:uuid"`
	TestSubmissionReviewedAt     *time.Time `json:"test_submission_reviewed_at,omitempty" gorm:"column:test_submission_reviewed_at;type:timestamptz"`

	// True while a reviewed result is current; cleared when a recheck reopens it.
	TestSubmissionResultGenerated bool `json:"test_submission_result_generated" gorm:"column:test_submission_result_generated;not null;default:false"`

	// Audit
	TestSubmissionCreatedAt time.Time `json:"test_submission_created_at" gorm:"column:test_submission_created_at;type:timestamptz;not null;default:now()"`
	TestSubmissionUpdatedAt time.Time `json:"test_submission_updated_at" gorm:"column:test_submission_updated_at;type:timestamptz;not null;default:now()"`
}

func (TestSubmissionModel) TableName() string { return "test_submissions" }

func (m *TestSubmissionModel) BeforeSave(_ *gorm.DB) error {
	m.TestSubmissionUpdatedAt = time.Now()
	return nil
}

/* ===================================================================
   State transitions
=================================================================== */

// CanReview reports whether the submission may move to 'reviewed'.
func (m *TestSubmissionModel) CanReview() bool {
	return m.TestSubmissionReviewStatus == ReviewPending ||
		m.TestSubmissionReviewStatus == ReviewRecheckRequested
}

// MarkReviewed applies the grader verdict and flags the result as current.
// Total marks come from the grader so a result is always interpretable as
// score out of total, even when the series definition changes later.
func (m *TestSubmissionModel) MarkReviewed(score, totalMarks float64, remarks, checkedFileURL string, reviewerID uuid.UUID, at time.Time) {
	m.TestSubmissionReviewStatus = ReviewReviewed
	m.TestSubmissionScore = &score
	m.TestSubmissionTotalMarks = &totalMarks
	m.TestSubmissionRemarks = remarks
	if checkedFileURL != "" {
		m.TestSubmissionCheckedFileURL = checkedFileURL
	}
	m.TestSubmissionReviewedBy = &reviewerID
	m.TestSubmissionReviewedAt = &at
	m.TestSubmissionResultGenerated = true
}

// CanRequestRecheck reports whether the owner may reopen the review.
func (m *TestSubmissionModel) CanRequestRecheck() bool {
	return m.TestSubmissionReviewStatus == ReviewReviewed
}

// MarkRecheckRequested reopens the review. The previous score stays visible
// but the result is no longer considered current.
func (m *TestSubmissionModel) MarkRecheckRequested() {
	m.TestSubmissionReviewStatus = ReviewRecheckRequested
	m.TestSubmissionResultGenerated = false
}
