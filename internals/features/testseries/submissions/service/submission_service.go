// file: internals/features/testseries/submissions/service/submission_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	smodel "tayari_backend/internals/features/testseries/submissions/model"
)

/* =========================================================
   Errors
========================================================= */

var (
	ErrNotFound                = errors.New("resource not found")
	ErrDuplicateSubmission     = errors.New("a submission already exists for this test series")
	ErrInvalidReviewTransition = errors.New("submission is not in a reviewable state")
	ErrRecheckNotAllowed       = errors.New("only a reviewed submission can be recheck-requested")
)

/* =========================================================
   SERVICE
========================================================= */

type SubmissionService struct {
	DB *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{DB: db}
}

// Create stores the one submission a user gets per test series. The late flag
// is computed here, once, against the series deadline.
func (s *SubmissionService) Create(ctx context.Context, userID, seriesID uuid.UUID, fileURL string) (*smodel.TestSubmissionModel, error) {
	var series smodel.TestSeriesModel
	if err := s.DB.WithContext(ctx).
		First(&series, "test_series_id = ? AND test_series_is_published = TRUE", seriesID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	sub := &smodel.TestSubmissionModel{
		TestSubmissionID:           uuid.New(),
		TestSubmissionSeriesID:     seriesID,
		TestSubmissionUserID:       userID,
		TestSubmissionFileURL:      fileURL,
		TestSubmissionSubmittedAt:  now,
		TestSubmissionIsLate:       series.IsLateAt(now),
		TestSubmissionReviewStatus: smodel.ReviewPending,
	}

	if err := s.DB.WithContext(ctx).Create(sub).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateSubmission
		}
		return nil, err
	}

	log.Printf("[INFO] submission created. submission_id=%s series_id=%s user_id=%s late=%v",
		sub.TestSubmissionID, seriesID, userID, sub.TestSubmissionIsLate)
	return sub, nil
}

// GetMine returns the caller's submission for one series.
func (s *SubmissionService) GetMine(ctx context.Context, userID, seriesID uuid.UUID) (*smodel.TestSubmissionModel, error) {
	var sub smodel.TestSubmissionModel
	if err := s.DB.WithContext(ctx).
		First(&sub, "test_submission_series_id = ? AND test_submission_user_id = ?", seriesID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// Review moves a pending or recheck-requested submission to reviewed and
// records the grader verdict.
func (s *SubmissionService) Review(ctx context.Context, reviewerID, submissionID uuid.UUID, score, totalMarks float64, remarks, checkedFileURL string) (*smodel.TestSubmissionModel, error) {
	var sub smodel.TestSubmissionModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "test_submission_id = ?", submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !sub.CanReview() {
			return ErrInvalidReviewTransition
		}
		sub.MarkReviewed(score, totalMarks, remarks, checkedFileURL, reviewerID, time.Now().UTC())
		return tx.Save(&sub).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] submission reviewed. submission_id=%s reviewer=%s score=%.2f",
		submissionID, reviewerID, score)
	return &sub, nil
}

// RequestRecheck lets the owner reopen a reviewed submission. The stored score
// stays but the result is no longer current until a grader re-reviews.
func (s *SubmissionService) RequestRecheck(ctx context.Context, userID, submissionID uuid.UUID) (*smodel.TestSubmissionModel, error) {
	var sub smodel.TestSubmissionModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub,
			"test_submission_id = ? AND test_submission_user_id = ?", submissionID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !sub.CanRequestRecheck() {
			return ErrRecheckNotAllowed
		}
		sub.MarkRecheckRequested()
		return tx.Save(&sub).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// List is the grader view: every submission, optionally filtered by review
// status, newest first.
func (s *SubmissionService) List(ctx context.Context, seriesID *uuid.UUID, status smodel.ReviewStatus, offset, limit int) ([]smodel.TestSubmissionModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&smodel.TestSubmissionModel{})
	if seriesID != nil {
		q = q.Where("test_submission_series_id = ?", *seriesID)
	}
	if status != "" {
		if !status.Valid() {
			return nil, 0, ErrNotFound
		}
		q = q.Where("test_submission_review_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []smodel.TestSubmissionModel
	if err := q.Order("test_submission_submitted_at DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Postgres unique violation ("23505") detection
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "23505")
}
