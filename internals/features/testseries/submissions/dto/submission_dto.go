// file: internals/features/testseries/submissions/dto/submission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	smodel "tayari_backend/internals/features/testseries/submissions/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateSubmissionRequest struct {
	FileURL string `json:"file_url" validate:"required,url"`
}

type ReviewSubmissionRequest struct {
	Score          float64 `json:"score" validate:"gte=0"`
	TotalMarks     float64 `json:"total_marks" validate:"required,gt=0,gtefield=Score"`
	Remarks        string  `json:"remarks" validate:"max=2000"`
	CheckedFileURL string  `json:"checked_file_url" validate:"omitempty,url"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type SubmissionResponse struct {
	SubmissionID    uuid.UUID           `json:"submission_id"`
	SeriesID        uuid.UUID           `json:"series_id"`
	UserID          uuid.UUID           `json:"user_id"`
	FileURL         string              `json:"file_url"`
	SubmittedAt     time.Time           `json:"submitted_at"`
	IsLate          bool                `json:"is_late"`
	ReviewStatus    smodel.ReviewStatus `json:"review_status"`
	Score           *float64            `json:"score,omitempty"`
	TotalMarks      *float64            `json:"total_marks,omitempty"`
	Remarks         string              `json:"remarks,omitempty"`
	CheckedFileURL  string              `json:"checked_file_url,omitempty"`
	ReviewedAt      *time.Time          `json:"reviewed_at,omitempty"`
	ResultGenerated bool                `json:"result_generated"`
}

func ToSubmissionResponse(m *smodel.TestSubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:    m.TestSubmissionID,
		SeriesID:        m.TestSubmissionSeriesID,
		UserID:          m.TestSubmissionUserID,
		FileURL:         m.TestSubmissionFileURL,
		SubmittedAt:     m.TestSubmissionSubmittedAt,
		IsLate:          m.TestSubmissionIsLate,
		ReviewStatus:    m.TestSubmissionReviewStatus,
		Score:           m.TestSubmissionScore,
		TotalMarks:      m.TestSubmissionTotalMarks,
		Remarks:         m.TestSubmissionRemarks,
		CheckedFileURL:  m.TestSubmissionCheckedFileURL,
		ReviewedAt:      m.TestSubmissionReviewedAt,
		ResultGenerated: m.TestSubmissionResultGenerated,
	}
}
