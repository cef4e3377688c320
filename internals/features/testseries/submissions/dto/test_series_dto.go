// file: internals/features/testseries/submissions/dto/test_series_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	smodel "tayari_backend/internals/features/testseries/submissions/model"
)

type CreateTestSeriesRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=255"`
	Description string     `json:"description" validate:"max=5000"`
	TotalMarks  float64    `json:"total_marks" validate:"gte=0"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	IsPublished bool       `json:"is_published"`
}

func (r *CreateTestSeriesRequest) ToModel() *smodel.TestSeriesModel {
	return &smodel.TestSeriesModel{
		TestSeriesTitle:       r.Title,
		TestSeriesDescription: r.Description,
		TestSeriesTotalMarks:  r.TotalMarks,
		TestSeriesDeadline:    r.Deadline,
		TestSeriesIsPublished: r.IsPublished,
	}
}

type TestSeriesResponse struct {
	SeriesID    uuid.UUID  `json:"series_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TotalMarks  float64    `json:"total_marks"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	IsPublished bool       `json:"is_published"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToTestSeriesResponse(m *smodel.TestSeriesModel) TestSeriesResponse {
	return TestSeriesResponse{
		SeriesID:    m.TestSeriesID,
		Title:       m.TestSeriesTitle,
		Description: m.TestSeriesDescription,
		TotalMarks:  m.TestSeriesTotalMarks,
		Deadline:    m.TestSeriesDeadline,
		IsPublished: m.TestSeriesIsPublished,
		CreatedAt:   m.TestSeriesCreatedAt,
	}
}
