// file: internals/features/testseries/submissions/model/test_series_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: test_series
   A manually graded test paper. Students upload one submission each; graders
   review it through the submission workflow.
============================================================================= */

type TestSeriesModel struct {
	// PK
	TestSeriesID uuid.UUID `json:"test_series_id" gorm:"column:test_series_id;type:uuid;default:gen_random_uuid();primaryKey"`

	TestSeriesTitle       string  `json:"test_series_title" gorm:"column:test_series_title;type:varchar(255);not null"`
	TestSeriesDescription string  `json:"test_series_description" gorm:"column:test_series_description;type:text"`
	TestSeriesTotalMarks  float64 `json:"test_series_total_marks" gorm:"column:test_series_total_marks;type:numeric(7,2);not null;default:0"`

	// Submissions after this instant are accepted but flagged late.
	// Nil = no deadline.
	TestSeriesDeadline *time.Time `json:"test_series_deadline,omitempty" gorm:"column:test_series_deadline;type:timestamptz"`

	TestSeriesIsPublished bool `json:"test_series_is_published" gorm:"column:test_series_is_published;not null;default:false"`

	// Audit
	TestSeriesCreatedAt time.Time      `json:"test_series_created_at" gorm:"column:test_series_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	TestSeriesUpdatedAt time.Time      `json:"test_series_updated_at" gorm:"column:test_series_updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
	TestSeriesDeletedAt gorm.DeletedAt `json:"test_series_deleted_at,omitempty" gorm:"column:test_series_deleted_at"`
}

func (TestSeriesModel) TableName() string { return "test_series" }

// IsLateAt reports whether a submission at the given instant misses the
// deadline. The flag is computed exactly once, at submission time.
func (m *TestSeriesModel) IsLateAt(at time.Time) bool {
	return m.TestSeriesDeadline != nil && at.After(*m.TestSeriesDeadline)
}
