// file: internals/features/testseries/submissions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subcontroller "tayari_backend/internals/features/testseries/submissions/controller"
)

// SubmissionAdminRoutes mounts the grader/admin surface: series management,
// the review queue and the review action itself.
func SubmissionAdminRoutes(router fiber.Router, db *gorm.DB) {
	seriesCtrl := subcontroller.NewTestSeriesAdminController(db)
	subCtrl := subcontroller.NewSubmissionAdminController(db)

	router.Post("/test-series", seriesCtrl.Create)
	router.Get("/test-series", seriesCtrl.List)

	router.Get("/test-submissions", subCtrl.List)
	router.Patch("/test-submissions/:submissionId", subCtrl.Review)
}
