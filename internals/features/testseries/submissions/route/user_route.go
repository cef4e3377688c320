// file: internals/features/testseries/submissions/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subcontroller "tayari_backend/internals/features/testseries/submissions/controller"
)

// SubmissionUserRoutes mounts the student-facing submission workflow.
func SubmissionUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := subcontroller.NewSubmissionUserController(db)

	router.Post("/test-series/:seriesId/submissions", ctrl.Create)
	router.Get("/test-series/:seriesId/submissions/me", ctrl.Mine)
	router.Post("/test-submissions/:submissionId/recheck", ctrl.RequestRecheck)
}
