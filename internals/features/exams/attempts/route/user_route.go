// file: internals/features/exams/attempts/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptcontroller "tayari_backend/internals/features/exams/attempts/controller"
)

// QuizAttemptUserRoutes mounts the attempt lifecycle under the authenticated
// user group.
func QuizAttemptUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attemptcontroller.NewQuizAttemptUserController(db)

	router.Post("/quizzes/:quizId/attempts", ctrl.Start)
	router.Get("/quizzes/:quizId/my-attempts", ctrl.MyAttempts)

	router.Put("/attempts/:attemptId/answers/:questionId", ctrl.RecordAnswer)
	router.Post("/attempts/:attemptId/submit", ctrl.Submit)
	router.Post("/attempts/:attemptId/abandon", ctrl.Abandon)
	router.Get("/attempts/:attemptId/result", ctrl.Result)
}
