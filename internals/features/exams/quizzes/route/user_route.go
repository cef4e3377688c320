package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "tayari_backend/internals/features/exams/quizzes/controller"
)

// Base (user): /api/u
func QuizUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizUserController(db)

	quizzes := r.Group("/quizzes") // -> /api/u/quizzes
	quizzes.Get("/", ctrl.List)
	quizzes.Get("/:quizId/questions", ctrl.Questions)
}
