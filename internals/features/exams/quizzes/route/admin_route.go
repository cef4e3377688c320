package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "tayari_backend/internals/features/exams/quizzes/controller"
)

// Base (admin): /api/a
func QuizAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizAdminController(db)

	quizzes := r.Group("/quizzes") // -> /api/a/quizzes
	quizzes.Post("/", ctrl.CreateQuiz)
	quizzes.Post("/questions", ctrl.CreateQuestion)
	quizzes.Get("/:quizId/questions", ctrl.ListQuestions)
}
