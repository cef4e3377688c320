// file: internals/features/exams/quizzes/controller/quiz_admin_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tayari_backend/internals/features/exams/quizzes/dto"
	"tayari_backend/internals/features/exams/quizzes/model"
	helper "tayari_backend/internals/helpers"
)

var validate = validator.New()

type QuizAdminController struct {
	DB *gorm.DB
}

func NewQuizAdminController(db *gorm.DB) *QuizAdminController {
	return &QuizAdminController{DB: db}
}

// =============================
// ➕ Create Quiz
// =============================
func (ctrl *QuizAdminController) CreateQuiz(c *fiber.Ctx) error {
	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	m := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		log.Printf("[ERROR] create quiz: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create quiz")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Quiz created", dto.ToQuizResponse(m))
}

// =============================
// ➕ Create Question (recomputes quiz totals)
// =============================
func (ctrl *QuizAdminController) CreateQuestion(c *fiber.Ctx) error {
	var body dto.CreateQuizQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := body.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var quiz model.QuizModel
		if err := tx.First(&quiz, "quiz_id = ?", m.QuizQuestionQuizID).Error; err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		// keep the quiz aggregates in sync with the question bank
		return tx.Model(&model.QuizModel{}).
			Where("quiz_id = ?", quiz.QuizID).
			Updates(map[string]any{
				"quiz_total_questions": gorm.Expr("quiz_total_questions + 1"),
				"quiz_total_marks":     gorm.Expr("quiz_total_marks + ?", m.QuizQuestionMarks),
			}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Quiz not found")
		}
		log.Printf("[ERROR] create question: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question created", m)
}

// =============================
// 📄 List Questions (admin, full payload incl. answer key)
// =============================
func (ctrl *QuizAdminController) ListQuestions(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizQuestionModel{}).
		Where("quiz_question_quiz_id = ?", quizID)
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	var rows []model.QuizQuestionModel
	if err := q.Order("quiz_question_position ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}
