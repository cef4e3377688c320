// file: internals/features/exams/quizzes/controller/quiz_user_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tayari_backend/internals/features/exams/quizzes/dto"
	"tayari_backend/internals/features/exams/quizzes/model"
	helper "tayari_backend/internals/helpers"
)

type QuizUserController struct {
	DB *gorm.DB
}

func NewQuizUserController(db *gorm.DB) *QuizUserController {
	return &QuizUserController{DB: db}
}

// =============================
// 📄 List published quizzes
// =============================
func (ctrl *QuizUserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizModel{}).
		Where("quiz_is_published = TRUE")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count quizzes")
	}

	var rows []model.QuizModel
	if err := q.Order("quiz_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch quizzes")
	}

	items := make([]dto.QuizResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.ToQuizResponse(&rows[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(total, p, len(items)),
	})
}

// =============================
// 📄 Questions of a published quiz (answer key stripped)
// =============================
func (ctrl *QuizUserController) Questions(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&quiz, "quiz_id = ? AND quiz_is_published = TRUE", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch quiz")
	}

	var rows []model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("quiz_question_quiz_id = ?", quizID).
		Order("quiz_question_position ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	items := make([]dto.QuizQuestionPublicResponse, 0, len(rows))
	for i := range rows {
		item, err := dto.ToQuizQuestionPublicResponse(&rows[i])
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Corrupt question options")
		}
		items = append(items, item)
	}

	return helper.Success(c, "OK", fiber.Map{
		"quiz":      dto.ToQuizResponse(&quiz),
		"questions": items,
	})
}
