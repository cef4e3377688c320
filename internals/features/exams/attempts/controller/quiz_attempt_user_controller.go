// file: internals/features/exams/attempts/controller/quiz_attempt_user_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tayari_backend/internals/features/exams/attempts/dto"
	"tayari_backend/internals/features/exams/attempts/service"
	helper "tayari_backend/internals/helpers"
	middleware "tayari_backend/internals/middlewares/auth"
)

var validate = validator.New()

type QuizAttemptUserController struct {
	Service *service.AttemptService
}

func NewQuizAttemptUserController(db *gorm.DB) *QuizAttemptUserController {
	return &QuizAttemptUserController{Service: service.NewAttemptService(db)}
}

// =============================
// ▶️ Start a new attempt
// POST /quizzes/:quizId/attempts
// =============================
func (ctrl *QuizAttemptUserController) Start(c *fiber.Ctx) error {
	userID, err := middleware.UserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	attempt, err := ctrl.Service.StartAttempt(c.UserContext(), userID, quizID)
	if err != nil {
		return mapAttemptError(c, err, "Failed to start attempt")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attempt started", dto.ToAttemptResponse(attempt))
}

// =============================
// ✏️ Record / overwrite one answer
// PUT /attempts/:attemptId/answers/:questionId
// =============================
func (ctrl *QuizAttemptUserController) RecordAnswer(c *fiber.Ctx) error {
	userID, err := middleware.UserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attempt id")
	}
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var req dto.RecordAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	answer, err := ctrl.Service.RecordAnswer(c.UserContext(), userID, attemptID, questionID, req.SelectedOptionIDs, req.TimeSec)
	if err != nil {
		return mapAttemptError(c, err, "Failed to record answer")
	}
	return helper.Success(c, "Answer recorded", dto.ToAnswerResponse(answer))
}

// =============================
// ✅ Submit (finalize) the attempt
// POST /attempts/:attemptId/submit
// =============================
func (ctrl *QuizAttemptUserController) Submit(c *fiber.Ctx) error {
	userID, err := middleware.UserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attempt id")
	}

	result, err := ctrl.Service.FinalizeAttempt(c.UserContext(), userID, attemptID)
	if err != nil {
		return mapAttemptError(c, err, "Failed to submit attempt")
	}
	return helper.Success(c, "Attempt submitted", dto.ToAttemptResultResponse(result))
}

// =============================
// 🗑️ Abandon the attempt
// POST /attempts/:attemptId/abandon
// =============================
func (ctrl *QuizAttemptUserController) Abandon(c *fiber.Ctx) error {
	userID, err := middleware.UserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attempt id")
	}

	attempt, err := ctrl.Service.AbandonAttempt(c.UserContext(), userID, attemptID)
	if err != nil {
		return mapAttemptError(c, err, "Failed to abandon attempt")
	}
	return helper.Success(c, "Attempt abandoned", dto.ToAttemptResponse(attempt))
}

// =============================
// 📊 Result with per-question breakdown
// GET /attempts/:attemptId/result
// =============================
func (ctrl *QuizAttemptUserController) Result(c *fiber.Ctx) error {
	userID, err := middleware.UserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attempt id")
	}

	result, err := ctrl.Service.GetResult(c.UserContext(), userID, attemptID)
	if err != nil {
		return mapAttemptError(c, err, "Failed to fetch result")
	}
	return helper.Success(c, "OK", dto.ToAttemptResultResponse(result))
}

// =============================
// 📄 My attempt history for a quiz
// GET /quizzes/:quizId/my-attempts
// =============================
func (ctrl *QuizAttemptUserController) MyAttempts(c *fiber.Ctx) error {
	userID, err := middleware.UserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, overview, err := ctrl.Service.ListUserAttempts(c.UserContext(), userID, quizID, p.Offset, p.Limit)
	if err != nil {
		return mapAttemptError(c, err, "Failed to fetch attempts")
	}

	history := dto.ToAttemptHistoryResponse(rows, overview)
	return helper.Success(c, "OK", fiber.Map{
		"attempts":   history.Attempts,
		"overview":   history.Overview,
		"pagination": helper.BuildPagination(total, p, len(history.Attempts)),
	})
}

/* =========================================================
   Error mapping (sentinel -> HTTP)
========================================================= */

func mapAttemptError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Resource not found")
	case errors.Is(err, service.ErrAttemptLimitExceeded):
		return helper.Error(c, fiber.StatusConflict, "Attempt limit for this quiz has been reached")
	case errors.Is(err, service.ErrAttemptAlreadyInProgress):
		return helper.Error(c, fiber.StatusConflict, "An attempt is already in progress for this quiz")
	case errors.Is(err, service.ErrAttemptNotEditable):
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Attempt is no longer editable")
	case errors.Is(err, service.ErrAttemptNotFinalized):
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Attempt has not been submitted yet")
	case errors.Is(err, service.ErrQuestionMismatch):
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Question does not belong to this quiz")
	default:
		log.Printf("[ERROR] %s: %v", fallback, err)
		return helper.Error(c, fiber.StatusInternalServerError, fallback)
	}
}
