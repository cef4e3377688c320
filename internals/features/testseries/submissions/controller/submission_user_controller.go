// file: internals/features/testseries/submissions/controller/submission_user_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tayari_backend/internals/features/testseries/submissions/dto"
	"tayari_backend/internals/features/testseries/submissions/service"
	helper "tayari_backend/internals/helpers"
	middleware "tayari_backend/internals/middlewares/auth"
)

var validate = validator.New()

type SubmissionUserController struct {
	Service *service.SubmissionService
}

func NewSubmissionUserController(db *gorm.DB) *SubmissionUserController {
	return &SubmissionUserController{Service: service.NewSubmissionService(db)}
}

// =============================
// 📤 Submit an answer sheet
// POST /test-series/:seriesId/submissions
// =============================
func (ctrl *SubmissionUserController) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	seriesID, err := uuid.Parse(c.Params("seriesId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid test series id")
	}

	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sub, err := ctrl.Service.Create(c.UserContext(), userID, seriesID, req.FileURL)
	if err != nil {
		return mapSubmissionError(c, err, "Failed to create submission")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Submission received", dto.ToSubmissionResponse(sub))
}

// =============================
// 📄 My submission for a series
// GET /test-series/:seriesId/submissions/me
// =============================
func (ctrl *SubmissionUserController) Mine(c *fiber.Ctx) error {
	userID, err := middleware.UserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	seriesID, err := uuid.Parse(c.Params("seriesId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid test series id")
	}

	sub, err := ctrl.Service.GetMine(c.UserContext(), userID, seriesID)
	if err != nil {
		return mapSubmissionError(c, err, "Failed to fetch submission")
	}
	return helper.Success(c, "OK", dto.ToSubmissionResponse(sub))
}

// =============================
// 🔁 Request a recheck of a reviewed submission
// POST /test-submissions/:submissionId/recheck
// =============================
func (ctrl *SubmissionUserController) RequestRecheck(c *fiber.Ctx) error {
	userID, err := middleware.UserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	submissionID, err := uuid.Parse(c.Params("submissionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	sub, err := ctrl.Service.RequestRecheck(c.UserContext(), userID, submissionID)
	if err != nil {
		return mapSubmissionError(c, err, "Failed to request recheck")
	}
	return helper.Success(c, "Recheck requested", dto.ToSubmissionResponse(sub))
}

/* =========================================================
   Error mapping (sentinel -> HTTP)
========================================================= */

func mapSubmissionError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Resource not found")
	case errors.Is(err, service.ErrDuplicateSubmission):
		return helper.Error(c, fiber.StatusConflict, "A submission already exists for this test series")
	case errors.Is(err, service.ErrInvalidReviewTransition):
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Submission cannot be reviewed in its current state")
	case errors.Is(err, service.ErrRecheckNotAllowed):
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Only a reviewed submission can be recheck-requested")
	default:
		log.Printf("[ERROR] %s: %v", fallback, err)
		return helper.Error(c, fiber.StatusInternalServerError, fallback)
	}
}
