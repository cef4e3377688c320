// file: internals/features/testseries/submissions/controller/submission_admin_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tayari_backend/internals/features/testseries/submissions/dto"
	"tayari_backend/internals/features/testseries/submissions/model"
	"tayari_backend/internals/features/testseries/submissions/service"
	helper "tayari_backend/internals/helpers"
	middleware "tayari_backend/internals/middlewares/auth"
)

type SubmissionAdminController struct {
	Service *service.SubmissionService
}

func NewSubmissionAdminController(db *gorm.DB) *SubmissionAdminController {
	return &SubmissionAdminController{Service: service.NewSubmissionService(db)}
}

// =============================
// ✅ Review a submission
// PATCH /test-submissions/:submissionId
// =============================
func (ctrl *SubmissionAdminController) Review(c *fiber.Ctx) error {
	reviewerID, err := middleware.UserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	submissionID, err := uuid.Parse(c.Params("submissionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	var req dto.ReviewSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sub, err := ctrl.Service.Review(c.UserContext(), reviewerID, submissionID, req.Score, req.TotalMarks, req.Remarks, req.CheckedFileURL)
	if err != nil {
		return mapSubmissionError(c, err, "Failed to review submission")
	}
	return helper.Success(c, "Submission reviewed", dto.ToSubmissionResponse(sub))
}

// =============================
// 📄 List submissions (grader queue)
// GET /test-submissions?series_id=&status=
// =============================
func (ctrl *SubmissionAdminController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var seriesID *uuid.UUID
	if raw := c.Query("series_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid series_id")
		}
		seriesID = &id
	}

	status := model.ReviewStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid status filter")
	}

	rows, total, err := ctrl.Service.List(c.UserContext(), seriesID, status, p.Offset, p.Limit)
	if err != nil {
		return mapSubmissionError(c, err, "Failed to fetch submissions")
	}

	items := make([]dto.SubmissionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.ToSubmissionResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(total, p, len(items)),
	})
}
