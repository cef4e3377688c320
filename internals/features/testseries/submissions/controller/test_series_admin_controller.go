// file: internals/features/testseries/submissions/controller/test_series_admin_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tayari_backend/internals/features/testseries/submissions/dto"
	"tayari_backend/internals/features/testseries/submissions/model"
	helper "tayari_backend/internals/helpers"
)

type TestSeriesAdminController struct {
	DB *gorm.DB
}

func NewTestSeriesAdminController(db *gorm.DB) *TestSeriesAdminController {
	return &TestSeriesAdminController{DB: db}
}

// =============================
// ➕ Create a test series
// POST /test-series
// =============================
func (ctrl *TestSeriesAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateTestSeriesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	series := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(series).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create test series")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Test series created", dto.ToTestSeriesResponse(series))
}

// =============================
// 📄 List test series
// GET /test-series
// =============================
func (ctrl *TestSeriesAdminController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.TestSeriesModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count test series")
	}

	var rows []model.TestSeriesModel
	if err := q.Order("test_series_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch test series")
	}

	items := make([]dto.TestSeriesResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.ToTestSeriesResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(total, p, len(items)),
	})
}
