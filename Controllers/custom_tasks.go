package Controllers

import (
	"Sentinel/Models"
	"Sentinel/Validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomTaskController handles ad-hoc tasks added for a single date
type CustomTaskController struct {
	DB *gorm.DB
}

func NewCustomTaskController(db *gorm.DB) *CustomTaskController {
	return &CustomTaskController{DB: db}
}

type CustomTaskRequest struct {
	ReportDate       string `json:"report_date" validate:"required,datetime=2006-01-02"`
	Title            string `json:"title" validate:"required"`
	EstimatedMinutes *int   `json:"estimated_minutes" validate:"omitempty,gte=0"`
}

// CreateCustomTask adds an ad-hoc task for one date
func (c *CustomTaskController) CreateCustomTask(ctx *fiber.Ctx) error {
	var req CustomTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errs := Validation.Struct(req); len(errs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	task := Models.CustomTask{
		PublicID:         uuid.NewString(),
		ReportDate:       req.ReportDate,
		Title:            req.Title,
		EstimatedMinutes: req.EstimatedMinutes,
		IsActive:         true,
	}
	if err := c.DB.Create(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create custom task"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(task)
}

// GetCustomTasks lists ad-hoc tasks for a date
func (c *CustomTaskController) GetCustomTasks(ctx *fiber.Ctx) error {
	query := c.DB.Model(&Models.CustomTask{})
	if date := ctx.Query("date"); date != "" {
		query = query.Where("report_date = ?", date)
	}

	var tasks []Models.CustomTask
	if err := query.Order("report_date desc, id").Find(&tasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve custom tasks"})
	}
	return ctx.JSON(tasks)
}

// DeactivateCustomTask retires an ad-hoc task without deleting its history
func (c *CustomTaskController) DeactivateCustomTask(ctx *fiber.Ctx) error {
	publicID := ctx.Params("public_id")

	var task Models.CustomTask
	if err := c.DB.Where("public_id = ?", publicID).First(&task).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Custom task not found"})
	}

	task.IsActive = false
	if err := c.DB.Save(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate custom task"})
	}
	return ctx.JSON(task)
}
