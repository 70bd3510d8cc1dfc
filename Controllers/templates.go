package Controllers

import (
	"strconv"

	"Sentinel/Models"
	"Sentinel/Validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TemplateController handles task template CRUD
type TemplateController struct {
	DB *gorm.DB
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{DB: db}
}

type TemplateRequest struct {
	Title            string   `json:"title" validate:"required"`
	ScheduleDays     []string `json:"schedule_days" validate:"required,min=1,dive,oneof=mon tue wed thu fri sat sun"`
	SortOrder        int      `json:"sort_order" validate:"gte=0"`
	EstimatedMinutes *int     `json:"estimated_minutes" validate:"omitempty,gte=0"`
}

// GetTemplates retrieves all task templates ordered by day sequence
func (c *TemplateController) GetTemplates(ctx *fiber.Ctx) error {
	var templates []Models.TaskTemplate
	if err := c.DB.Order("sort_order, id").Find(&templates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve templates"})
	}
	return ctx.JSON(templates)
}

// GetTemplate retrieves a single template by ID
func (c *TemplateController) GetTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	var template Models.TaskTemplate
	if err := c.DB.First(&template, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}
	return ctx.JSON(template)
}

// CreateTemplate creates a new task template
func (c *TemplateController) CreateTemplate(ctx *fiber.Ctx) error {
	var req TemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errs := Validation.Struct(req); len(errs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	template := Models.TaskTemplate{
		Title:            req.Title,
		SortOrder:        req.SortOrder,
		EstimatedMinutes: req.EstimatedMinutes,
		ScheduleDays:     req.ScheduleDays,
	}
	if err := template.EncodeScheduleDays(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid schedule days"})
	}

	if err := c.DB.Create(&template).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create template"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(template)
}

// UpdateTemplate updates an existing template
func (c *TemplateController) UpdateTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	var template Models.TaskTemplate
	if err := c.DB.First(&template, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}

	var req TemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errs := Validation.Struct(req); len(errs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	template.Title = req.Title
	template.SortOrder = req.SortOrder
	template.EstimatedMinutes = req.EstimatedMinutes
	template.ScheduleDays = req.ScheduleDays
	if err := template.EncodeScheduleDays(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid schedule days"})
	}

	if err := c.DB.Save(&template).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update template"})
	}
	return ctx.JSON(template)
}

// DeleteTemplate soft-deletes a template
func (c *TemplateController) DeleteTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	if err := c.DB.Delete(&Models.TaskTemplate{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete template"})
	}
	return ctx.JSON(fiber.Map{"message": "Template deleted"})
}
