package Controllers

import (
	"time"

	"Sentinel/Models"
	"Sentinel/Validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OverrideController handles manager alarm overrides
type OverrideController struct {
	DB *gorm.DB
}

func NewOverrideController(db *gorm.DB) *OverrideController {
	return &OverrideController{DB: db}
}

type OverrideRequest struct {
	UserID     uint   `json:"user_id" validate:"required"`
	ReportDate string `json:"report_date" validate:"required,datetime=2006-01-02"`
	TaskID     string `json:"task_id" validate:"required"`
	IsAlarming *bool  `json:"is_alarming" validate:"required"`
	Reason     string `json:"reason"`
}

// SetOverride records a manager's alarm decision for one task row. The
// automatic classification stays untouched in the computed rows; the
// override only supersedes the final verdict. One override per key,
// resubmission replaces it.
func (c *OverrideController) SetOverride(ctx *fiber.Ctx) error {
	manager, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}

	var req OverrideRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errs := Validation.Struct(req); len(errs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	var override Models.AlertOverride
	result := c.DB.Where("user_id = ? AND report_date = ? AND task_id = ?",
		req.UserID, req.ReportDate, req.TaskID).First(&override)
	override.UserID = req.UserID
	override.ReportDate = req.ReportDate
	override.TaskID = req.TaskID
	override.IsAlarming = *req.IsAlarming
	override.Reason = req.Reason
	override.SetBy = manager.Name
	override.SetAt = time.Now()

	var err error
	if result.Error != nil {
		err = c.DB.Create(&override).Error
	} else {
		err = c.DB.Save(&override).Error
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save override"})
	}
	return ctx.JSON(override)
}

// GetOverrides lists overrides for a date range
func (c *OverrideController) GetOverrides(ctx *fiber.Ctx) error {
	query := c.DB.Model(&Models.AlertOverride{})
	if from := ctx.Query("from"); from != "" {
		query = query.Where("report_date >= ?", from)
	}
	if to := ctx.Query("to"); to != "" {
		query = query.Where("report_date <= ?", to)
	}

	var overrides []Models.AlertOverride
	if err := query.Order("report_date desc, id").Find(&overrides).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve overrides"})
	}
	return ctx.JSON(overrides)
}

// ClearOverride removes an override, restoring the automatic verdict
func (c *OverrideController) ClearOverride(ctx *fiber.Ctx) error {
	var req OverrideRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Where("user_id = ? AND report_date = ? AND task_id = ?",
		req.UserID, req.ReportDate, req.TaskID).Delete(&Models.AlertOverride{}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove override"})
	}
	return ctx.JSON(fiber.Map{"message": "Override removed"})
}
