package Controllers

import (
	"Sentinel/Models"
	"Sentinel/Validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RemovalController handles per-day task suppression
type RemovalController struct {
	DB *gorm.DB
}

func NewRemovalController(db *gorm.DB) *RemovalController {
	return &RemovalController{DB: db}
}

type RemovalRequest struct {
	// Zero user id records a global removal under the manager pseudo-user.
	UserID     uint   `json:"user_id"`
	ReportDate string `json:"report_date" validate:"required,datetime=2006-01-02"`
	TaskID     string `json:"task_id" validate:"required"`
	IsRemoved  *bool  `json:"is_removed" validate:"required"`
}

// SetRemoval appends a removal record. Records are never edited in place;
// the engine resolves the log last-write-wins, so re-adding a task is just
// another record with is_removed=false.
func (c *RemovalController) SetRemoval(ctx *fiber.Ctx) error {
	var req RemovalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errs := Validation.Struct(req); len(errs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	removal := Models.TaskRemoval{
		UserID:     req.UserID,
		ReportDate: req.ReportDate,
		TaskID:     req.TaskID,
		IsRemoved:  *req.IsRemoved,
	}
	if err := c.DB.Create(&removal).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save removal"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(removal)
}

// GetRemovals lists removal records for a date range, in write order
func (c *RemovalController) GetRemovals(ctx *fiber.Ctx) error {
	query := c.DB.Model(&Models.TaskRemoval{})
	if from := ctx.Query("from"); from != "" {
		query = query.Where("report_date >= ?", from)
	}
	if to := ctx.Query("to"); to != "" {
		query = query.Where("report_date <= ?", to)
	}

	var removals []Models.TaskRemoval
	if err := query.Order("id").Find(&removals).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve removals"})
	}
	return ctx.JSON(removals)
}
