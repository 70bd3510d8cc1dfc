package Controllers

import (
	"time"

	"Sentinel/Models"
	"Sentinel/Validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CompletionController handles marking tasks complete and undoing it
type CompletionController struct {
	DB *gorm.DB
}

func NewCompletionController(db *gorm.DB) *CompletionController {
	return &CompletionController{DB: db}
}

type CompletionRequest struct {
	UserID     uint   `json:"user_id"`
	ReportDate string `json:"report_date" validate:"required,datetime=2006-01-02"`
	TaskID     string `json:"task_id" validate:"required"`

	// Optional; defaults to now. Managers back-filling completions set it.
	CompletedAt *time.Time `json:"completed_at"`
}

// Complete records a task completion. Staff complete their own tasks; a
// manager may record one on another user's behalf, which is kept visible
// through the source field.
func (c *CompletionController) Complete(ctx *fiber.Ctx) error {
	actor, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}

	var req CompletionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errs := Validation.Struct(req); len(errs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	targetUserID := actor.ID
	source := Models.CompletionSourceStaff
	if req.UserID != 0 && req.UserID != actor.ID {
		if actor.Permission < 2 {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Only managers can complete tasks for others"})
		}
		targetUserID = req.UserID
		source = Models.CompletionSourceManager
	}

	completedAt := time.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	// One completion per (user, date, task); repeat calls refresh it.
	var completion Models.CompletionItem
	result := c.DB.Where("user_id = ? AND report_date = ? AND task_id = ?",
		targetUserID, req.ReportDate, req.TaskID).First(&completion)
	completion.UserID = targetUserID
	completion.ReportDate = req.ReportDate
	completion.TaskID = req.TaskID
	completion.CompletedAt = completedAt
	completion.CompletedBy = actor.Name
	completion.Source = source

	var err error
	if result.Error != nil {
		err = c.DB.Create(&completion).Error
	} else {
		err = c.DB.Save(&completion).Error
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save completion"})
	}
	return ctx.JSON(completion)
}

// Uncomplete removes a completion record
func (c *CompletionController) Uncomplete(ctx *fiber.Ctx) error {
	actor, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}

	var req CompletionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	targetUserID := actor.ID
	if req.UserID != 0 && req.UserID != actor.ID {
		if actor.Permission < 2 {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Only managers can modify others' tasks"})
		}
		targetUserID = req.UserID
	}

	if err := c.DB.Where("user_id = ? AND report_date = ? AND task_id = ?",
		targetUserID, req.ReportDate, req.TaskID).Delete(&Models.CompletionItem{}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove completion"})
	}
	return ctx.JSON(fiber.Map{"message": "Completion removed"})
}

// GetCompletions lists completions for a date range
func (c *CompletionController) GetCompletions(ctx *fiber.Ctx) error {
	query := c.DB.Model(&Models.CompletionItem{})
	if userID := ctx.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if from := ctx.Query("from"); from != "" {
		query = query.Where("report_date >= ?", from)
	}
	if to := ctx.Query("to"); to != "" {
		query = query.Where("report_date <= ?", to)
	}

	var completions []Models.CompletionItem
	if err := query.Order("report_date, completed_at").Find(&completions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve completions"})
	}
	return ctx.JSON(completions)
}
