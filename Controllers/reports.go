package Controllers

import (
	"Sentinel/Models"
	"Sentinel/Validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReportController handles shift report submission and lookup
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type ReportRequest struct {
	ReportDate string `json:"report_date" validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Did        string `json:"did"`
	Handover   string `json:"handover"`
}

// SubmitReport creates or replaces the caller's report for a date. One
// report per user per day; resubmission updates in place.
func (c *ReportController) SubmitReport(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}

	var req ReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errs := Validation.Struct(req); len(errs) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	var report Models.ShiftReport
	result := c.DB.Where("user_id = ? AND report_date = ?", user.ID, req.ReportDate).First(&report)
	report.UserID = user.ID
	report.ReportDate = req.ReportDate
	report.StartTime = req.StartTime
	report.EndTime = req.EndTime
	report.Did = req.Did
	report.Handover = req.Handover

	var err error
	if result.Error != nil {
		err = c.DB.Create(&report).Error
	} else {
		err = c.DB.Save(&report).Error
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save report"})
	}
	return ctx.JSON(report)
}

// GetReports lists reports, optionally filtered by user and date range
func (c *ReportController) GetReports(ctx *fiber.Ctx) error {
	query := c.DB.Model(&Models.ShiftReport{})
	if userID := ctx.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if from := ctx.Query("from"); from != "" {
		query = query.Where("report_date >= ?", from)
	}
	if to := ctx.Query("to"); to != "" {
		query = query.Where("report_date <= ?", to)
	}

	var reports []Models.ShiftReport
	if err := query.Order("report_date desc").Find(&reports).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve reports"})
	}
	return ctx.JSON(reports)
}
