package Controllers

import (
	"fmt"
	"strconv"
	"time"

	"Sentinel/Engine"
	"Sentinel/Export"
	"Sentinel/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdherenceController exposes the computed adherence views. It only
// materializes the window's collections and hands them to the engine; it
// never writes anything back.
type AdherenceController struct {
	DB *gorm.DB
}

func NewAdherenceController(db *gorm.DB) *AdherenceController {
	return &AdherenceController{DB: db}
}

// dateKeysBetween expands an inclusive from/to range into day keys.
func dateKeysBetween(from, to string) []string {
	start, err := time.ParseInLocation("2006-01-02", from, time.Local)
	if err != nil {
		return nil
	}
	end, err := time.ParseInLocation("2006-01-02", to, time.Local)
	if err != nil || end.Before(start) {
		return nil
	}

	var keys []string
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		keys = append(keys, day.Format("2006-01-02"))
	}
	return keys
}

func (c *AdherenceController) windowParams(ctx *fiber.Ctx) (string, string, []string, error) {
	to := ctx.Query("to", time.Now().Format("2006-01-02"))
	from := ctx.Query("from")
	if from == "" {
		toDay, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return "", "", nil, fmt.Errorf("invalid to date")
		}
		from = toDay.AddDate(0, 0, -6).Format("2006-01-02")
	}

	keys := dateKeysBetween(from, to)
	if keys == nil {
		return "", "", nil, fmt.Errorf("invalid date range")
	}
	return from, to, keys, nil
}

type windowData struct {
	users       []Models.User
	templates   []Models.TaskTemplate
	completions []Models.CompletionItem
	reports     []Models.ShiftReport
	overrides   []Models.AlertOverride
	customTasks []Models.CustomTask
	removals    []Models.TaskRemoval
}

func (c *AdherenceController) loadWindow(from, to string) (windowData, error) {
	var data windowData
	if err := c.DB.Where("is_active = ?", true).Order("id").Find(&data.users).Error; err != nil {
		return data, err
	}
	if err := c.DB.Find(&data.templates).Error; err != nil {
		return data, err
	}
	if err := c.DB.Where("report_date BETWEEN ? AND ?", from, to).Find(&data.completions).Error; err != nil {
		return data, err
	}
	if err := c.DB.Where("report_date BETWEEN ? AND ?", from, to).Find(&data.reports).Error; err != nil {
		return data, err
	}
	if err := c.DB.Where("report_date BETWEEN ? AND ?", from, to).Find(&data.overrides).Error; err != nil {
		return data, err
	}
	if err := c.DB.Where("report_date BETWEEN ? AND ?", from, to).Find(&data.customTasks).Error; err != nil {
		return data, err
	}
	// Write order matters: the engine resolves the removal log last-write-wins.
	if err := c.DB.Where("report_date BETWEEN ? AND ?", from, to).Order("id").Find(&data.removals).Error; err != nil {
		return data, err
	}
	return data, nil
}

// Rows returns the ordered task delta rows for the window, overrides applied.
func (c *AdherenceController) Rows(ctx *fiber.Ctx) error {
	from, to, keys, err := c.windowParams(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	data, err := c.loadWindow(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load window"})
	}

	warning, _ := strconv.Atoi(ctx.Query("warning_minutes"))
	critical, _ := strconv.Atoi(ctx.Query("critical_minutes"))

	rows := Engine.ComputeDeltaRows(Engine.DeltaInput{
		Users:           data.users,
		Templates:       data.templates,
		Completions:     data.completions,
		Reports:         data.reports,
		Overrides:       data.overrides,
		Removals:        Engine.BuildRemovalSet(data.removals),
		DateKeys:        keys,
		CurrentDateKey:  time.Now().Format("2006-01-02"),
		WarningMinutes:  warning,
		CriticalMinutes: critical,
	})

	return ctx.JSON(fiber.Map{
		"from": from,
		"to":   to,
		"rows": rows,
	})
}

// Daily returns the agenda summary for a single date, keyed by user id.
func (c *AdherenceController) Daily(ctx *fiber.Ctx) error {
	dateKey := ctx.Query("date", time.Now().Format("2006-01-02"))
	if _, err := time.ParseInLocation("2006-01-02", dateKey, time.Local); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
	}

	data, err := c.loadWindow(dateKey, dateKey)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load window"})
	}

	summary := Engine.ComputeDailySummary(Engine.DailyInput{
		DateKey:     dateKey,
		Users:       data.users,
		Templates:   data.templates,
		Completions: data.completions,
		Reports:     data.reports,
		CustomTasks: data.customTasks,
		Removals:    Engine.BuildRemovalSet(data.removals),
		Quality:     Engine.DefaultQualitySet(),
	})

	return ctx.JSON(fiber.Map{
		"date":    dateKey,
		"summary": summary,
	})
}

func (c *AdherenceController) computePerformance(ctx *fiber.Ctx) (string, string, Engine.PerformanceResult, error) {
	from, to, keys, err := c.windowParams(ctx)
	if err != nil {
		return "", "", Engine.PerformanceResult{}, err
	}

	data, err := c.loadWindow(from, to)
	if err != nil {
		return "", "", Engine.PerformanceResult{}, err
	}

	result := Engine.ComputeWindowPerformance(Engine.PerformanceInput{
		DateKeys:    keys,
		Users:       data.users,
		Templates:   data.templates,
		Completions: data.completions,
		Reports:     data.reports,
		Quality:     Engine.DefaultQualitySet(),
	})
	return from, to, result, nil
}

// Performance returns the window aggregate per user plus totals.
func (c *AdherenceController) Performance(ctx *fiber.Ctx) error {
	from, to, result, err := c.computePerformance(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"from":   from,
		"to":     to,
		"users":  result.Users,
		"totals": result.Totals,
	})
}

// ExportPerformance streams the window aggregate as an xlsx workbook.
func (c *AdherenceController) ExportPerformance(ctx *fiber.Ctx) error {
	from, to, result, err := c.computePerformance(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	workbook, err := Export.PerformanceWorkbook(result, from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}
	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render workbook"})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="performance_%s_%s.xlsx"`, from, to))
	return ctx.Send(buffer.Bytes())
}

// History returns the completeness summary of submitted reports.
func (c *AdherenceController) History(ctx *fiber.Ctx) error {
	from, to, _, err := c.windowParams(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	data, err := c.loadWindow(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load window"})
	}

	summaries := Engine.SummarizeReports(Engine.HistoryInput{
		Reports:     data.reports,
		Templates:   data.templates,
		Completions: data.completions,
		CustomTasks: data.customTasks,
		Removals:    Engine.BuildRemovalSet(data.removals),
		Users:       data.users,
	})

	return ctx.JSON(fiber.Map{
		"from":      from,
		"to":        to,
		"summaries": summaries,
	})
}
