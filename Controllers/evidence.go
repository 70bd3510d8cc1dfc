package Controllers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"Sentinel/Models"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EvidenceController handles proof photos staff attach to completed tasks
type EvidenceController struct {
	DB *gorm.DB
}

func NewEvidenceController(db *gorm.DB) *EvidenceController {
	return &EvidenceController{DB: db}
}

const evidenceDir = "uploads/evidence"

// Upload accepts a multipart photo for (date, task), normalizes it and
// stores the processed copy. Phone uploads come in huge; everything is
// resized down and re-encoded before it touches disk permanently.
func (c *EvidenceController) Upload(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}

	reportDate := ctx.FormValue("report_date")
	taskID := ctx.Params("task_id")
	if _, err := time.ParseInLocation("2006-01-02", reportDate, time.Local); err != nil || taskID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "report_date and task_id are required"})
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "photo file is required"})
	}

	if err := os.MkdirAll(evidenceDir, 0755); err != nil {
		log.Printf("Error creating evidence directory: %v\n", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
	}

	tempPath := filepath.Join(evidenceDir, fmt.Sprintf("tmp_%d_%s", user.ID, fileHeader.Filename))
	if err := ctx.SaveFile(fileHeader, tempPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
	}
	defer os.Remove(tempPath)

	img, err := imaging.Open(tempPath, imaging.AutoOrientation(true))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is not a readable image"})
	}

	// Cap width at 1280, keep aspect ratio, sharpen slightly after downscale
	if img.Bounds().Dx() > 1280 {
		img = imaging.Resize(img, 1280, 0, imaging.Lanczos)
		img = imaging.Sharpen(img, 1.0)
	}

	finalPath := filepath.Join(evidenceDir,
		fmt.Sprintf("%d_%s_%s_%d.jpg", user.ID, reportDate, sanitizeTaskID(taskID), time.Now().Unix()))
	if err := imaging.Save(img, finalPath, imaging.JPEGQuality(85)); err != nil {
		log.Printf("Failed to save image: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
	}

	photo := Models.EvidencePhoto{
		UserID:     user.ID,
		ReportDate: reportDate,
		TaskID:     taskID,
		Path:       finalPath,
	}
	if err := c.DB.Create(&photo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record photo"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(photo)
}

// GetEvidence lists photos for a user/date
func (c *EvidenceController) GetEvidence(ctx *fiber.Ctx) error {
	query := c.DB.Model(&Models.EvidencePhoto{})
	if userID := ctx.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if date := ctx.Query("date"); date != "" {
		query = query.Where("report_date = ?", date)
	}

	var photos []Models.EvidencePhoto
	if err := query.Order("id desc").Find(&photos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve photos"})
	}
	return ctx.JSON(photos)
}

// sanitizeTaskID makes a task id safe to embed in a filename
func sanitizeTaskID(taskID string) string {
	out := make([]rune, 0, len(taskID))
	for _, r := range taskID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
