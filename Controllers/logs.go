package Controllers

import (
	"bufio"
	"encoding/json"
	"os"
	"strconv"

	"Sentinel/middleware"

	"github.com/gofiber/fiber/v2"
)

const requestLogPath = "logs/requests.log"

func readLogLines(path string) ([]middleware.LogData, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []middleware.LogData
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var entry middleware.LogData
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}

// GetLogs returns the most recent request log entries, optionally filtered
// by path substring and user id.
func GetLogs(c *fiber.Ctx) error {
	entries, err := readLogLines(requestLogPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read logs"})
	}

	path := c.Query("path")
	userID, _ := strconv.Atoi(c.Query("user_id"))

	filtered := make([]middleware.LogData, 0, len(entries))
	for _, entry := range entries {
		if path != "" && entry.Path != path {
			continue
		}
		if userID != 0 && entry.UserID != uint(userID) {
			continue
		}
		filtered = append(filtered, entry)
	}

	limit := 200
	if q, err := strconv.Atoi(c.Query("limit")); err == nil && q > 0 && q < limit {
		limit = q
	}
	if len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}

	return c.JSON(fiber.Map{
		"count": len(filtered),
		"logs":  filtered,
	})
}

// GetLogStats summarizes request counts and error rates per path.
func GetLogStats(c *fiber.Ctx) error {
	entries, err := readLogLines(requestLogPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read logs"})
	}

	type pathStat struct {
		Count   int   `json:"count"`
		Errors  int   `json:"errors"`
		TotalMs int64 `json:"total_ms"`
	}
	stats := make(map[string]*pathStat)
	for _, entry := range entries {
		stat, ok := stats[entry.Path]
		if !ok {
			stat = &pathStat{}
			stats[entry.Path] = stat
		}
		stat.Count++
		stat.TotalMs += entry.LatencyMs
		if entry.Status >= 400 {
			stat.Errors++
		}
	}

	return c.JSON(fiber.Map{
		"total": len(entries),
		"paths": stats,
	})
}
