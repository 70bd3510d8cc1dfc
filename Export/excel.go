package Export

import (
	"fmt"

	"Sentinel/Engine"

	"github.com/xuri/excelize/v2"
)

// PerformanceWorkbook renders a window performance aggregate to an xlsx
// workbook: one row per user plus a totals row.
func PerformanceWorkbook(result Engine.PerformanceResult, from, to string) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Performance"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"Staff Member", "Expected Tasks", "Completed Tasks", "Adherence %",
		"Expected Report Days", "Report Days", "Report Coverage %",
		"Quality Expected", "Quality Completed", "Quality Coverage %",
		"Slow Tasks",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	writeRow := func(row int, name string, perf Engine.UserPerformance) {
		values := []interface{}{
			name,
			perf.ExpectedTasks,
			perf.CompletedTasks,
			perf.AdherencePct,
			perf.ExpectedReportDays,
			perf.ReportDays,
			perf.ReportCoveragePct,
			perf.QualityExpected,
			perf.QualityCompleted,
			perf.QualityCoveragePct,
			perf.SlowTasks,
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for rowIndex, perf := range result.Users {
		writeRow(rowIndex+2, perf.UserName, perf)
	}
	totalsRow := len(result.Users) + 2
	writeRow(totalsRow, "Totals", result.Totals)

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		f.SetRowStyle(sheetName, totalsRow, totalsRow, boldStyle)
	}

	for i := range headers {
		column := string('A' + rune(i))
		f.SetColWidth(sheetName, column, column, 18)
	}
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalsRow+2),
		fmt.Sprintf("Window: %s to %s", from, to))

	// Drop the default sheet so the workbook opens on the data
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}
	return f, nil
}
