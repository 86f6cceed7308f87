// Package export writes lesson results to an Excel workbook, one
// sheet per result set.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/locvowork/hr_sql_practice/internal/lesson"
)

// maxSheetName is the sheet name length Excel allows.
const maxSheetName = 31

// Workbook writes the results to an .xlsx file at path. Each result
// becomes one sheet named after its title, with a bold header row.
func Workbook(results []lesson.Result, path string) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, res := range results {
		name := sheetName(i, res.Title)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}

		header := make([]interface{}, len(res.Columns))
		for c, col := range res.Columns {
			header[c] = col
		}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return err
		}
		endCol, err := excelize.ColumnNumberToName(len(res.Columns))
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(name, "A1", endCol+"1", headerStyle); err != nil {
			return err
		}

		for r, row := range res.Rows {
			cells := make([]interface{}, len(row))
			for c, cell := range row {
				cells[c] = cell
			}
			axis, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(name, axis, &cells); err != nil {
				return err
			}
		}
	}

	// Drop the default sheet so the workbook opens on the first result.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// sheetName builds a unique, Excel-safe sheet name from the result
// title: forbidden characters replaced, prefixed with the result
// index, truncated to the 31-character limit.
func sheetName(index int, title string) string {
	replacer := strings.NewReplacer(
		":", "-", "\\", "-", "/", "-", "?", "", "*", "", "[", "(", "]", ")",
	)
	name := fmt.Sprintf("%02d %s", index+1, replacer.Replace(title))
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return strings.TrimSpace(name)
}
