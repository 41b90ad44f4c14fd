package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// columnRef returns the spreadsheet column reference for a zero-based
// index ("A", "B", ... "AA", ...).
func columnRef(i int) string {
	name, _ := excelize.ColumnNumberToName(i + 1)
	return name
}

// GenerateReportExcel creates a spreadsheet from report columns and rows.
// Rows are written in the order given, which is the caller's current
// post-filter/sort order; nothing is re-sorted here. Headers use the
// columns' human-readable labels, not the internal keys.
func GenerateReportExcel(title string, cols []ReportColumn, rows []ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names cap at 31 chars.
	sheetName := title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Report"
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	lastCol := columnRef(len(cols) - 1)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 10},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F3A5F"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	// Row 1: merged title.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// Row 3: column headers.
	for i, c := range cols {
		f.SetCellValue(sheetName, columnRef(i)+"3", c.Label)
		width := float64(14)
		if c.Kind == FieldText {
			width = 20
		}
		if err := f.SetColWidth(sheetName, columnRef(i), columnRef(i), width); err != nil {
			return nil, fmt.Errorf("set col width: %w", err)
		}
	}
	f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	// Data rows from row 4, preserving the given order.
	for ri, r := range rows {
		rowNum := fmt.Sprintf("%d", 4+ri)
		for ci, c := range cols {
			cell := columnRef(ci) + rowNum
			v := r.Cells[c.Key]
			switch {
			case v == nil:
				// storage nulls stay empty cells
			case c.Kind == FieldNumber:
				if fv, ok := toFloat(v); ok {
					f.SetCellValue(sheetName, cell, fv)
				} else {
					f.SetCellValue(sheetName, cell, sanitizeExcelCell(stringCell(v)))
				}
			default:
				f.SetCellValue(sheetName, cell, sanitizeExcelCell(stringCell(v)))
			}
		}
		f.SetCellStyle(sheetName, "A"+rowNum, lastCol+rowNum, cellStyle)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous
// leading characters with a single quote. Cells starting with =, +, -, @,
// \t or \r are interpreted as formulas by spreadsheet software.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
