package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetStats summarizes the layout of one sheet. It is used to re-tune the
// positional offsets of the category parsers when the workbook changes.
type SheetStats struct {
	Name string
	// UsedRange is the A1 range spanning every non-empty cell, or "" for an
	// empty sheet.
	UsedRange string
	Rows      int
	Columns   int
	NonEmpty  int
	Merges    int
	Comments  int
}

// Inspect returns layout statistics for every sheet in workbook order.
func (w *ExcelWorkbook) Inspect() ([]SheetStats, error) {
	var stats []SheetStats
	for _, sheet := range w.file.GetSheetList() {
		s, err := w.InspectSheet(sheet)
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// InspectSheet returns layout statistics for one sheet.
func (w *ExcelWorkbook) InspectSheet(sheet string) (SheetStats, error) {
	grid, err := w.SheetGrid(sheet)
	if err != nil {
		return SheetStats{}, err
	}

	stats := SheetStats{Name: sheet, Rows: len(grid)}
	if len(grid) > 0 {
		stats.Columns = len(grid[0])
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(grid)
	if minRow >= 0 {
		start, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
		if err != nil {
			return SheetStats{}, fmt.Errorf("used range of %q: %w", sheet, err)
		}
		end, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
		if err != nil {
			return SheetStats{}, fmt.Errorf("used range of %q: %w", sheet, err)
		}
		stats.UsedRange = start + ":" + end
		stats.NonEmpty = countNonEmptyCells(grid, minRow, maxRow, minCol, maxCol)
	}

	if _, ok := w.merges[sheet]; !ok {
		w.merges[sheet] = w.loadMerges(sheet)
	}
	stats.Merges = len(w.merges[sheet])

	if _, ok := w.comments[sheet]; !ok {
		w.comments[sheet] = w.loadComments(sheet)
	}
	stats.Comments = len(w.comments[sheet])

	return stats, nil
}

// findDataBounds returns the 0-based bounding box of the non-empty cells,
// or -1 for every bound when there are none.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
