// Package parser turns the checklist workbook's sheets into collectible types.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is the grid view of a spreadsheet consumed by the category parsers.
// Rows and columns are 0-based.
type Workbook interface {
	// SheetGrid returns every cell of the sheet as a string. Missing sheets
	// yield a *SheetNotFoundError.
	SheetGrid(sheet string) ([][]string, error)
	// CommentAt returns the text of the first comment attached to the cell.
	CommentAt(sheet string, row, col int) (string, bool)
	// IsMergedAcross reports whether a merge region starts at (row, colStart)
	// and ends at column colEnd.
	IsMergedAcross(sheet string, row, colStart, colEnd int) bool
}

type mergeRange struct {
	startRow, startCol int
	endRow, endCol     int
}

// ExcelWorkbook implements Workbook on top of an excelize file. Comment and
// merge metadata is read once per sheet on first use.
type ExcelWorkbook struct {
	file     *excelize.File
	comments map[string]map[string]string
	merges   map[string][]mergeRange
}

// NewExcelWorkbook wraps an already opened excelize file.
func NewExcelWorkbook(f *excelize.File) *ExcelWorkbook {
	return &ExcelWorkbook{
		file:     f,
		comments: make(map[string]map[string]string),
		merges:   make(map[string][]mergeRange),
	}
}

// OpenWorkbook opens an xlsx file from disk.
func OpenWorkbook(path string) (*ExcelWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return NewExcelWorkbook(f), nil
}

// Close releases the underlying file.
func (w *ExcelWorkbook) Close() error {
	return w.file.Close()
}

// File exposes the underlying excelize file.
func (w *ExcelWorkbook) File() *excelize.File {
	return w.file
}

func (w *ExcelWorkbook) hasSheet(sheet string) bool {
	idx, err := w.file.GetSheetIndex(sheet)
	return err == nil && idx >= 0
}

// SheetGrid returns the sheet as a rectangular grid. Every row is padded to
// the widest row so reads past a row's last value return "". Boolean cells
// come back from excelize as "TRUE"/"FALSE".
func (w *ExcelWorkbook) SheetGrid(sheet string) ([][]string, error) {
	if !w.hasSheet(sheet) {
		return nil, &SheetNotFoundError{Sheet: sheet}
	}
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		var notExist excelize.ErrSheetNotExist
		if errors.As(err, &notExist) {
			return nil, &SheetNotFoundError{Sheet: sheet}
		}
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		grid[i] = padded
	}
	return grid, nil
}

// CommentAt returns the first comment text attached to the cell. A missing
// sheet or unreadable comment part is reported as absent.
func (w *ExcelWorkbook) CommentAt(sheet string, row, col int) (string, bool) {
	comments, ok := w.comments[sheet]
	if !ok {
		comments = w.loadComments(sheet)
		w.comments[sheet] = comments
	}
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", false
	}
	text, ok := comments[cell]
	return text, ok
}

func (w *ExcelWorkbook) loadComments(sheet string) map[string]string {
	result := make(map[string]string)
	if !w.hasSheet(sheet) {
		return result
	}
	comments, err := w.file.GetComments(sheet)
	if err != nil {
		return result
	}
	for _, c := range comments {
		if _, seen := result[c.Cell]; seen {
			continue
		}
		result[c.Cell] = commentText(c)
	}
	return result
}

// commentText prefers the plain text part and falls back to the rich text runs.
func commentText(c excelize.Comment) string {
	if c.Text != "" {
		return c.Text
	}
	var b strings.Builder
	for _, run := range c.Paragraph {
		b.WriteString(run.Text)
	}
	return b.String()
}

// IsMergedAcross reports whether a merged region begins exactly at
// (row, colStart) and ends exactly at column colEnd.
func (w *ExcelWorkbook) IsMergedAcross(sheet string, row, colStart, colEnd int) bool {
	merges, ok := w.merges[sheet]
	if !ok {
		merges = w.loadMerges(sheet)
		w.merges[sheet] = merges
	}
	for _, m := range merges {
		if m.startRow == row && m.startCol == colStart && m.endCol == colEnd {
			return true
		}
	}
	return false
}

func (w *ExcelWorkbook) loadMerges(sheet string) []mergeRange {
	if !w.hasSheet(sheet) {
		return nil
	}
	cells, err := w.file.GetMergeCells(sheet)
	if err != nil {
		return nil
	}
	var result []mergeRange
	for _, mc := range cells {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		result = append(result, mergeRange{
			startRow: startRow - 1,
			startCol: startCol - 1,
			endRow:   endRow - 1,
			endCol:   endCol - 1,
		})
	}
	return result
}

// cell returns grid[row][col], or "" when out of range.
func cell(grid [][]string, row, col int) string {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return ""
	}
	return grid[row][col]
}

// rowAt returns grid[row], or nil when out of range.
func rowAt(grid [][]string, row int) []string {
	if row < 0 || row >= len(grid) {
		return nil
	}
	return grid[row]
}

// isBlankRow reports whether every cell in row is empty or whitespace.
func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
