package parser

import (
	"fmt"
	"testing"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/locations"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

// memWorkbook is an in-memory Workbook for parser tests.
type memWorkbook struct {
	sheets   map[string][][]string
	comments map[string]string
	merges   map[string]bool
}

func newMemWorkbook() *memWorkbook {
	return &memWorkbook{
		sheets:   make(map[string][][]string),
		comments: make(map[string]string),
		merges:   make(map[string]bool),
	}
}

func (w *memWorkbook) SheetGrid(sheet string) ([][]string, error) {
	rows, ok := w.sheets[sheet]
	if !ok {
		return nil, &SheetNotFoundError{Sheet: sheet}
	}
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	grid := make([][]string, len(rows))
	for i, row := range rows {
		grid[i] = make([]string, width)
		copy(grid[i], row)
	}
	return grid, nil
}

func (w *memWorkbook) CommentAt(sheet string, row, col int) (string, bool) {
	text, ok := w.comments[fmt.Sprintf("%s!%d,%d", sheet, row, col)]
	return text, ok
}

func (w *memWorkbook) IsMergedAcross(sheet string, row, colStart, colEnd int) bool {
	return w.merges[fmt.Sprintf("%s!%d,%d:%d", sheet, row, colStart, colEnd)]
}

func (w *memWorkbook) setComment(sheet string, row, col int, text string) {
	w.comments[fmt.Sprintf("%s!%d,%d", sheet, row, col)] = text
}

// sheetBuilder fills a sparse grid by coordinates.
type sheetBuilder struct {
	rows [][]string
}

func (b *sheetBuilder) set(row, col int, value string) *sheetBuilder {
	for len(b.rows) <= row {
		b.rows = append(b.rows, nil)
	}
	for len(b.rows[row]) <= col {
		b.rows[row] = append(b.rows[row], "")
	}
	b.rows[row][col] = value
	return b
}

var testLocations = []models.Location{
	{
		ID:   "hogwarts",
		Name: "Hogwarts",
		Sublocations: []models.Sublocation{
			{ID: "the-library", Name: "The Library"},
			{ID: "the-great-hall", Name: "The Great Hall"},
			{ID: "room-of-requirement", Name: "The Room of Requirement"},
			{ID: "astronomy-wing", Name: "Astronomy Wing"},
		},
	},
	{ID: "hogsmeade", Name: "Hogsmeade"},
	{
		ID:   "the-highlands",
		Name: "The Highlands",
		Sublocations: []models.Sublocation{
			{ID: "north-hogwarts-region", Name: "North Hogwarts Region"},
			{ID: "south-hogwarts-region", Name: "South Hogwarts Region"},
			{ID: "north-ford-bog", Name: "North Ford Bog"},
			{ID: "feldcroft-region", Name: "Feldcroft Region"},
		},
	},
}

func newTestParser(t *testing.T, wb Workbook) *Parser {
	t.Helper()
	return New(wb, locations.NewResolver(testLocations), nil)
}
