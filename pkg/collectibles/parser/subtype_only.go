package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
	"go.uber.org/zap"
)

// The header row is searched for in rows 1 up to (not including) this row.
const subtypeHeaderSearchEnd = 4

const percentSentinel = "0%"

type subtypeColumn struct {
	subtype models.CollectibleSubtype
	col     int
}

// SubtypeOnlyType parses a sheet of side-by-side subtype columns without
// locations. When only is non-empty, just that subtype's column is parsed and
// the result is a flat list: no subtypes and no subtypeId on items.
func (p *Parser) SubtypeOnlyType(sheet, typeName, typeID, only string) (models.CollectibleType, error) {
	grid, err := p.wb.SheetGrid(sheet)
	if err != nil {
		return models.CollectibleType{}, err
	}

	result := models.CollectibleType{ID: typeID, Name: typeName, Items: []models.CollectibleItem{}}

	headerIdx := findSubtypeHeaderRow(grid)
	if headerIdx < 0 {
		p.log.Warn("could not find header row", zap.String("sheet", sheet))
		return result, nil
	}

	header := grid[headerIdx]
	var columns []subtypeColumn
	for col, value := range header {
		if value == "" || hasCheckbox(value) || value == percentSentinel || strings.TrimSpace(value) == "" {
			continue
		}
		if only != "" && value != only {
			continue
		}
		// Item names sit one column right of the label, unless the label is
		// in the last column.
		itemCol := col
		if col+1 < len(header) {
			itemCol = col + 1
		}
		columns = append(columns, subtypeColumn{
			subtype: models.CollectibleSubtype{ID: ToID(value), Name: value},
			col:     itemCol,
		})
	}

	for i := headerIdx + 1; i < len(grid); i++ {
		if isBlankRow(grid[i]) {
			continue
		}
		for _, c := range columns {
			value := StripCheckboxPrefix(cell(grid, i, c.col))
			if value == "" {
				continue
			}
			item := models.CollectibleItem{ID: ToID(value), Name: value}
			if only == "" {
				item.SubtypeID = c.subtype.ID
			}
			result.Items = append(result.Items, newItem(item))
		}
	}

	if only == "" && len(columns) > 0 {
		result.Subtypes = make([]models.CollectibleSubtype, len(columns))
		for i, c := range columns {
			result.Subtypes[i] = c.subtype
		}
	}
	return result, nil
}

// findSubtypeHeaderRow returns the first row in [1, subtypeHeaderSearchEnd)
// holding a label-like cell: longer than two characters, not a checkbox value
// and not the "0%" progress sentinel.
func findSubtypeHeaderRow(grid [][]string) int {
	end := subtypeHeaderSearchEnd
	if len(grid) < end {
		end = len(grid)
	}
	for i := 1; i < end; i++ {
		for _, value := range grid[i] {
			if value == "" || hasCheckbox(value) {
				continue
			}
			if utf8.RuneCountInString(value) > 2 && value != percentSentinel {
				return i
			}
		}
	}
	return -1
}
