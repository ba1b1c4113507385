package parser

import (
	"strings"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/locations"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
	"go.uber.org/zap"
)

// SimpleLocationType parses a sheet of alternating place headers and
// checkbox item rows. Items inherit the most recent header's location.
//
// Layout: row 0 is a title row. Column 0 holds either a place name (header)
// or the checkbox; column 1 the item name; column 2 the description.
func (p *Parser) SimpleLocationType(sheet, typeName, typeID string) (models.CollectibleType, error) {
	grid, err := p.wb.SheetGrid(sheet)
	if err != nil {
		return models.CollectibleType{}, err
	}

	items := []models.CollectibleItem{}
	var current locations.Resolution

	for i := 1; i < len(grid); i++ {
		row := grid[i]
		if cell(grid, i, 0) == "" && cell(grid, i, 1) == "" {
			continue
		}

		first := strings.TrimSpace(row[0])
		if first != "" && !hasCheckbox(first) {
			if resolved := p.res.ResolveLocationOrSublocation(first); resolved.Resolved() {
				current = resolved
				continue
			}
		}

		name := StripCheckboxPrefix(cell(grid, i, 1))
		if name == "" {
			continue
		}
		if isHeaderLabel(name, "Name", "Location", "Instruction") {
			continue
		}

		id, display := numberedName(name)
		items = append(items, newItem(models.CollectibleItem{
			ID:            id,
			LocationID:    current.LocationID,
			SublocationID: current.SublocationID,
			Name:          display,
			Description:   StripCheckboxPrefix(cell(grid, i, 2)),
		}))
	}

	p.log.Debug("parsed simple location type", zap.String("sheet", sheet), zap.Int("items", len(items)))
	return models.CollectibleType{ID: typeID, Name: typeName, Items: items}, nil
}
