package parser

import (
	"strings"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

const (
	demiguiseSheet = "Demiguise Statues"
	// Sublocation headers ("The ...") only occur inside the Hogwarts section.
	demiguiseSublocationOwner = "hogwarts"
)

var demiguiseLocations = map[string]bool{
	"Hogwarts":  true,
	"Hogsmeade": true,
	"Highlands": true,
}

// DemiguiseStatues parses statues grouped under location headers and, within
// Hogwarts, "The ..." sublocation headers.
func (p *Parser) DemiguiseStatues() (models.CollectibleType, error) {
	grid, err := p.wb.SheetGrid(demiguiseSheet)
	if err != nil {
		return models.CollectibleType{}, err
	}

	items := []models.CollectibleItem{}
	var locationID, sublocationID string

	for i := 1; i < len(grid); i++ {
		first := cell(grid, i, 0)

		if first != "" && !hasCheckbox(first) && demiguiseLocations[first] {
			locationID, _ = p.res.ResolveLocation(first)
			sublocationID = ""
			continue
		}
		if first != "" && !hasCheckbox(first) && strings.HasPrefix(first, "The ") && cell(grid, i, 1) == "" {
			var ok bool
			if sublocationID, ok = p.res.ResolveSublocation(demiguiseSublocationOwner, first); ok {
				locationID = demiguiseSublocationOwner
			}
			continue
		}

		name := StripCheckboxPrefix(cell(grid, i, 1))
		if name == "" {
			continue
		}
		items = append(items, newItem(models.CollectibleItem{
			ID:            ToID(name),
			LocationID:    locationID,
			SublocationID: sublocationID,
			Name:          name,
			Description:   cell(grid, i, 2),
		}))
	}

	return models.CollectibleType{ID: "demiguise-statues", Name: "Demiguise Statues", Items: items}, nil
}
