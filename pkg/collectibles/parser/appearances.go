package parser

import "github.com/ukaji3/collectibles-go/pkg/collectibles/models"

const appearancesSheet = "Appearances"

type appearanceColumn struct {
	subtype models.CollectibleSubtype
	col     int
}

var appearanceColumns = []appearanceColumn{
	{subtype: models.CollectibleSubtype{ID: "challenges", Name: "Challenges"}, col: 1},
	{subtype: models.CollectibleSubtype{ID: "quests", Name: "Quests"}, col: 4},
	{subtype: models.CollectibleSubtype{ID: "additional-content", Name: "Additional Content"}, col: 7},
	{subtype: models.CollectibleSubtype{ID: "exploration", Name: "Exploration"}, col: 10},
}

// Appearances parses four parallel checkbox/name column pairs.
func (p *Parser) Appearances() (models.CollectibleType, error) {
	grid, err := p.wb.SheetGrid(appearancesSheet)
	if err != nil {
		return models.CollectibleType{}, err
	}

	items := []models.CollectibleItem{}
	for i := 2; i < len(grid); i++ {
		if isBlankRow(grid[i]) {
			continue
		}
		for _, ac := range appearanceColumns {
			name := StripCheckboxPrefix(cell(grid, i, ac.col))
			if name == "" {
				continue
			}
			items = append(items, newItem(models.CollectibleItem{
				ID:        ToID(name),
				SubtypeID: ac.subtype.ID,
				Name:      name,
			}))
		}
	}

	subtypes := make([]models.CollectibleSubtype, len(appearanceColumns))
	for i, ac := range appearanceColumns {
		subtypes[i] = ac.subtype
	}
	return models.CollectibleType{ID: "appearances", Name: "Appearances", Subtypes: subtypes, Items: items}, nil
}
