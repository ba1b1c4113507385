package parser

import "github.com/ukaji3/collectibles-go/pkg/collectibles/models"

const traitsSheet = "Traits"

type traitColumn struct {
	subtype models.CollectibleSubtype
	col     int
	reqCol  int // -1 when the subtype has no requirement column
}

var traitColumns = []traitColumn{
	{subtype: models.CollectibleSubtype{ID: "exploration", Name: "Exploration"}, col: 1, reqCol: -1},
	{subtype: models.CollectibleSubtype{ID: "challenges", Name: "Challenges"}, col: 4, reqCol: 5},
	{subtype: models.CollectibleSubtype{ID: "quests", Name: "Quests"}, col: 8, reqCol: -1},
}

// Traits parses three parallel trait columns, one per subtype.
func (p *Parser) Traits() (models.CollectibleType, error) {
	grid, err := p.wb.SheetGrid(traitsSheet)
	if err != nil {
		return models.CollectibleType{}, err
	}

	items := []models.CollectibleItem{}
	for i := 2; i < len(grid); i++ {
		if isBlankRow(grid[i]) {
			continue
		}
		for _, tc := range traitColumns {
			name := StripCheckboxPrefix(cell(grid, i, tc.col))
			if name == "" || isHeaderLabel(name, "Trait", "Challenge") {
				continue
			}
			item := models.CollectibleItem{ID: ToID(name), SubtypeID: tc.subtype.ID, Name: name}
			if tc.reqCol >= 0 {
				item.Description = cell(grid, i, tc.reqCol)
			}
			items = append(items, newItem(item))
		}
	}

	subtypes := make([]models.CollectibleSubtype, len(traitColumns))
	for i, tc := range traitColumns {
		subtypes[i] = tc.subtype
	}
	return models.CollectibleType{ID: "traits", Name: "Traits", Subtypes: subtypes, Items: items}, nil
}
