package parser

import "github.com/ukaji3/collectibles-go/pkg/collectibles/models"

const broomsSheet = "Brooms"

type broomColumns struct {
	subtype models.CollectibleSubtype
	nameCol int
	fromCol int
	costCol int
}

// Row 1 holds the region titles and row 2 the column labels; data starts at
// row 3. Vendor brooms occupy columns 0-3, challenge brooms 5-8.
var broomRegions = []broomColumns{
	{subtype: models.CollectibleSubtype{ID: "vendor", Name: "Vendor"}, nameCol: 1, fromCol: 2, costCol: 3},
	{subtype: models.CollectibleSubtype{ID: "challenges", Name: "Challenges"}, nameCol: 6, fromCol: 7, costCol: 8},
}

// Brooms parses the vendor and challenge regions, which share rows.
func (p *Parser) Brooms() (models.CollectibleType, error) {
	grid, err := p.wb.SheetGrid(broomsSheet)
	if err != nil {
		return models.CollectibleType{}, err
	}

	items := []models.CollectibleItem{}
	for i := 3; i < len(grid); i++ {
		if isBlankRow(grid[i]) {
			continue
		}
		for _, r := range broomRegions {
			name := StripCheckboxPrefix(cell(grid, i, r.nameCol))
			if name == "" {
				continue
			}
			items = append(items, newItem(models.CollectibleItem{
				ID:        ToID(name),
				SubtypeID: r.subtype.ID,
				Name:      name,
				Description: labeledLines(
					[2]string{"From", cell(grid, i, r.fromCol)},
					[2]string{"Cost", cell(grid, i, r.costCol)},
				),
			}))
		}
	}

	subtypes := make([]models.CollectibleSubtype, len(broomRegions))
	for i, r := range broomRegions {
		subtypes[i] = r.subtype
	}
	return models.CollectibleType{ID: "brooms", Name: "Brooms", Subtypes: subtypes, Items: items}, nil
}
