package parser

import (
	"strings"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

const (
	merlinSheet       = "Merlin Trials"
	merlinLocationID  = "the-highlands"
	merlinHeaderRow   = 1
	merlinFirstRow    = 2
	merlinGroupWidth  = 4
	merlinNumberShift = 1
	merlinLabelShift  = 2
)

// merlinAliases maps group labels that are regional groupings rather than
// sublocation names in the reference table.
var merlinAliases = map[string]string{
	"north hogwarts": "north-hogwarts-region",
	"south hogwarts": "south-hogwarts-region",
}

type merlinGroup struct {
	col           int
	sublocationID string
}

// MerlinTrials parses the trial grid. Each sublocation owns a group of four
// columns; within a group the trial number sits one column right of the group
// start and the puzzle type two columns right. The puzzle type cell's comment
// is the item description.
func (p *Parser) MerlinTrials() (models.CollectibleType, error) {
	grid, err := p.wb.SheetGrid(merlinSheet)
	if err != nil {
		return models.CollectibleType{}, err
	}

	var groups []merlinGroup
	header := rowAt(grid, merlinHeaderRow)
	for col := 0; col < len(header); col += merlinGroupWidth {
		label := header[col]
		if label == "" {
			continue
		}
		id, ok := p.res.ResolveSublocation(merlinLocationID, label)
		if !ok {
			id, ok = merlinAliases[strings.ToLower(label)]
		}
		if ok {
			groups = append(groups, merlinGroup{col: col, sublocationID: id})
		}
	}

	items := []models.CollectibleItem{}
	var subtypes []models.CollectibleSubtype
	seen := make(map[string]bool)

	for i := merlinFirstRow; i < len(grid); i++ {
		if !hasAnyValue(grid[i]) {
			continue
		}
		for _, g := range groups {
			number := cell(grid, i, g.col+merlinNumberShift)
			label := cell(grid, i, g.col+merlinLabelShift)
			if number == "" || label == "" {
				continue
			}

			subtype := models.CollectibleSubtype{ID: ToID(label), Name: label}
			if !seen[subtype.ID] {
				seen[subtype.ID] = true
				subtypes = append(subtypes, subtype)
			}

			description, _ := p.wb.CommentAt(merlinSheet, i, g.col+merlinLabelShift)
			items = append(items, newItem(models.CollectibleItem{
				ID:            number,
				SubtypeID:     subtype.ID,
				LocationID:    merlinLocationID,
				SublocationID: g.sublocationID,
				Name:          "#" + number,
				Description:   description,
			}))
		}
	}

	return models.CollectibleType{
		ID:       "merlin-trials",
		Name:     "Merlin Trials",
		Subtypes: subtypes,
		Items:    items,
	}, nil
}

func hasAnyValue(row []string) bool {
	for _, c := range row {
		if c != "" {
			return true
		}
	}
	return false
}
