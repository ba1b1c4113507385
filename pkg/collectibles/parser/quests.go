package parser

import "github.com/ukaji3/collectibles-go/pkg/collectibles/models"

const questsSheet = "Quests"

// Cell ranges of the Quests sheet (0-based rows, inclusive): side quests in
// F4:F61, assignments in I4:K14.
const (
	sideQuestFirstRow    = 3
	sideQuestLastRow     = 60
	sideQuestNameCol     = 5
	assignmentFirstRow   = 3
	assignmentLastRow    = 13
	assignmentNameCol    = 8
	assignmentRequireCol = 9
	assignmentRewardCol  = 10
)

// Quests parses the side quest and assignment ranges into two subtypes.
func (p *Parser) Quests() (models.CollectibleType, error) {
	grid, err := p.wb.SheetGrid(questsSheet)
	if err != nil {
		return models.CollectibleType{}, err
	}

	items := []models.CollectibleItem{}
	for i := sideQuestFirstRow; i <= sideQuestLastRow; i++ {
		name := StripCheckboxPrefix(cell(grid, i, sideQuestNameCol))
		if name == "" || name == "Quest Name" {
			continue
		}
		items = append(items, newItem(models.CollectibleItem{
			ID:        ToID(name),
			SubtypeID: "side-quests",
			Name:      name,
		}))
	}

	for i := assignmentFirstRow; i <= assignmentLastRow; i++ {
		name := StripCheckboxPrefix(cell(grid, i, assignmentNameCol))
		if name == "" || name == "Quest Name" {
			continue
		}
		items = append(items, newItem(models.CollectibleItem{
			ID:        ToID(name),
			SubtypeID: "assignments",
			Name:      name,
			Description: labeledLines(
				[2]string{"Requirements", cell(grid, i, assignmentRequireCol)},
				[2]string{"Rewards", cell(grid, i, assignmentRewardCol)},
			),
		}))
	}

	return models.CollectibleType{
		ID:   "quests",
		Name: "Quests",
		Subtypes: []models.CollectibleSubtype{
			{ID: "side-quests", Name: "Side Quests"},
			{ID: "assignments", Name: "Assignments"},
		},
		Items: items,
	}, nil
}
