package parser

import (
	"strings"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

const enemiesSheet = "Enemies"

// enemySection describes one block of the Enemies sheet. Subtype headers are
// read relative to labelCol.
type enemySection struct {
	labelCol    int
	nameCol     int
	locationCol int
	questCol    int // -1 when the section has no quest column
	// labeled renders the description as bold label lines; otherwise the
	// location cell is used verbatim.
	labeled bool
}

var (
	enemiesSection = enemySection{
		labelCol:    0,
		nameCol:     1,
		locationCol: 2,
		questCol:    3,
		labeled:     true,
	}
	ancientMagicEnemiesSection = enemySection{
		labelCol:    5,
		nameCol:     6,
		locationCol: 7,
		questCol:    -1,
	}
)

// Enemies parses the main enemy list.
func (p *Parser) Enemies() (models.CollectibleType, error) {
	return p.parseEnemySection("enemies", "Enemies", enemiesSection)
}

// AncientMagicEnemies parses the ancient magic enemy list that sits to the
// right of the main list on the same sheet.
func (p *Parser) AncientMagicEnemies() (models.CollectibleType, error) {
	return p.parseEnemySection("ancient-magic-enemies", "Ancient Magic Enemies", ancientMagicEnemiesSection)
}

func (p *Parser) parseEnemySection(typeID, typeName string, s enemySection) (models.CollectibleType, error) {
	grid, err := p.wb.SheetGrid(enemiesSheet)
	if err != nil {
		return models.CollectibleType{}, err
	}

	items := []models.CollectibleItem{}
	var subtypes []models.CollectibleSubtype
	var current *models.CollectibleSubtype

	for i := 2; i < len(grid); i++ {
		if label, ok := enemySubtypeHeader(grid, i, s.labelCol); ok {
			st := models.CollectibleSubtype{ID: ToID(label), Name: label}
			if !containsSubtype(subtypes, st.ID) {
				subtypes = append(subtypes, st)
			}
			current = &st
			continue
		}

		name := StripCheckboxPrefix(cell(grid, i, s.nameCol))
		if name == "" || name == "Name" || current == nil {
			continue
		}

		location := cell(grid, i, s.locationCol)
		description := location
		if s.labeled {
			quest := ""
			if s.questCol >= 0 {
				quest = cell(grid, i, s.questCol)
			}
			description = labeledLines(
				[2]string{"Location", location},
				[2]string{"Quest", quest},
			)
		}

		items = append(items, newItem(models.CollectibleItem{
			ID:          ToID(name),
			SubtypeID:   current.ID,
			Name:        name,
			Description: description,
		}))
	}

	return models.CollectibleType{ID: typeID, Name: typeName, Subtypes: subtypes, Items: items}, nil
}

// enemySubtypeHeader detects a subtype header row. Two shapes occur:
//   - a bare label at col with the next column empty ("Dugbog")
//   - a "0%" or "0" progress cell at col, the label at col+1 and col+2 empty
//     ("Infamous Foe")
func enemySubtypeHeader(grid [][]string, row, col int) (string, bool) {
	first := cell(grid, row, col)
	second := cell(grid, row, col+1)

	isProgress := first == percentSentinel || first == "0"
	switch {
	case first != "" && !hasCheckbox(first) && !isProgress && first != "#NAME?" && second == "":
		return first, true
	case isProgress && second != "" && !hasCheckbox(second) && cell(grid, row, col+2) == "":
		return strings.TrimSpace(second), true
	}
	return "", false
}

func containsSubtype(subtypes []models.CollectibleSubtype, id string) bool {
	for _, st := range subtypes {
		if st.ID == id {
			return true
		}
	}
	return false
}
