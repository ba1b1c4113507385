package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

const chestsSheet = "Collection Chests"

// Row layout of the Collection Chests sheet (0-based, end exclusive). The
// sheet stacks three sections vertically; Hogsmeade has no sublocation header.
const (
	chestsHogwartsHeaderRow  = 1
	chestsHogwartsFirstRow   = 2
	chestsHogwartsEndRow     = 15
	chestsHogsmeadeFirstRow  = 16
	chestsHogsmeadeEndRow    = 21
	chestsHighlandsHeaderRow = 23
	chestsHighlandsFirstRow  = 24
)

const (
	chestMarker            = "FALSE"
	roomOfRequirementLabel = "Room of Requirement"
	roomOfRequirementNote  = "**Note:** Does not count towards Hogwarts Collection Chests."
)

type chestGroup struct {
	col           int
	locationID    string
	sublocationID string
	label         string
}

// key is the counter key: the sublocation, or the location for groups whose
// header did not resolve.
func (g chestGroup) key() string {
	if g.sublocationID != "" {
		return g.sublocationID
	}
	return g.locationID
}

type chestSection struct {
	locationID string
	headerRow  int // -1 when the section has no sublocation header
	firstRow   int
	endRow     int // -1 for "until the last row"
	// keepUnresolved keeps header groups whose label did not resolve.
	keepUnresolved bool
	aliases        func(label string) (string, bool)
}

// CollectionChests parses the three chest sections. A cell holding exactly
// "FALSE" marks a chest whose description is the cell to its right; chests are
// numbered per sublocation (or per location) starting at 1.
func (p *Parser) CollectionChests() (models.CollectibleType, error) {
	grid, err := p.wb.SheetGrid(chestsSheet)
	if err != nil {
		return models.CollectibleType{}, err
	}

	sections := []chestSection{
		{
			locationID:     "hogwarts",
			headerRow:      chestsHogwartsHeaderRow,
			firstRow:       chestsHogwartsFirstRow,
			endRow:         chestsHogwartsEndRow,
			keepUnresolved: true,
			aliases:        hogwartsChestAlias,
		},
		{
			locationID: "hogsmeade",
			headerRow:  -1,
			firstRow:   chestsHogsmeadeFirstRow,
			endRow:     chestsHogsmeadeEndRow,
		},
		{
			locationID: "the-highlands",
			headerRow:  chestsHighlandsHeaderRow,
			firstRow:   chestsHighlandsFirstRow,
			endRow:     -1,
		},
	}

	items := []models.CollectibleItem{}
	counters := make(map[string]int)
	for _, section := range sections {
		items = p.parseChestSection(grid, section, counters, items)
	}

	return models.CollectibleType{ID: "collection-chests", Name: "Collection Chests", Items: items}, nil
}

func (p *Parser) parseChestSection(grid [][]string, s chestSection, counters map[string]int, items []models.CollectibleItem) []models.CollectibleItem {
	var groups []chestGroup
	if s.headerRow >= 0 {
		groups = p.chestGroups(rowAt(grid, s.headerRow), s)
	}

	end := s.endRow
	if end < 0 || end > len(grid) {
		end = len(grid)
	}
	for i := s.firstRow; i < end; i++ {
		row := grid[i]
		for col := range row {
			if row[col] != chestMarker {
				continue
			}
			description := cell(grid, i, col+1)
			if strings.TrimSpace(description) == "" {
				continue
			}

			group := chestGroup{locationID: s.locationID}
			if s.headerRow >= 0 {
				var ok bool
				if group, ok = groupForColumn(groups, col); !ok {
					continue
				}
			}

			key := group.key()
			counters[key]++
			n := counters[key]

			if strings.Contains(group.label, roomOfRequirementLabel) {
				description = roomOfRequirementNote + "\n\n" + description
			}
			items = append(items, newItem(models.CollectibleItem{
				ID:            fmt.Sprintf("%s-%d", key, n),
				LocationID:    group.locationID,
				SublocationID: group.sublocationID,
				Name:          fmt.Sprintf("#%d", n),
				Description:   description,
			}))
		}
	}
	return items
}

// chestGroups maps header cells like "Astronomy Wing - 6" to sublocations.
func (p *Parser) chestGroups(header []string, s chestSection) []chestGroup {
	var groups []chestGroup
	for col, value := range header {
		if value == "" {
			continue
		}
		label := strings.TrimSpace(countSuffix.ReplaceAllString(value, ""))
		if label == "" {
			continue
		}
		id, ok := p.res.ResolveSublocation(s.locationID, label)
		if !ok && s.aliases != nil {
			id, ok = s.aliases(label)
		}
		if !ok && !s.keepUnresolved {
			continue
		}
		groups = append(groups, chestGroup{
			col:           col,
			locationID:    s.locationID,
			sublocationID: id,
			label:         label,
		})
	}
	return groups
}

// groupForColumn returns the group whose column range contains col. A group
// spans from its header column up to the next group's header column.
func groupForColumn(groups []chestGroup, col int) (chestGroup, bool) {
	for g, group := range groups {
		if col < group.col {
			continue
		}
		if g+1 == len(groups) || col < groups[g+1].col {
			return group, true
		}
	}
	return chestGroup{}, false
}

func hogwartsChestAlias(label string) (string, bool) {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "room of requirement"):
		return "room-of-requirement", true
	case lower == "great hall":
		return "the-great-hall", true
	}
	return "", false
}
