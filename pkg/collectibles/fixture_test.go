package collectibles_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

var fixtureLocations = []models.Location{
	{
		ID:   "hogwarts",
		Name: "Hogwarts",
		Sublocations: []models.Sublocation{
			{ID: "the-library", Name: "The Library"},
			{ID: "astronomy-wing", Name: "Astronomy Wing"},
		},
	},
	{ID: "hogsmeade", Name: "Hogsmeade"},
	{
		ID:   "the-highlands",
		Name: "The Highlands",
		Sublocations: []models.Sublocation{
			{ID: "north-hogwarts-region", Name: "North Hogwarts Region"},
			{ID: "north-ford-bog", Name: "North Ford Bog"},
		},
	},
}

// fixtureSheets holds a minimal but complete copy of every sheet layout.
// Sparse rows are keyed by 0-based row index.
func fixtureSheets() map[string]map[int][]string {
	simple := func(title, place, first, second string) map[int][]string {
		return map[int][]string{
			0: {title},
			1: {place},
			2: {"FALSE", first, "First of its kind"},
			3: {"FALSE", second},
		}
	}

	return map[string]map[int][]string{
		"Ancient Magic Hotspots": simple("Ancient Magic Hotspots", "Hogsmeade", "Hotspot North", "Hotspot South"),
		"Astronomy Tables":       simple("Astronomy Tables", "The Library", "Table One", "Table Two"),
		"Balloons":               simple("Balloons", "The Highlands", "Red Balloon", "Blue Balloon"),
		"Butterflies":            simple("Butterflies", "North Ford Bog", "Butterfly A", "Butterfly B"),
		"Daedalian Keys":         simple("Daedalian Keys", "Hogwarts", "1", "#2"),
		"Landing Platforms":      simple("Landing Platforms", "Hogsmeade", "Platform A", "Platform B"),
		"Merlin Trials": {
			0: {"Merlin Trials"},
			1: {"North Hogwarts", "", "", "", "North Ford Bog"},
			2: {"FALSE", "1", "Ignite", "", "FALSE", "2", "Stones"},
		},
		"Field Guide Pages": {
			0: {"Type", "Location", "Sublocation", "Name", "Description"},
			1: {"Revelio", "Hogwarts", "The Library", "Dusty Tome", "On a shelf"},
			2: {"Accio", "Hogsmeade", "", "Signpost"},
		},
		"Demiguise Statues": {
			0: {"Demiguise Statues"},
			1: {"Hogwarts"},
			2: {"FALSE", "Statue One", "Near the door"},
		},
		"Collection Chests": {
			0:  {"Hogwarts - 1"},
			1:  {"Astronomy Wing - 1"},
			2:  {"FALSE", "Under the telescope"},
			15: {"Hogsmeade - 1"},
			16: {"FALSE", "Village chest"},
			22: {"Highlands - 1"},
			23: {"North Ford Bog - 1"},
			24: {"FALSE", "In the bog"},
		},
		"Sheet17": {
			0: {"Additional Appearances"},
			1: {"Hats", "", "Cloaks"},
			2: {"FALSE", "Hat A", "FALSE", "Cloak A"},
		},
		"Beasts, Ingredients, Tools": {
			0: {"Beasts, Ingredients, Tools"},
			1: {"Ingredients", "", "Beasts", "", "Tools"},
			2: {"FALSE", "Mandrake Leaf", "FALSE", "Puffskein", "Rake"},
		},
		"Wand Handles": {
			0: {"Wand Handles"},
			1: {"Handles"},
			2: {"FALSE", "Handle A"},
		},
		"Conjurations": {
			0: {"Conjurations"},
			1: {"Decor"},
			2: {"FALSE", "Chair"},
		},
		"Quests": {
			0: {"Quests"},
			3: {"", "", "", "", "FALSE", "Side Quest A", "", "FALSE", "Assignment A", "Cast Accio", "New spell"},
		},
		"Traits": {
			0: {"Traits"},
			2: {"FALSE", "Trait One"},
		},
		"Enemies": {
			0: {"Enemies"},
			2: {"Dugbog", "", "", "", "", "Trolls"},
			3: {"FALSE", "Dugbog", "Marsh", "", "", "FALSE", "Forest Troll", "Forest"},
		},
		"Brooms": {
			0: {"Brooms"},
			3: {"FALSE", "Broom A", "Shop", "100"},
		},
		"Appearances": {
			0: {"Appearances"},
			2: {"FALSE", "Tunic"},
		},
	}
}

// writeFixture saves the fixture workbook and locations table to a temp dir,
// letting mutate adjust the sheets first.
func writeFixture(t *testing.T, mutate func(map[string]map[int][]string)) (workbookPath, locationsPath string) {
	t.Helper()

	sheets := fixtureSheets()
	if mutate != nil {
		mutate(sheets)
	}

	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet(%q) failed: %v", name, err)
		}
		for rowIdx, row := range rows {
			values := make([]interface{}, len(row))
			for i, v := range row {
				// Checkbox cells are booleans in the real workbook
				if v == "FALSE" {
					values[i] = false
				} else {
					values[i] = v
				}
			}
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName failed: %v", err)
			}
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				t.Fatalf("SetSheetRow(%q, %s) failed: %v", name, cell, err)
			}
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("DeleteSheet failed: %v", err)
	}
	if _, ok := sheets["Merlin Trials"]; ok {
		if err := f.AddComment("Merlin Trials", excelize.Comment{
			Cell:      "C3",
			Author:    "Checklist",
			Paragraph: []excelize.RichTextRun{{Text: "Light the braziers"}},
		}); err != nil {
			t.Fatalf("AddComment failed: %v", err)
		}
	}

	dir := t.TempDir()
	workbookPath = filepath.Join(dir, "collectibles.xlsx")
	if err := f.SaveAs(workbookPath); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}

	data, err := json.Marshal(fixtureLocations)
	if err != nil {
		t.Fatalf("Failed to encode locations: %v", err)
	}
	locationsPath = filepath.Join(dir, "locations.json")
	if err := os.WriteFile(locationsPath, data, 0o644); err != nil {
		t.Fatalf("Failed to write locations: %v", err)
	}
	return workbookPath, locationsPath
}
