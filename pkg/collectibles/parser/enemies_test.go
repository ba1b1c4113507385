package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

func enemiesWorkbook() *memWorkbook {
	b := &sheetBuilder{}
	b.set(0, 0, "Enemies")
	b.set(1, 1, "Name").set(1, 2, "Location")
	b.set(2, 0, "FALSE").set(2, 1, "Orphan Enemy")
	b.set(3, 0, "Dugbog")
	b.set(4, 0, "FALSE").set(4, 1, "Dugbog").set(4, 2, "Marshes").set(4, 3, "")
	b.set(5, 0, "FALSE").set(5, 1, "Venomous Dugbog").set(5, 2, "Caves").set(5, 3, "Tomes and Tribulations")
	b.set(6, 0, "0%").set(6, 1, "Infamous Foe")
	b.set(7, 0, "FALSE").set(7, 1, "Name")
	b.set(8, 0, "FALSE").set(8, 1, "Lord of the Manor").set(8, 2, "Manor Cape")
	b.set(9, 0, "#NAME?")
	b.set(10, 0, "Dugbog")
	b.set(11, 0, "FALSE").set(11, 1, "Ancient Dugbog")

	// Ancient magic block to the right
	b.set(2, 5, "Trolls")
	b.set(3, 5, "FALSE").set(3, 6, "Forest Troll").set(3, 7, "Forbidden Forest")
	b.set(4, 5, "0").set(4, 6, "Spiders ").set(4, 7, "")
	b.set(5, 5, "FALSE").set(5, 6, "Giant Spider").set(5, 7, "Cave\r\nentrance")

	wb := newMemWorkbook()
	wb.sheets["Enemies"] = b.rows
	return wb
}

func TestEnemies(t *testing.T) {
	got, err := newTestParser(t, enemiesWorkbook()).Enemies()
	require.NoError(t, err)

	assert.Equal(t, "enemies", got.ID)
	assert.Equal(t, []models.CollectibleSubtype{
		{ID: "dugbog", Name: "Dugbog"},
		{ID: "infamous-foe", Name: "Infamous Foe"},
	}, got.Subtypes)
	assert.Equal(t, []models.CollectibleItem{
		{ID: "dugbog", SubtypeID: "dugbog", Name: "Dugbog", Description: "**Location:** Marshes"},
		{ID: "venomous-dugbog", SubtypeID: "dugbog", Name: "Venomous Dugbog", Description: "**Location:** Caves\n\n**Quest:** Tomes and Tribulations"},
		{ID: "lord-of-the-manor", SubtypeID: "infamous-foe", Name: "Lord of the Manor", Description: "**Location:** Manor Cape"},
		{ID: "ancient-dugbog", SubtypeID: "dugbog", Name: "Ancient Dugbog"},
	}, got.Items)
}

func TestAncientMagicEnemies(t *testing.T) {
	got, err := newTestParser(t, enemiesWorkbook()).AncientMagicEnemies()
	require.NoError(t, err)

	assert.Equal(t, "ancient-magic-enemies", got.ID)
	assert.Equal(t, []models.CollectibleSubtype{
		{ID: "trolls", Name: "Trolls"},
		{ID: "spiders", Name: "Spiders"},
	}, got.Subtypes)
	assert.Equal(t, []models.CollectibleItem{
		{ID: "forest-troll", SubtypeID: "trolls", Name: "Forest Troll", Description: "Forbidden Forest"},
		{ID: "giant-spider", SubtypeID: "spiders", Name: "Giant Spider", Description: "Cave\nentrance"},
	}, got.Items)
}

func TestEnemySubtypeHeader(t *testing.T) {
	tests := []struct {
		name  string
		row   []string
		label string
		ok    bool
	}{
		{"Bare label", []string{"Dugbog", ""}, "Dugbog", true},
		{"Percent sentinel", []string{"0%", "Infamous Foe", ""}, "Infamous Foe", true},
		{"Zero sentinel", []string{"0", " Trolls ", ""}, "Trolls", true},
		{"Item row", []string{"FALSE", "Dugbog", "Marsh"}, "", false},
		{"Label with data", []string{"Dugbog", "Marsh"}, "", false},
		{"Sentinel with data", []string{"0%", "Foe", "Somewhere"}, "", false},
		{"Formula error", []string{"#NAME?", ""}, "", false},
		{"Empty", []string{"", ""}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := enemySubtypeHeader([][]string{tt.row}, 0, 0)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.label, label)
		})
	}
}
