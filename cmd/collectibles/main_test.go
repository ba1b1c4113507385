package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/output"
)

const testLocations = `[{"id":"hogsmeade","name":"Hogsmeade"}]`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand(newCommandContext())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-dir", t.TempDir(), "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	locs := writeFile(t, dir, "locations.json", testLocations)

	tests := []struct {
		name    string
		catalog string
		want    string
		wantErr string
	}{
		{
			name:    "valid catalog",
			catalog: `[{"id":"balloons","name":"Balloons","items":[{"id":"red","locationId":"hogsmeade","name":"Red"}]}]`,
			want:    "1 types, 1 items",
		},
		{
			name:    "unknown location",
			catalog: `[{"id":"balloons","name":"Balloons","items":[{"id":"red","locationId":"azkaban","name":"Red"}]}]`,
			want:    `[0].items[0].locationId: unknown location "azkaban"`,
			wantErr: "1 problems found",
		},
		{
			name:    "unknown field",
			catalog: `[{"id":"balloons","name":"Balloons","items":[],"color":"red"}]`,
			wantErr: "unknown field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "catalog.json", tt.catalog)

			out, err := runCommand(t, "validate", path, "--locations", locs)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestMigrateProfileCommand(t *testing.T) {
	dir := t.TempDir()
	catalog := writeFile(t, dir, "catalog.json",
		`[{"id":"balloons","name":"Balloons","items":[{"id":"red","name":"Red"}]}]`)
	exported := writeFile(t, dir, "profile.json",
		`{"version":1,"playerName":"Sebastian","playerHouse":"Slytherin","completedItems":{"red":true,"ghost":true},"lastUpdated":"2023-02-10T12:00:00+00:00"}`)

	out, err := runCommand(t, "migrate-profile", exported, "--catalog", catalog)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": 2,
		"player": {"name": "Sebastian", "house": "Slytherin"},
		"completedItems": {"balloons": {"red": true}},
		"lastUpdated": "2023-02-10T12:00:00+00:00"
	}`, out)

	unknown := writeFile(t, dir, "future.json", `{"version":9}`)
	_, err = runCommand(t, "migrate-profile", unknown, "--catalog", catalog)
	assert.ErrorContains(t, err, "version")
}

func TestInspectCommand(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Balloons"))
	require.NoError(t, f.SetCellValue("Balloons", "A1", "Balloons"))
	require.NoError(t, f.SetCellValue("Balloons", "B2", "Red Balloon"))
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	out, err := runCommand(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Balloons")
	assert.Contains(t, out, "A1:B2")
}

func TestStringFlag(t *testing.T) {
	cmd := newValidateCommand(newCommandContext())
	assert.Equal(t, "config.json", stringFlag(cmd, "locations", "", "config.json"))

	require.NoError(t, cmd.Flags().Set("locations", "flag.json"))
	assert.Equal(t, "flag.json", stringFlag(cmd, "locations", "flag.json", "config.json"))
}

var workbookSheets = []string{
	"Ancient Magic Hotspots", "Astronomy Tables", "Balloons", "Butterflies", "Daedalian Keys",
	"Landing Platforms", "Merlin Trials", "Field Guide Pages", "Demiguise Statues", "Collection Chests",
	"Sheet17", "Beasts, Ingredients, Tools", "Wand Handles", "Conjurations", "Quests", "Traits",
	"Enemies", "Brooms", "Appearances",
}

// writeWorkbook saves a workbook holding every category sheet with only a
// title row, plus the same cosmetic listed under two Appearances subtypes.
func writeWorkbook(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for _, name := range workbookSheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(name, "A1", name))
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))
	require.NoError(t, f.SetSheetRow("Appearances", "A3", &[]interface{}{false, "Tunic", "", false, "Tunic"}))

	path := filepath.Join(dir, "collectibles.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseCommand_SkipValidation(t *testing.T) {
	dir := t.TempDir()
	workbook := writeWorkbook(t, dir)
	locs := writeFile(t, dir, "locations.json", testLocations)

	_, err := runCommand(t, "parse", workbook, "--locations", locs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog")
	assert.Contains(t, err.Error(), `duplicate item id "tunic"`)

	out, err := runCommand(t, "parse", workbook, "--locations", locs, "--skip-validation")
	require.NoError(t, err)

	catalog, err := output.ReadCatalog(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, catalog, 22)
	appearances, ok := catalog.Find("appearances")
	require.True(t, ok)
	require.Len(t, appearances.Items, 2)
	assert.Equal(t, "challenges", appearances.Items[0].SubtypeID)
	assert.Equal(t, "quests", appearances.Items[1].SubtypeID)
}

func TestParseCommand_WritesArtifact(t *testing.T) {
	dir := t.TempDir()
	workbook := writeWorkbook(t, dir)
	locs := writeFile(t, dir, "locations.json", testLocations)
	artifact := filepath.Join(dir, "data", "collectibles.json")

	_, err := runCommand(t, "parse", workbook, "--locations", locs, "--skip-validation", "-o", artifact)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(artifact))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "collectibles.json", entries[0].Name())
}
