package profile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/profile"
)

var catalog = models.Catalog{
	{ID: "daedalian-keys", Name: "Daedalian Keys", Items: []models.CollectibleItem{{ID: "1", Name: "#1"}, {ID: "2", Name: "#2"}}},
	{ID: "merlin-trials", Name: "Merlin Trials", Items: []models.CollectibleItem{{ID: "1", Name: "#1"}}},
	{ID: "balloons", Name: "Balloons", Items: []models.CollectibleItem{{ID: "red", Name: "Red"}}},
}

func TestMigrate_VersionOne(t *testing.T) {
	data := []byte(`{
		"version": 1,
		"playerName": "Ada",
		"playerHouse": "Gryffindor",
		"completedItems": {"1": true, "red": false, "ghost": true},
		"lastUpdated": "2024-01-02T03:04:05Z"
	}`)

	got, err := profile.MigrateJSON(data, catalog)
	require.NoError(t, err)

	want := &models.PlayerProfile{
		Version: 2,
		Player:  models.PlayerInformation{Name: "Ada", House: models.HouseGryffindor},
		CompletedItems: models.CompletedItems{
			"daedalian-keys": {"1": true},
			"merlin-trials":  {"1": true},
		},
		LastUpdated: "2024-01-02T03:04:05Z",
	}
	assert.Equal(t, want, got)
	assert.NoError(t, got.Validate())
}

func TestMigrate_VersionZero(t *testing.T) {
	data := []byte(`{
		"version": 0,
		"player": {"name": "Bo", "house": "Slytherin", "profilePicture": "data:image/png;base64,AAAA"},
		"completedItems": {"red": true},
		"lastUpdated": "2024-01-02T03:04:05+01:00"
	}`)

	got, err := profile.MigrateJSON(data, catalog)
	require.NoError(t, err)

	assert.Equal(t, 2, got.Version)
	assert.Equal(t, "data:image/png;base64,AAAA", got.Player.ProfilePicture)
	assert.Equal(t, models.CompletedItems{"balloons": {"red": true}}, got.CompletedItems)
}

func TestMigrate_CurrentVersion(t *testing.T) {
	data := []byte(`{
		"version": 2,
		"player": {"name": "Cy", "house": "Ravenclaw"},
		"completedItems": {"balloons": {"red": true}},
		"lastUpdated": "2024-01-02T03:04:05Z"
	}`)

	got, err := profile.MigrateJSON(data, catalog)
	require.NoError(t, err)
	assert.True(t, got.CompletedItems.IsCompleted("balloons", "red"))
	assert.NoError(t, got.Validate())
}

func TestMigrate_EmptyCompletedItems(t *testing.T) {
	data := []byte(`{"version": 2, "player": {"name": "Cy", "house": "Ravenclaw"}, "lastUpdated": "2024-01-02T03:04:05Z"}`)

	got, err := profile.MigrateJSON(data, catalog)
	require.NoError(t, err)
	assert.NotNil(t, got.CompletedItems)
}

func TestMigrate_InvalidVersion(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Future version", `{"version": 3}`},
		{"String version", `{"version": "2"}`},
		{"Missing version", `{"playerName": "Ada"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := profile.MigrateJSON([]byte(tt.data), catalog)

			var invalid *profile.InvalidVersionError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.ErrorIs(t, err, profile.ErrInvalidVersion)
		})
	}
}

func TestParseImported_Malformed(t *testing.T) {
	_, err := profile.ParseImported([]byte(`not json`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, profile.ErrInvalidVersion)

	imported, err := profile.ParseImported([]byte(`{"version": 1}`))
	require.NoError(t, err)
	assert.Equal(t, "1", imported.Version())
}
