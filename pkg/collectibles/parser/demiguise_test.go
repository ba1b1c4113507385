package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

func TestDemiguiseStatues(t *testing.T) {
	wb := newMemWorkbook()
	wb.sheets["Demiguise Statues"] = [][]string{
		{"Demiguise Statues"},
		{"Hogwarts"},
		{"FALSE", "Entrance Statue", "By the door"},
		{"The Library", ""},
		{"FALSE", "Library Statue", ""},
		{"The Unknown Wing", ""},
		{"FALSE", "Lost Statue"},
		{"Hogsmeade"},
		{"FALSE", "FALSE, Village Statue", "Rooftop"},
		{"The Three Broomsticks", "not a header"},
	}

	got, err := newTestParser(t, wb).DemiguiseStatues()
	require.NoError(t, err)

	assert.Equal(t, []models.CollectibleItem{
		{ID: "entrance-statue", LocationID: "hogwarts", Name: "Entrance Statue", Description: "By the door"},
		{ID: "library-statue", LocationID: "hogwarts", SublocationID: "the-library", Name: "Library Statue"},
		{ID: "lost-statue", LocationID: "hogwarts", Name: "Lost Statue"},
		{ID: "village-statue", LocationID: "hogsmeade", Name: "Village Statue", Description: "Rooftop"},
		{ID: "not-a-header", LocationID: "hogsmeade", Name: "not a header"},
	}, got.Items)
}

func TestDemiguiseStatues_SublocationImpliesHogwarts(t *testing.T) {
	wb := newMemWorkbook()
	wb.sheets["Demiguise Statues"] = [][]string{
		{"Demiguise Statues"},
		{"Hogsmeade"},
		{"The Library", ""},
		{"FALSE", "Odd Statue"},
	}

	got, err := newTestParser(t, wb).DemiguiseStatues()
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "hogwarts", got.Items[0].LocationID)
	assert.Equal(t, "the-library", got.Items[0].SublocationID)
}
