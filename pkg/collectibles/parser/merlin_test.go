package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

func TestMerlinTrials(t *testing.T) {
	b := &sheetBuilder{}
	b.set(0, 0, "Merlin Trials")
	b.set(1, 0, "North Hogwarts").set(1, 4, "North Ford Bog").set(1, 8, "Nowhere")
	b.set(2, 0, "FALSE").set(2, 1, "1").set(2, 2, "Ignite")
	b.set(2, 4, "FALSE").set(2, 5, "7").set(2, 6, "Stones")
	b.set(2, 8, "FALSE").set(2, 9, "9").set(2, 10, "Ignite")
	b.set(3, 0, "FALSE").set(3, 1, "2").set(3, 2, "Ignite")
	b.set(3, 4, "FALSE").set(3, 5, "").set(3, 6, "Stones")
	b.set(5, 0, "FALSE").set(5, 1, "3").set(5, 2, "")

	wb := newMemWorkbook()
	wb.sheets["Merlin Trials"] = b.rows
	wb.setComment("Merlin Trials", 2, 2, "Light the braziers\r\nin order")

	got, err := newTestParser(t, wb).MerlinTrials()
	require.NoError(t, err)

	assert.Equal(t, "merlin-trials", got.ID)
	assert.Equal(t, []models.CollectibleSubtype{
		{ID: "ignite", Name: "Ignite"},
		{ID: "stones", Name: "Stones"},
	}, got.Subtypes)
	assert.Equal(t, []models.CollectibleItem{
		{ID: "1", SubtypeID: "ignite", LocationID: "the-highlands", SublocationID: "north-hogwarts-region", Name: "#1", Description: "Light the braziers\nin order"},
		{ID: "7", SubtypeID: "stones", LocationID: "the-highlands", SublocationID: "north-ford-bog", Name: "#7"},
		{ID: "2", SubtypeID: "ignite", LocationID: "the-highlands", SublocationID: "north-hogwarts-region", Name: "#2"},
	}, got.Items)
}

func TestMerlinTrials_NoTrials(t *testing.T) {
	wb := newMemWorkbook()
	wb.sheets["Merlin Trials"] = [][]string{{"Merlin Trials"}, {"North Hogwarts"}}

	got, err := newTestParser(t, wb).MerlinTrials()
	require.NoError(t, err)
	assert.Nil(t, got.Subtypes)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}
