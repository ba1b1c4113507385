package parser

import (
	"strings"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

const fieldGuideSheet = "Field Guide Pages"

// Column layout of the Field Guide Pages sheet; row 0 is the header row.
const (
	fieldGuideSubtypeCol = iota
	fieldGuideLocationCol
	fieldGuideSublocationCol
	fieldGuideNameCol
	fieldGuideDescriptionCol
)

var fieldGuideSubtypes = []models.CollectibleSubtype{
	{ID: "revelio", Name: "Revelio"},
	{ID: "lumos", Name: "Lumos"},
	{ID: "accio", Name: "Accio"},
	{ID: "incendio-confringo", Name: "Incendio/Confringo"},
	{ID: "levioso", Name: "Levioso"},
}

// FieldGuidePages parses the flat page list. Unlike the other categories,
// every subtype, location and sublocation cell must resolve; the first
// failure aborts with an *UnresolvedReferenceError.
func (p *Parser) FieldGuidePages() (models.CollectibleType, error) {
	grid, err := p.wb.SheetGrid(fieldGuideSheet)
	if err != nil {
		return models.CollectibleType{}, err
	}

	items := []models.CollectibleItem{}
	for i := 1; i < len(grid); i++ {
		subtype := cell(grid, i, fieldGuideSubtypeCol)
		if subtype == "" {
			continue
		}
		name := strings.TrimSpace(cell(grid, i, fieldGuideNameCol))
		if name == "" {
			continue
		}
		location := cell(grid, i, fieldGuideLocationCol)
		sublocation := cell(grid, i, fieldGuideSublocationCol)

		subtypeID, ok := fieldGuideSubtypeID(subtype)
		if !ok {
			return models.CollectibleType{}, p.unresolved(i, "subtype", subtype)
		}
		locationID, ok := p.res.ResolveLocation(location)
		if !ok {
			return models.CollectibleType{}, p.unresolved(i, "location", location)
		}
		var sublocationID string
		if sublocation != "" {
			sublocationID, ok = p.res.ResolveSublocation(locationID, sublocation)
			if !ok {
				return models.CollectibleType{}, p.unresolved(i, "sublocation", sublocation)
			}
		}

		id := subtypeID + "-" + ToID(name)
		if sublocationID != "" {
			id += "-" + sublocationID
		}

		items = append(items, newItem(models.CollectibleItem{
			ID:            id,
			SubtypeID:     subtypeID,
			LocationID:    locationID,
			SublocationID: sublocationID,
			Name:          name,
			Description:   cell(grid, i, fieldGuideDescriptionCol),
		}))
	}

	subtypes := make([]models.CollectibleSubtype, len(fieldGuideSubtypes))
	copy(subtypes, fieldGuideSubtypes)
	return models.CollectibleType{
		ID:       "field-guide-pages",
		Name:     "Field Guide Pages",
		Subtypes: subtypes,
		Items:    items,
	}, nil
}

func fieldGuideSubtypeID(name string) (string, bool) {
	for _, st := range fieldGuideSubtypes {
		if st.Name == name {
			return st.ID, true
		}
	}
	return "", false
}

func (p *Parser) unresolved(rowIdx int, kind, value string) error {
	return &UnresolvedReferenceError{
		Sheet: fieldGuideSheet,
		Row:   rowIdx + 1,
		Kind:  kind,
		Value: value,
	}
}
