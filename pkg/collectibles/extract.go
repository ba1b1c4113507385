package collectibles

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/locations"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/parser"
	"go.uber.org/zap"
)

type category struct {
	name  string
	parse func(p *parser.Parser) (models.CollectibleType, error)
}

func simple(sheet, name, id string) category {
	return category{name: name, parse: func(p *parser.Parser) (models.CollectibleType, error) {
		return p.SimpleLocationType(sheet, name, id)
	}}
}

func subtypeOnly(sheet, name, id, only string) category {
	return category{name: name, parse: func(p *parser.Parser) (models.CollectibleType, error) {
		return p.SubtypeOnlyType(sheet, name, id, only)
	}}
}

// categories lists every category in output order. The order carries no
// meaning but keeps regenerated artifacts diff-stable.
var categories = []category{
	simple("Ancient Magic Hotspots", "Ancient Magic Hotspots", "ancient-magic-hotspots"),
	simple("Astronomy Tables", "Astronomy Tables", "astronomy-tables"),
	simple("Balloons", "Balloons", "balloons"),
	simple("Butterflies", "Butterflies", "butterflies"),
	simple("Daedalian Keys", "Daedalian Keys", "daedalian-keys"),
	simple("Landing Platforms", "Landing Platforms", "landing-platforms"),
	{name: "Merlin Trials", parse: (*parser.Parser).MerlinTrials},
	{name: "Field Guide Pages", parse: (*parser.Parser).FieldGuidePages},
	{name: "Demiguise Statues", parse: (*parser.Parser).DemiguiseStatues},
	{name: "Collection Chests", parse: (*parser.Parser).CollectionChests},
	subtypeOnly("Sheet17", "Additional Appearances", "additional-appearances", ""),
	subtypeOnly("Beasts, Ingredients, Tools", "Ingredients", "ingredients", "Ingredients"),
	subtypeOnly("Beasts, Ingredients, Tools", "Beasts", "beasts", "Beasts"),
	subtypeOnly("Beasts, Ingredients, Tools", "Tools", "tools", "Tools"),
	subtypeOnly("Wand Handles", "Wand Handles", "wand-handles", ""),
	subtypeOnly("Conjurations", "Conjurations", "conjurations", ""),
	{name: "Quests", parse: (*parser.Parser).Quests},
	{name: "Traits", parse: (*parser.Parser).Traits},
	{name: "Enemies", parse: (*parser.Parser).Enemies},
	{name: "Ancient Magic Enemies", parse: (*parser.Parser).AncientMagicEnemies},
	{name: "Brooms", parse: (*parser.Parser).Brooms},
	{name: "Appearances", parse: (*parser.Parser).Appearances},
}

// Extract runs every category parser once, in a fixed order, and returns the
// catalog. The first failing category aborts the run.
func Extract(wb parser.Workbook, res *locations.Resolver, opts Options) (models.Catalog, error) {
	log := opts.logger().With(zap.String("run_id", uuid.NewString()))
	p := parser.New(wb, res, log)

	catalog := make(models.Catalog, 0, len(categories))
	for _, c := range categories {
		t, err := c.parse(p)
		if err != nil {
			return nil, NewExtractionError(c.name, err)
		}
		log.Info("parsed category", zap.String("category", c.name), zap.Int("items", len(t.Items)))
		catalog = append(catalog, t)
	}

	if !opts.SkipValidation {
		if err := models.ValidateCatalog(catalog, res.Locations()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
	}

	log.Info("generated catalog", zap.Int("types", len(catalog)), zap.Int("items", catalog.ItemCount()))
	return catalog, nil
}

// ExtractFile opens the workbook at path, loads the reference table from
// locationsPath and extracts the catalog.
func ExtractFile(path, locationsPath string, opts Options) (models.Catalog, error) {
	res, err := locations.LoadResolver(locationsPath)
	if err != nil {
		return nil, err
	}

	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return Extract(wb, res, opts)
}
