package parser

import (
	"github.com/ukaji3/collectibles-go/pkg/collectibles/locations"
	"go.uber.org/zap"
)

// Resolver resolves workbook place names against the reference table.
type Resolver interface {
	ResolveLocation(name string) (string, bool)
	ResolveSublocation(locationID, name string) (string, bool)
	ResolveLocationOrSublocation(name string) locations.Resolution
}

// Parser holds the collaborators shared by every category parser. Each
// category method reads its sheet and returns one collectible type.
type Parser struct {
	wb  Workbook
	res Resolver
	log *zap.Logger
}

// New creates a parser. A nil logger discards output.
func New(wb Workbook, res Resolver, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{wb: wb, res: res, log: log}
}
