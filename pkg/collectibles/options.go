// Package collectibles extracts the collectible catalog from the checklist
// workbook.
package collectibles

import "go.uber.org/zap"

// Options configures extraction behavior.
type Options struct {
	// Logger receives progress output. If nil, logging is discarded.
	Logger *zap.Logger
	// SkipValidation disables the catalog validation pass that runs after
	// every category has been parsed.
	SkipValidation bool
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
