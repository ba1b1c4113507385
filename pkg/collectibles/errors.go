package collectibles

import (
	"errors"
	"fmt"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/parser"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/profile"
)

// ErrSheetNotFound indicates a category's sheet is absent from the workbook.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrUnresolvedReference indicates a Field Guide Pages reference did not resolve.
var ErrUnresolvedReference = parser.ErrUnresolvedReference

// ErrInvalidVersion indicates a profile version with no migration path.
var ErrInvalidVersion = profile.ErrInvalidVersion

// ErrInvalidCatalog indicates the extracted catalog failed validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

type (
	// SheetNotFoundError reports a missing sheet.
	SheetNotFoundError = parser.SheetNotFoundError
	// UnresolvedReferenceError reports a reference cell that failed to resolve.
	UnresolvedReferenceError = parser.UnresolvedReferenceError
	// InvalidVersionError reports an unknown profile version.
	InvalidVersionError = profile.InvalidVersionError
)

// ExtractionError represents an error while parsing one category.
type ExtractionError struct {
	Category string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in category %q: %v", e.Category, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(category string, err error) *ExtractionError {
	return &ExtractionError{
		Category: category,
		Err:      err,
	}
}
