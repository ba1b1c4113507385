// Package output serializes the catalog and writes or publishes the artifact.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

// ToJSON serializes the catalog. Pretty output uses two-space indentation and
// ends with a newline so regenerated artifacts diff cleanly.
func ToJSON(catalog models.Catalog, pretty bool) ([]byte, error) {
	if catalog == nil {
		catalog = models.Catalog{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(catalog); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadCatalog strictly decodes a catalog artifact. Unknown fields and
// trailing data are rejected.
func ReadCatalog(r io.Reader) (models.Catalog, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var catalog models.Catalog
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode catalog: unexpected data after catalog")
	}
	return catalog, nil
}

// LoadCatalog decodes a catalog and validates it against the reference table.
func LoadCatalog(r io.Reader, locations []models.Location) (models.Catalog, error) {
	catalog, err := ReadCatalog(r)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateCatalog(catalog, locations); err != nil {
		return nil, err
	}
	return catalog, nil
}
