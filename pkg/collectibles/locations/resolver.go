// Package locations loads the location reference table and resolves free-text
// place names from the workbook against it.
package locations

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

// Resolution is the result of resolving a name that may be either a location
// or a sublocation. Both fields are empty when nothing matched.
type Resolution struct {
	LocationID    string
	SublocationID string
}

// Resolved reports whether a location was found.
func (r Resolution) Resolved() bool {
	return r.LocationID != ""
}

// Resolver matches names case-insensitively against the reference table.
type Resolver struct {
	locations []models.Location
}

// NewResolver creates a resolver over the given reference table. The slice is
// not copied and must not be modified afterwards.
func NewResolver(locations []models.Location) *Resolver {
	return &Resolver{locations: locations}
}

// Load reads and validates a locations JSON file.
func Load(path string) ([]models.Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locations: %w", err)
	}
	var locations []models.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("parse locations: %w", err)
	}
	if err := models.ValidateLocations(locations); err != nil {
		return nil, fmt.Errorf("invalid locations: %w", err)
	}
	return locations, nil
}

// LoadResolver reads a locations JSON file and builds a resolver over it.
func LoadResolver(path string) (*Resolver, error) {
	locations, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewResolver(locations), nil
}

// Locations returns the reference table.
func (r *Resolver) Locations() []models.Location {
	return r.locations
}

func matches(name, id, normalized string) bool {
	return strings.ToLower(name) == normalized || id == normalized
}

// ResolveLocation returns the id of the first location whose name or id
// matches name.
func (r *Resolver) ResolveLocation(name string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return "", false
	}
	for _, loc := range r.locations {
		if matches(loc.Name, loc.ID, normalized) {
			return loc.ID, true
		}
	}
	return "", false
}

// ResolveSublocation returns the id of the first sublocation of locationID
// whose name or id matches name.
func (r *Resolver) ResolveSublocation(locationID, name string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if locationID == "" || normalized == "" {
		return "", false
	}
	loc, ok := r.Location(locationID)
	if !ok {
		return "", false
	}
	for _, sub := range loc.Sublocations {
		if matches(sub.Name, sub.ID, normalized) {
			return sub.ID, true
		}
	}
	return "", false
}

// ResolveLocationOrSublocation tries name as a location first, then as a
// sublocation of every location in table order.
func (r *Resolver) ResolveLocationOrSublocation(name string) Resolution {
	if id, ok := r.ResolveLocation(name); ok {
		return Resolution{LocationID: id}
	}
	for _, loc := range r.locations {
		if id, ok := r.ResolveSublocation(loc.ID, name); ok {
			return Resolution{LocationID: loc.ID, SublocationID: id}
		}
	}
	return Resolution{}
}

// Location returns the location with the given id.
func (r *Resolver) Location(id string) (*models.Location, bool) {
	for i := range r.locations {
		if r.locations[i].ID == id {
			return &r.locations[i], true
		}
	}
	return nil, false
}
