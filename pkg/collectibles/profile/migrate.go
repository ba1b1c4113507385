// Package profile migrates and persists player profiles.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
)

// ErrInvalidVersion indicates a profile version with no migration path.
var ErrInvalidVersion = errors.New("invalid profile version")

// InvalidVersionError reports the unrecognized version tag.
type InvalidVersionError struct {
	Version json.RawMessage
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("unsupported profile version %s", string(e.Version))
}

func (e *InvalidVersionError) Unwrap() error {
	return ErrInvalidVersion
}

// profileV0 is the first exported schema: nested player information and a
// flat item-id keyed completion map.
type profileV0 struct {
	Player         models.PlayerInformation `json:"player"`
	CompletedItems map[string]bool          `json:"completedItems"`
	LastUpdated    string                   `json:"lastUpdated"`
}

// profileV1 flattened the player fields and kept the flat completion map.
type profileV1 struct {
	PlayerName     string             `json:"playerName"`
	PlayerHouse    models.PlayerHouse `json:"playerHouse"`
	ProfilePicture string             `json:"profilePicture,omitempty"`
	CompletedItems map[string]bool    `json:"completedItems"`
	LastUpdated    string             `json:"lastUpdated"`
}

// Imported is a profile in any historical schema version.
type Imported struct {
	raw     json.RawMessage
	version json.RawMessage
}

// Version returns the raw version tag of the imported document.
func (i *Imported) Version() string {
	return string(i.version)
}

// ParseImported reads the version tag of an exported profile without
// interpreting the rest of the document.
func ParseImported(data []byte) (*Imported, error) {
	var head struct {
		Version json.RawMessage `json:"version"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if len(head.Version) == 0 {
		return nil, &InvalidVersionError{Version: json.RawMessage("null")}
	}
	return &Imported{raw: append(json.RawMessage(nil), data...), version: head.Version}, nil
}

// Migrate converts an imported profile of any known version into the current
// schema. Flat completion maps from versions 0 and 1 are nested under every
// catalog type that contains the item; ids no type contains are dropped.
func Migrate(imported *Imported, catalog models.Catalog) (*models.PlayerProfile, error) {
	switch string(imported.version) {
	case "0":
		var v0 profileV0
		if err := json.Unmarshal(imported.raw, &v0); err != nil {
			return nil, fmt.Errorf("parse version 0 profile: %w", err)
		}
		return &models.PlayerProfile{
			Version:        models.CurrentProfileVersion,
			Player:         v0.Player,
			CompletedItems: nestCompletedItems(v0.CompletedItems, catalog),
			LastUpdated:    v0.LastUpdated,
		}, nil
	case "1":
		var v1 profileV1
		if err := json.Unmarshal(imported.raw, &v1); err != nil {
			return nil, fmt.Errorf("parse version 1 profile: %w", err)
		}
		return &models.PlayerProfile{
			Version: models.CurrentProfileVersion,
			Player: models.PlayerInformation{
				Name:           v1.PlayerName,
				House:          v1.PlayerHouse,
				ProfilePicture: v1.ProfilePicture,
			},
			CompletedItems: nestCompletedItems(v1.CompletedItems, catalog),
			LastUpdated:    v1.LastUpdated,
		}, nil
	case "2":
		var current models.PlayerProfile
		if err := json.Unmarshal(imported.raw, &current); err != nil {
			return nil, fmt.Errorf("parse version 2 profile: %w", err)
		}
		if current.CompletedItems == nil {
			current.CompletedItems = models.CompletedItems{}
		}
		return &current, nil
	default:
		return nil, &InvalidVersionError{Version: imported.version}
	}
}

// MigrateJSON parses and migrates an exported profile document.
func MigrateJSON(data []byte, catalog models.Catalog) (*models.PlayerProfile, error) {
	imported, err := ParseImported(data)
	if err != nil {
		return nil, err
	}
	return Migrate(imported, catalog)
}

func nestCompletedItems(flat map[string]bool, catalog models.Catalog) models.CompletedItems {
	nested := models.CompletedItems{}
	for itemID, done := range flat {
		if !done {
			continue
		}
		for i := range catalog {
			if catalog[i].HasItem(itemID) {
				nested.Set(catalog[i].ID, itemID, true)
			}
		}
	}
	return nested
}
