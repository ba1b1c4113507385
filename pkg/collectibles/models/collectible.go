// Package models defines data structures for the collectible catalog.
package models

import "strings"

// CollectibleSubtype represents a named sub-classification within a collectible type.
type CollectibleSubtype struct {
	// ID is the subtype identifier, unique within its owning type.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Description is optional free text.
	Description string `json:"description,omitempty"`
	// Icon is an optional icon URL.
	Icon string `json:"icon,omitempty"`
}

// CollectibleItem represents a single collectible within a type.
type CollectibleItem struct {
	// ID is the item identifier, unique within its owning type.
	ID string `json:"id"`
	// SubtypeID references a subtype of the owning type (optional).
	SubtypeID string `json:"subtypeId,omitempty"`
	// LocationID references a location from the reference table (optional).
	LocationID string `json:"locationId,omitempty"`
	// SublocationID references a sublocation owned by LocationID (optional).
	SublocationID string `json:"sublocationId,omitempty"`
	// Name is the display name. Numbered items carry a leading '#'.
	Name string `json:"name"`
	// Description is optional Markdown-flavored text with LF line endings.
	Description string `json:"description,omitempty"`
	// InternalGameID is the game's own identifier, used to match savegame
	// data. The workbook does not carry it.
	InternalGameID string `json:"internalGameId,omitempty"`
}

// Normalize returns a copy of the item with CRLF line endings in the
// description replaced by LF.
func (i CollectibleItem) Normalize() CollectibleItem {
	i.Description = strings.ReplaceAll(i.Description, "\r\n", "\n")
	return i
}

// CollectibleType represents one category of collectibles.
type CollectibleType struct {
	// ID is the type identifier, unique across the catalog.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Subtypes lists the subtypes of this type. Nil when the type has none.
	Subtypes []CollectibleSubtype `json:"subtypes,omitempty"`
	// Items lists the items in parse order.
	Items []CollectibleItem `json:"items"`
}

// FindSubtype returns the subtype with the given id.
func (t *CollectibleType) FindSubtype(id string) (*CollectibleSubtype, bool) {
	for i := range t.Subtypes {
		if t.Subtypes[i].ID == id {
			return &t.Subtypes[i], true
		}
	}
	return nil, false
}

// HasItem reports whether the type contains an item with the given id.
func (t *CollectibleType) HasItem(id string) bool {
	for _, item := range t.Items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Catalog is the ordered sequence of collectible types produced by one run.
type Catalog []CollectibleType

// Find returns the type with the given id.
func (c Catalog) Find(id string) (*CollectibleType, bool) {
	for i := range c {
		if c[i].ID == id {
			return &c[i], true
		}
	}
	return nil, false
}

// ItemCount returns the total number of items across all types.
func (c Catalog) ItemCount() int {
	n := 0
	for _, t := range c {
		n += len(t.Items)
	}
	return n
}
