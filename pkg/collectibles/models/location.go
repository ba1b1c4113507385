package models

// Sublocation represents a named place inside a location.
type Sublocation struct {
	// ID is the sublocation identifier.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Icon is an optional icon URL.
	Icon string `json:"icon,omitempty"`
}

// Location represents a top-level place from the reference table.
type Location struct {
	// ID is the location identifier.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Icon is an optional icon URL.
	Icon string `json:"icon,omitempty"`
	// Sublocations lists the places owned by this location (optional).
	Sublocations []Sublocation `json:"sublocations,omitempty"`
}

// FindSublocation returns the sublocation with the given id.
func (l *Location) FindSublocation(id string) (*Sublocation, bool) {
	for i := range l.Sublocations {
		if l.Sublocations[i].ID == id {
			return &l.Sublocations[i], true
		}
	}
	return nil, false
}
