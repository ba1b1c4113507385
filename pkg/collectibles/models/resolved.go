package models

// Tag is the display reference attached to a resolved item.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// ResolvedItem is an item with its type, subtype, location and sublocation
// looked up. Lookups that find nothing leave the tag nil.
type ResolvedItem struct {
	CollectibleItem
	Type        Tag  `json:"type"`
	Subtype     *Tag `json:"subtype,omitempty"`
	Location    *Tag `json:"location,omitempty"`
	Sublocation *Tag `json:"sublocation,omitempty"`
}

// ResolvedType is a collectible type whose items are resolved.
type ResolvedType struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Subtypes []CollectibleSubtype `json:"subtypes,omitempty"`
	Items    []ResolvedItem       `json:"items"`
}

// Resolve looks up the references of every item of t in locations.
func (t *CollectibleType) Resolve(locations []Location) ResolvedType {
	byID := make(map[string]*Location, len(locations))
	for i := range locations {
		byID[locations[i].ID] = &locations[i]
	}

	resolved := ResolvedType{
		ID:       t.ID,
		Name:     t.Name,
		Subtypes: t.Subtypes,
		Items:    make([]ResolvedItem, 0, len(t.Items)),
	}
	for _, item := range t.Items {
		r := ResolvedItem{
			CollectibleItem: item,
			Type:            Tag{ID: t.ID, Name: t.Name},
		}
		if st, ok := t.FindSubtype(item.SubtypeID); ok && item.SubtypeID != "" {
			r.Subtype = &Tag{ID: st.ID, Name: st.Name, Icon: st.Icon}
		}
		if loc, ok := byID[item.LocationID]; ok {
			r.Location = &Tag{ID: loc.ID, Name: loc.Name, Icon: loc.Icon}
			if sub, ok := loc.FindSublocation(item.SublocationID); ok && item.SublocationID != "" {
				r.Sublocation = &Tag{ID: sub.ID, Name: sub.Name, Icon: sub.Icon}
			}
		}
		resolved.Items = append(resolved.Items, r)
	}
	return resolved
}
