package models

import (
	"fmt"
	"strings"
)

// ValidationError describes a single shape violation at a JSON-like path.
type ValidationError struct {
	// Path locates the offending value, e.g. "[3].items[12].sublocationId".
	Path string
	// Message describes the violation.
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors collects every violation found in one validation pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("%d validation error(s): %s", len(e), strings.Join(msgs, "; "))
}

func (e *ValidationErrors) add(path, format string, args ...any) {
	*e = append(*e, ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (e ValidationErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ValidateLocations checks the reference table: non-empty names and ids,
// location ids unique, sublocation ids unique within their location.
func ValidateLocations(locations []Location) error {
	var errs ValidationErrors
	seen := make(map[string]bool)
	for i, loc := range locations {
		path := fmt.Sprintf("[%d]", i)
		if loc.ID == "" {
			errs.add(path+".id", "must not be empty")
		} else if seen[loc.ID] {
			errs.add(path+".id", "duplicate location id %q", loc.ID)
		}
		seen[loc.ID] = true
		if loc.Name == "" {
			errs.add(path+".name", "must not be empty")
		}

		subSeen := make(map[string]bool)
		for j, sub := range loc.Sublocations {
			subPath := fmt.Sprintf("%s.sublocations[%d]", path, j)
			if sub.ID == "" {
				errs.add(subPath+".id", "must not be empty")
			} else if subSeen[sub.ID] {
				errs.add(subPath+".id", "duplicate sublocation id %q", sub.ID)
			}
			subSeen[sub.ID] = true
			if sub.Name == "" {
				errs.add(subPath+".name", "must not be empty")
			}
		}
	}
	return errs.orNil()
}

// ValidateCatalog checks catalog invariants against the reference table:
// type ids are unique, item ids are unique within a type, subtype references
// resolve, and every sublocation is owned by the item's location.
func ValidateCatalog(catalog Catalog, locations []Location) error {
	var errs ValidationErrors

	locationsByID := make(map[string]*Location, len(locations))
	for i := range locations {
		locationsByID[locations[i].ID] = &locations[i]
	}

	typeIDs := make(map[string]bool)
	for ti, t := range catalog {
		path := fmt.Sprintf("[%d]", ti)
		if t.ID == "" {
			errs.add(path+".id", "must not be empty")
		} else if typeIDs[t.ID] {
			errs.add(path+".id", "duplicate type id %q", t.ID)
		}
		typeIDs[t.ID] = true
		if t.Name == "" {
			errs.add(path+".name", "must not be empty")
		}

		subtypeIDs := make(map[string]bool)
		for si, st := range t.Subtypes {
			stPath := fmt.Sprintf("%s.subtypes[%d]", path, si)
			if st.ID == "" {
				errs.add(stPath+".id", "must not be empty")
			} else if subtypeIDs[st.ID] {
				errs.add(stPath+".id", "duplicate subtype id %q", st.ID)
			}
			subtypeIDs[st.ID] = true
			if st.Name == "" {
				errs.add(stPath+".name", "must not be empty")
			}
		}

		itemIDs := make(map[string]bool)
		for ii, item := range t.Items {
			itemPath := fmt.Sprintf("%s.items[%d]", path, ii)
			if item.ID == "" {
				errs.add(itemPath+".id", "must not be empty")
			} else if itemIDs[item.ID] {
				errs.add(itemPath+".id", "duplicate item id %q in type %q", item.ID, t.ID)
			}
			itemIDs[item.ID] = true
			if item.Name == "" {
				errs.add(itemPath+".name", "must not be empty")
			}
			if item.SubtypeID != "" && len(t.Subtypes) > 0 && !subtypeIDs[item.SubtypeID] {
				errs.add(itemPath+".subtypeId", "unknown subtype %q", item.SubtypeID)
			}
			if item.LocationID != "" {
				if _, ok := locationsByID[item.LocationID]; !ok {
					errs.add(itemPath+".locationId", "unknown location %q", item.LocationID)
				}
			}
			if item.SublocationID != "" {
				loc, ok := locationsByID[item.LocationID]
				switch {
				case item.LocationID == "":
					errs.add(itemPath+".sublocationId", "sublocation %q without location", item.SublocationID)
				case !ok:
					// reported above
				default:
					if _, owned := loc.FindSublocation(item.SublocationID); !owned {
						errs.add(itemPath+".sublocationId", "sublocation %q is not owned by location %q", item.SublocationID, item.LocationID)
					}
				}
			}
		}
	}
	return errs.orNil()
}
