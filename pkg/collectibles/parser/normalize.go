package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Whitespace includes Unicode space separators so non-breaking spaces in
	// cell text become hyphens instead of disappearing.
	nonIDChars     = regexp.MustCompile(`[^a-z0-9\s\p{Zs}\x{FEFF}-]`)
	whitespaceRuns = regexp.MustCompile(`[\s\p{Zs}\x{FEFF}]+`)
	checkboxPrefix = regexp.MustCompile(`(?i)^FALSE,?\s*`)
	digitsOnly     = regexp.MustCompile(`^\d+$`)
	hashDigits     = regexp.MustCompile(`^#\d+$`)
	countSuffix    = regexp.MustCompile(`\s*-?\s*\d+\*?$`)
)

// ToID derives a kebab-case identifier from a display name. The result only
// contains lowercase ASCII letters, digits and hyphens, so ToID(ToID(x)) == ToID(x).
func ToID(name string) string {
	id := cases.Lower(language.Und).String(name)
	id = nonIDChars.ReplaceAllString(id, "")
	id = whitespaceRuns.ReplaceAllString(id, "-")
	return strings.TrimSpace(id)
}

// StripCheckboxPrefix removes a leading checkbox marker ("FALSE", optionally
// followed by a comma and whitespace) and trims the rest.
func StripCheckboxPrefix(value string) string {
	value = strings.TrimSpace(value)
	for value != "" {
		stripped := checkboxPrefix.ReplaceAllString(value, "")
		if stripped == value {
			break
		}
		value = strings.TrimSpace(stripped)
	}
	return value
}

// NormalizeLineEndings replaces every CRLF with LF.
func NormalizeLineEndings(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// hasCheckbox reports whether the raw cell carries a checkbox marker.
func hasCheckbox(value string) bool {
	return strings.HasPrefix(value, "FALSE")
}

// numberedName applies the numbered-item convention: "7" becomes id "7" with
// name "#7", "#7" becomes id "7" and keeps its name.
func numberedName(name string) (id, display string) {
	switch {
	case digitsOnly.MatchString(name):
		return name, "#" + name
	case hashDigits.MatchString(name):
		return name[1:], name
	default:
		return ToID(name), name
	}
}

// newItem is the single construction point for items so the serialization
// filter is applied uniformly.
func newItem(item models.CollectibleItem) models.CollectibleItem {
	return item.Normalize()
}

// labeledLines renders non-empty values as bold label lines separated by a
// blank line, e.g. "**From:** Vendor\n\n**Cost:** 100".
func labeledLines(pairs ...[2]string) string {
	var parts []string
	for _, p := range pairs {
		if strings.TrimSpace(p[1]) == "" {
			continue
		}
		parts = append(parts, "**"+p[0]+":** "+p[1])
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

// isHeaderLabel reports whether name is a column label row rather than data.
func isHeaderLabel(name string, labels ...string) bool {
	for _, l := range labels {
		if name == l {
			return true
		}
	}
	return false
}
