package unity

import (
	"regexp"
	"strings"
)

var (
	fileIDRe = regexp.MustCompile(`fileID:\s*(-?\d+)`)
	guidRe   = regexp.MustCompile(`guid:\s*([A-Za-z0-9_-]+)`)
	// fieldRe matches a serialized field assignment, e.g. "  m_Mesh: {...}".
	fieldRe = regexp.MustCompile(`^\s*(\w+):\s*(.*)$`)
)

// Scalar returns the value of the first occurrence of a scalar field in the
// record body, e.g. Scalar("m_Name") on a GameObject record. Surrounding
// quotes are stripped. The second return is false when the field is absent.
func (r Record) Scalar(name string) (string, bool) {
	prefix := name + ":"
	for _, line := range r.Body {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, prefix) {
			continue
		}
		value := strings.TrimSpace(trimmed[len(prefix):])
		return unquote(value), true
	}
	return "", false
}

// FileIDField returns the fileID embedded in a reference-valued field,
// e.g. FileIDField("m_Father") on "m_Father: {fileID: 400010}".
func (r Record) FileIDField(name string) (string, bool) {
	value, ok := r.Scalar(name)
	if !ok {
		return "", false
	}
	return FileIDIn(value)
}

// FileIDList collects, in declared order, the fileIDs of a block-style list
// field, e.g. FileIDList("m_Children") over:
//
//	m_Children:
//	- {fileID: 400020}
//	- {fileID: 400030}
//
// The list ends at the first line that is not a list item. Items without a
// parseable fileID are skipped.
func (r Record) FileIDList(name string) []string {
	var ids []string
	marker := name + ":"
	inList := false
	for _, line := range r.Body {
		trimmed := strings.TrimSpace(line)
		if !inList {
			if trimmed == marker {
				inList = true
			}
			continue
		}
		if !strings.HasPrefix(trimmed, "- ") {
			break
		}
		if id, ok := FileIDIn(trimmed); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// FileIDIn extracts the fileID component of an inline reference value.
func FileIDIn(s string) (string, bool) {
	m := fileIDRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// GUIDIn extracts the guid component of an inline reference value.
func GUIDIn(s string) (string, bool) {
	m := guidRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FieldAssignment splits a body line into its serialized field name and raw
// value. Returns ok=false for list items, blank lines, and block openers
// without inline values.
func FieldAssignment(line string) (name, value string, ok bool) {
	m := fieldRe.FindStringSubmatch(line)
	if m == nil || m[2] == "" {
		return "", "", false
	}
	return m[1], m[2], true
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
