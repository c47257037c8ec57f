// Package unity parses Unity scene files into typed sub-records.
//
// Scene files are multi-document streams that look like YAML but are not:
// every sub-document opens with a tagged header line of the form
//
//	--- !u!4 &400010
//
// where 4 is the Unity class ID and 400010 is the file-scoped object ID.
// Standard YAML decoders reject the tag syntax, so splitting and field
// extraction here are line-based and best-effort: fragments that cannot be
// parsed are dropped, never fatal.
package unity

import (
	"regexp"
	"strconv"
	"strings"
)

// Well-known Unity class IDs.
const (
	ClassGameObject    = 1
	ClassTransform     = 4
	ClassRectTransform = 224
	ClassSceneRoots    = 1660057539
)

// NullFileID is the sentinel file ID meaning "no object". It never denotes a
// real record and must be excluded before any table lookup.
const NullFileID = "0"

// Record is one sub-document of a scene file.
type Record struct {
	// TypeID is the Unity class ID from the document header.
	TypeID int

	// FileID is the file-scoped identifier from the document header.
	// Opaque; uniqueness within one scene is assumed, not verified.
	FileID string

	// Body holds the raw lines of the sub-document, header excluded.
	Body []string
}

// headerRe matches a sub-document header: marker, class ID, file ID.
// Headers may carry a trailing qualifier (e.g. "stripped") which is ignored.
var headerRe = regexp.MustCompile(`^--- !u!(\d+) &(-?\d+)`)

// SplitRecords partitions raw scene text into typed sub-records.
//
// Fragments whose header cannot be parsed, and fragments with an empty or
// whitespace-only body, are silently dropped. The stream prologue before the
// first document marker (%YAML / %TAG directives) is ignored.
func SplitRecords(text string) []Record {
	lines := strings.Split(text, "\n")

	var records []Record
	var current *Record

	flush := func() {
		if current == nil {
			return
		}
		for _, l := range current.Body {
			if strings.TrimSpace(l) != "" {
				records = append(records, *current)
				break
			}
		}
		current = nil
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "--- ") {
			flush()
			m := headerRe.FindStringSubmatch(line)
			if m == nil {
				continue // malformed header: drop the fragment
			}
			typeID, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			current = &Record{TypeID: typeID, FileID: m[2]}
			continue
		}
		if current != nil {
			current.Body = append(current.Body, strings.TrimRight(line, "\r"))
		}
	}
	flush()

	return records
}

// Entity returns the entity marker of the record: the first body line that
// declares a top-level mapping key (e.g. "GameObject", "Transform").
// Returns "" when the body has no such line.
func (r Record) Entity() string {
	for _, line := range r.Body {
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}
		if name, ok := strings.CutSuffix(strings.TrimRight(line, " "), ":"); ok {
			return name
		}
	}
	return ""
}
