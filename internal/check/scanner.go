// Package check handles project-wide asset reference validation.
//
// The scanner walks a scene's records for reference-bearing fields and
// reports every occurrence whose GUID is absent from the asset identifier
// index. Unresolved structural IDs (transform fathers/children) are not its
// business; those degrade silently during hierarchy reconstruction.
package check

import (
	"fmt"
	"path"
	"strings"

	"github.com/tbruun/scenedoctor/internal/meta"
	"github.com/tbruun/scenedoctor/internal/scripts"
	"github.com/tbruun/scenedoctor/internal/unity"
)

// Issue is one broken asset reference. One issue is emitted per offending
// occurrence; repeated references to the same missing GUID are not deduped.
type Issue struct {
	// Scene is the scene's display name.
	Scene string `json:"scene"`

	// ObjectName is best-effort context. For field-level issues it is the
	// fixed placeholder: context tracking does not extend to object-name
	// fields.
	ObjectName string `json:"object_name"`

	// AssetType is the category inferred from field-name keywords.
	AssetType string `json:"asset_type"`

	// Kind is the reference shape that produced the issue.
	Kind string `json:"kind"`

	// GUID is the missing identifier, verbatim.
	GUID string `json:"guid"`

	// Description is a human-readable account of the broken reference.
	Description string `json:"description"`
}

// Reference shapes.
const (
	KindScript   = "script"
	KindField    = "field"
	KindMaterial = "material"
	KindAsset    = "asset"
)

// PlaceholderObjectName is attached to issues whose owning object is not
// tracked. Kept deliberately: see the scanner's context handling.
const PlaceholderObjectName = "(component)"

// unknownScript is the field-description context before any script
// reference has resolved.
const unknownScript = "unknown script"

// wellKnownFields are the mesh/texture reference fields checked as their
// own shape rather than as generic serialized fields.
var wellKnownFields = map[string]struct{}{
	"m_Mesh":        {},
	"m_Texture":     {},
	"m_MainTexture": {},
}

// Scanner validates scene records against a read-only GUID index.
type Scanner struct {
	index   *meta.Index
	scripts scripts.Provider
}

// NewScanner creates a scanner over the project's asset identifier index.
// provider may be nil; script names then fall back to asset file names.
func NewScanner(index *meta.Index, provider scripts.Provider) *Scanner {
	return &Scanner{index: index, scripts: provider}
}

// ScanScene walks every record of a scene and returns its broken
// references, in record order.
func (s *Scanner) ScanScene(sceneName string, records []unity.Record) []Issue {
	var issues []Issue

	// Running context: the most recently resolved script class name. Field
	// issues borrow it for their description. It is never re-derived from
	// object-name fields, so ObjectName stays the placeholder.
	currentScript := unknownScript

	for _, r := range records {
		inMaterials := false
		for _, line := range r.Body {
			trimmed := strings.TrimSpace(line)

			if inMaterials {
				if strings.HasPrefix(trimmed, "- ") {
					if guid, ok := unity.GUIDIn(trimmed); ok && !s.resolves(guid) {
						issues = append(issues, Issue{
							Scene:       sceneName,
							ObjectName:  PlaceholderObjectName,
							AssetType:   "material",
							Kind:        KindMaterial,
							GUID:        guid,
							Description: fmt.Sprintf("renderer material slot references missing material (guid %s)", guid),
						})
					}
					continue
				}
				inMaterials = false
			}
			if trimmed == "m_Materials:" {
				inMaterials = true
				continue
			}

			field, value, ok := unity.FieldAssignment(line)
			if !ok {
				continue
			}
			guid, ok := unity.GUIDIn(value)
			if !ok || guid == "" || guid == unity.NullFileID {
				continue
			}

			switch {
			case field == "m_Script":
				if s.resolves(guid) {
					currentScript = s.scriptName(guid)
					continue
				}
				issues = append(issues, Issue{
					Scene:       sceneName,
					ObjectName:  PlaceholderObjectName,
					AssetType:   "script",
					Kind:        KindScript,
					GUID:        guid,
					Description: fmt.Sprintf("component references missing script (guid %s)", guid),
				})

			case isWellKnown(field):
				if s.resolves(guid) {
					continue
				}
				category := CategoryForField(field)
				issues = append(issues, Issue{
					Scene:       sceneName,
					ObjectName:  PlaceholderObjectName,
					AssetType:   category,
					Kind:        KindAsset,
					GUID:        guid,
					Description: fmt.Sprintf("%s references missing %s (guid %s)", field, category, guid),
				})

			default:
				if s.resolves(guid) {
					continue
				}
				issues = append(issues, Issue{
					Scene:       sceneName,
					ObjectName:  PlaceholderObjectName,
					AssetType:   CategoryForField(field),
					Kind:        KindField,
					GUID:        guid,
					Description: fmt.Sprintf("serialized field %s on %s references missing asset (guid %s)", field, currentScript, guid),
				})
			}
		}
	}

	return issues
}

// SceneScriptClasses returns the distinct script class names referenced by
// the scene's script-component records, translating each component's asset
// GUID through the script model provider. Unresolvable GUIDs are omitted.
func (s *Scanner) SceneScriptClasses(records []unity.Record) []string {
	seen := make(map[string]struct{})
	var classes []string
	for _, r := range records {
		for _, line := range r.Body {
			field, value, ok := unity.FieldAssignment(line)
			if !ok || field != "m_Script" {
				continue
			}
			guid, ok := unity.GUIDIn(value)
			if !ok || !s.resolves(guid) {
				continue
			}
			name := s.scriptName(guid)
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			classes = append(classes, name)
		}
	}
	return classes
}

func (s *Scanner) resolves(guid string) bool {
	return s.index != nil && s.index.Has(guid)
}

// scriptName resolves a script GUID to a class name, falling back to the
// asset's base file name when no model is available.
func (s *Scanner) scriptName(guid string) string {
	if s.scripts != nil {
		if model, ok := s.scripts.ModelForGUID(guid); ok && model.ClassName != "" {
			return model.ClassName
		}
	}
	if assetPath, ok := s.index.Resolve(guid); ok {
		return strings.TrimSuffix(path.Base(assetPath), path.Ext(assetPath))
	}
	return unknownScript
}

func isWellKnown(field string) bool {
	_, ok := wellKnownFields[field]
	return ok
}

// CategoryForField infers the asset category from field-name keywords.
func CategoryForField(field string) string {
	lower := strings.ToLower(field)
	for _, category := range []string{"material", "texture", "mesh", "audio", "sprite", "prefab", "script"} {
		if strings.Contains(lower, category) {
			return category
		}
	}
	return "unknown asset"
}
