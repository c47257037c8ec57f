package unity

// Transform carries the structural fields of a Transform or RectTransform
// record. It is ephemeral: the hierarchy builder turns a scene's transforms
// into lookup tables and discards them.
type Transform struct {
	FileID string

	// OwnerID is the fileID of the GameObject this transform attaches to.
	OwnerID string

	// FatherID is the fileID of the parent transform. Empty when the field
	// is absent; NullFileID when the transform is explicitly parentless.
	FatherID string

	// Children holds child transform fileIDs in declared (authoring) order.
	Children []string
}

// IsTransform reports whether the record is a transform of either sub-kind.
// Ordinary and UI-rect transforms are treated identically.
func IsTransform(r Record) bool {
	switch r.Entity() {
	case "Transform", "RectTransform":
		return true
	}
	return false
}

// ExtractTransforms pulls structural linkage from every transform-typed
// record. Transforms without a resolvable owning object are dropped; they
// cannot contribute edges to the object tree.
func ExtractTransforms(records []Record) []Transform {
	var transforms []Transform
	for _, r := range records {
		if !IsTransform(r) {
			continue
		}
		owner, ok := r.FileIDField("m_GameObject")
		if !ok {
			continue
		}
		t := Transform{
			FileID:   r.FileID,
			OwnerID:  owner,
			Children: r.FileIDList("m_Children"),
		}
		if father, ok := r.FileIDField("m_Father"); ok {
			t.FatherID = father
		}
		transforms = append(transforms, t)
	}
	return transforms
}

// RootOrder returns the transform fileIDs declared by the scene's explicit
// root-ordering section, in authored order. Returns nil when the scene has
// no such section.
func RootOrder(records []Record) []string {
	for _, r := range records {
		if r.Entity() == "SceneRoots" {
			return r.FileIDList("m_Roots")
		}
	}
	return nil
}
