package unity

// GameObject is the identity extracted from a GameObject record.
type GameObject struct {
	FileID string
	Name   string
}

// ExtractGameObjects pulls object identity from every record carrying the
// GameObject entity marker. Records with an empty or missing m_Name are
// discarded entirely: they never become nodes and cannot be referenced later.
func ExtractGameObjects(records []Record) []GameObject {
	var objects []GameObject
	for _, r := range records {
		if r.Entity() != "GameObject" {
			continue
		}
		name, ok := r.Scalar("m_Name")
		if !ok || name == "" {
			continue
		}
		objects = append(objects, GameObject{FileID: r.FileID, Name: name})
	}
	return objects
}
