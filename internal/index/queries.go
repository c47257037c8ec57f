package index

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/tbruun/scenedoctor/internal/check"
)

// ErrGUIDNotFound indicates the requested GUID is not in the cache.
var ErrGUIDNotFound = errors.New("guid not found in cache")

// LookupGUID resolves a GUID to its asset path from the cache.
func (d *Database) LookupGUID(guid string) (string, error) {
	var assetPath string
	err := d.db.QueryRow(`SELECT asset_path FROM guids WHERE guid = ?`, guid).Scan(&assetPath)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrGUIDNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup guid %s: %w", guid, err)
	}
	return assetPath, nil
}

// GUIDCount returns the number of cached guid mappings.
func (d *Database) GUIDCount() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM guids`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count guids: %w", err)
	}
	return n, nil
}

// Scenes returns the cached per-scene summaries, ordered by relative path.
func (d *Database) Scenes() ([]SceneSummary, error) {
	rows, err := d.db.Query(`
		SELECT rel_path, name, object_count, root_count, broken_refs
		FROM scenes ORDER BY rel_path`)
	if err != nil {
		return nil, fmt.Errorf("query scenes: %w", err)
	}
	defer rows.Close()

	var out []SceneSummary
	for rows.Next() {
		var s SceneSummary
		if err := rows.Scan(&s.RelPath, &s.Name, &s.ObjectCount, &s.RootCount, &s.BrokenRefs); err != nil {
			return nil, fmt.Errorf("scan scene row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Issues returns the cached issues, optionally filtered to one scene
// relative path. Ordered by insertion, which preserves record order.
func (d *Database) Issues(sceneRelPath string) ([]check.Issue, error) {
	query := `SELECT scene, object_name, asset_type, kind, guid, description FROM issues`
	var args []any
	if sceneRelPath != "" {
		query += ` WHERE scene_rel_path = ?`
		args = append(args, sceneRelPath)
	}
	query += ` ORDER BY id`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query issues: %w", err)
	}
	defer rows.Close()

	var out []check.Issue
	for rows.Next() {
		var issue check.Issue
		if err := rows.Scan(&issue.Scene, &issue.ObjectName, &issue.AssetType,
			&issue.Kind, &issue.GUID, &issue.Description); err != nil {
			return nil, fmt.Errorf("scan issue row: %w", err)
		}
		out = append(out, issue)
	}
	return out, rows.Err()
}

// Summary recomputes the project aggregates from the cached issues.
func (d *Database) Summary() (check.Summary, error) {
	issues, err := d.Issues("")
	if err != nil {
		return check.Summary{}, err
	}
	return check.Summarize(issues), nil
}
