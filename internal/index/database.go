// Package index caches analysis results in SQLite.
//
// The cache lives under the project's dot-directory and holds the asset
// identifier index, per-scene summaries, and the issues from the last
// reference scan. It is a cache, never the source of truth: any schema
// mismatch deletes and recreates it.
package index

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tbruun/scenedoctor/internal/check"
)

// CurrentDBVersion is bumped on any cache schema change.
const CurrentDBVersion = 2

// CacheDirName is the per-project cache directory.
const CacheDirName = ".scenedoctor"

var (
	// ErrCacheLocked indicates another process is rebuilding the cache.
	ErrCacheLocked = errors.New("cache is locked for rebuild")
)

// Database is the SQLite cache handle.
type Database struct {
	db *sql.DB
}

// DB returns the underlying sql.DB for advanced queries.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Close closes the database.
func (d *Database) Close() error {
	return d.db.Close()
}

// Open opens or creates the cache database for a project.
func Open(projectPath string) (*Database, error) {
	dbDir := filepath.Join(projectPath, CacheDirName)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", CacheDirName, err)
	}

	dbPath := filepath.Join(dbDir, "index.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	d := &Database{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// OpenWithRebuild opens the cache, deleting and recreating it when the
// stored schema version does not match. Returns (database, wasRebuilt, error).
func OpenWithRebuild(projectPath string) (*Database, bool, error) {
	dbDir := filepath.Join(projectPath, CacheDirName)
	dbPath := filepath.Join(dbDir, "index.db")

	lock, err := acquireCacheLock(dbDir)
	if err != nil {
		return nil, false, err
	}
	defer lock.Release()

	if _, err := os.Stat(dbPath); err == nil {
		db, err := sql.Open("sqlite", dbPath)
		if err == nil {
			compatible := isSchemaCompatible(db)
			db.Close()
			if !compatible {
				if err := removeDatabaseFiles(dbPath); err != nil {
					return nil, false, err
				}
				fresh, err := Open(projectPath)
				return fresh, true, err
			}
		}
	}

	db, err := Open(projectPath)
	return db, false, err
}

type cacheLock struct {
	file *os.File
}

func acquireCacheLock(dbDir string) (*cacheLock, error) {
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", CacheDirName, err)
	}

	lockPath := filepath.Join(dbDir, "index.lock")
	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache lock: %w", err)
	}

	if err := lockFileExclusiveNonBlocking(lockFile); err != nil {
		lockFile.Close()
		if isWouldBlockError(err) {
			return nil, ErrCacheLocked
		}
		return nil, fmt.Errorf("failed to acquire cache lock: %w", err)
	}

	return &cacheLock{file: lockFile}, nil
}

func (l *cacheLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlockFile(l.file)
	closeErr := l.file.Close()
	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}

func removeDatabaseFiles(dbPath string) error {
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", p, err)
		}
	}
	return nil
}

// isSchemaCompatible checks the stored schema version against the current one.
func isSchemaCompatible(db *sql.DB) bool {
	var version string
	err := db.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&version)
	if err != nil {
		return false
	}
	return version == fmt.Sprintf("%d", CurrentDBVersion)
}

func (d *Database) initialize() error {
	schema := `
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		-- Asset identifier index: guid -> asset path (sidecar suffix stripped)
		CREATE TABLE IF NOT EXISTS guids (
			guid TEXT PRIMARY KEY,
			asset_path TEXT NOT NULL,
			indexed_at INTEGER
		);

		-- Per-scene summary from the last analysis
		CREATE TABLE IF NOT EXISTS scenes (
			rel_path TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			object_count INTEGER NOT NULL,
			root_count INTEGER NOT NULL,
			broken_refs INTEGER NOT NULL,
			file_mtime INTEGER,
			scanned_at INTEGER
		);

		-- Broken references from the last scan
		CREATE TABLE IF NOT EXISTS issues (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_rel_path TEXT NOT NULL,
			scene TEXT NOT NULL,
			object_name TEXT NOT NULL,
			asset_type TEXT NOT NULL,
			kind TEXT NOT NULL,
			guid TEXT NOT NULL,
			description TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_guids_path ON guids(asset_path);
		CREATE INDEX IF NOT EXISTS idx_issues_scene ON issues(scene_rel_path);
		CREATE INDEX IF NOT EXISTS idx_issues_type ON issues(asset_type);
	`

	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize cache schema: %w", err)
	}

	_, err := d.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('version', ?)`,
		fmt.Sprintf("%d", CurrentDBVersion))
	if err != nil {
		return fmt.Errorf("failed to set cache version: %w", err)
	}
	return nil
}

// ReplaceGUIDs replaces the cached asset identifier index wholesale.
func (d *Database) ReplaceGUIDs(guids map[string]string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin guid replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM guids`); err != nil {
		return fmt.Errorf("clear guids: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO guids (guid, asset_path, indexed_at) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare guid insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for guid, assetPath := range guids {
		if _, err := stmt.Exec(guid, assetPath, now); err != nil {
			return fmt.Errorf("insert guid %s: %w", guid, err)
		}
	}

	return tx.Commit()
}

// SceneSummary is one row of the scenes table.
type SceneSummary struct {
	RelPath     string `json:"rel_path"`
	Name        string `json:"name"`
	ObjectCount int    `json:"object_count"`
	RootCount   int    `json:"root_count"`
	BrokenRefs  int    `json:"broken_refs"`
}

// UpsertScene records a scene's summary from the latest analysis.
func (d *Database) UpsertScene(s SceneSummary, mtime int64) error {
	_, err := d.db.Exec(`
		INSERT INTO scenes (rel_path, name, object_count, root_count, broken_refs, file_mtime, scanned_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(rel_path) DO UPDATE SET
			name = excluded.name,
			object_count = excluded.object_count,
			root_count = excluded.root_count,
			broken_refs = excluded.broken_refs,
			file_mtime = excluded.file_mtime,
			scanned_at = excluded.scanned_at`,
		s.RelPath, s.Name, s.ObjectCount, s.RootCount, s.BrokenRefs,
		mtime, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("upsert scene %s: %w", s.RelPath, err)
	}
	return nil
}

// ReplaceSceneIssues replaces a scene's cached issues with the latest scan.
func (d *Database) ReplaceSceneIssues(sceneRelPath string, issues []check.Issue) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin issue replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM issues WHERE scene_rel_path = ?`, sceneRelPath); err != nil {
		return fmt.Errorf("clear issues for %s: %w", sceneRelPath, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO issues (scene_rel_path, scene, object_name, asset_type, kind, guid, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare issue insert: %w", err)
	}
	defer stmt.Close()

	for _, issue := range issues {
		if _, err := stmt.Exec(sceneRelPath, issue.Scene, issue.ObjectName,
			issue.AssetType, issue.Kind, issue.GUID, issue.Description); err != nil {
			return fmt.Errorf("insert issue: %w", err)
		}
	}

	return tx.Commit()
}
