package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbruun/scenedoctor/internal/index"
	"github.com/tbruun/scenedoctor/internal/meta"
	"github.com/tbruun/scenedoctor/internal/ui"
)

var guidsCmd = &cobra.Command{
	Use:   "guids",
	Short: "Manage the asset GUID index cache",
}

var guidsRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the GUID index from .meta sidecars",
	Long: `Walks the project for .meta sidecars and rebuilds the cached
guid -> asset path index. Corrupted sidecars are skipped.

Examples:
  scd guids rebuild
  scd guids rebuild --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectPath := getProjectPath()
		start := time.Now()

		idx, err := meta.Build(projectPath)
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		db, rebuilt, err := index.OpenWithRebuild(projectPath)
		if err != nil {
			if errors.Is(err, index.ErrCacheLocked) {
				return handleError(ErrCacheLocked, err, "Another scd process is rebuilding the cache; retry shortly")
			}
			return handleError(ErrDatabaseError, err, "")
		}
		defer db.Close()

		if err := db.ReplaceGUIDs(idx.All()); err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(GUIDRebuildResult{
				GUIDCount:    idx.Len(),
				CacheRebuilt: rebuilt,
			}, &Meta{Count: idx.Len(), QueryTimeMs: time.Since(start).Milliseconds()})
			return nil
		}

		fmt.Println(ui.Successf("Indexed %d assets", idx.Len()))
		return nil
	},
}

// GUIDRebuildResult is the JSON output of guids rebuild.
type GUIDRebuildResult struct {
	GUIDCount    int  `json:"guid_count"`
	CacheRebuilt bool `json:"cache_rebuilt"`
}

// GUIDLookupResult is the JSON output of guids lookup.
type GUIDLookupResult struct {
	GUID      string `json:"guid"`
	AssetPath string `json:"asset_path"`
}

var guidsLookupCmd = &cobra.Command{
	Use:   "lookup <guid>",
	Short: "Resolve a GUID to its asset path",
	Long: `Resolves a GUID against the cached index.

Examples:
  scd guids lookup 7df9547b4fe4e2a4b94dbdf12ba6c3c7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := index.Open(getProjectPath())
		if err != nil {
			return handleError(ErrDatabaseError, err, "Run 'scd guids rebuild' first")
		}
		defer db.Close()

		assetPath, err := db.LookupGUID(args[0])
		if err != nil {
			if errors.Is(err, index.ErrGUIDNotFound) {
				return handleErrorMsg(ErrGUIDNotFound,
					fmt.Sprintf("guid %s not found in cache", args[0]),
					"Run 'scd guids rebuild' to refresh the index")
			}
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(GUIDLookupResult{GUID: args[0], AssetPath: assetPath}, nil)
			return nil
		}

		fmt.Println(ui.FilePath(assetPath))
		return nil
	},
}

func init() {
	guidsCmd.AddCommand(guidsRebuildCmd)
	guidsCmd.AddCommand(guidsLookupCmd)
	rootCmd.AddCommand(guidsCmd)
}
