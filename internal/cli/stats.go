package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbruun/scenedoctor/internal/check"
	"github.com/tbruun/scenedoctor/internal/index"
	"github.com/tbruun/scenedoctor/internal/ui"
)

// StatsResult is the JSON output of the stats command.
type StatsResult struct {
	GUIDCount int                  `json:"guid_count"`
	Scenes    []index.SceneSummary `json:"scenes,omitempty"`
	Summary   check.Summary        `json:"summary"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cached analysis statistics",
	Long: `Displays aggregates from the analysis cache without rescanning.
Run 'scd check' first to populate it.

Examples:
  scd stats
  scd stats --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		db, err := index.Open(getProjectPath())
		if err != nil {
			return handleError(ErrDatabaseError, err, "Run 'scd check' to build the cache")
		}
		defer db.Close()

		guidCount, err := db.GUIDCount()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		scenes, err := db.Scenes()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		summary, err := db.Summary()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(StatsResult{
				GUIDCount: guidCount,
				Scenes:    scenes,
				Summary:   summary,
			}, &Meta{QueryTimeMs: time.Since(start).Milliseconds()})
			return nil
		}

		fmt.Println(ui.Header("Project Statistics"))
		fmt.Printf("%s  %s\n", ui.Muted.Render("Indexed assets:"), ui.Accent.Render(fmt.Sprintf("%d", guidCount)))
		fmt.Printf("%s  %s\n", ui.Muted.Render("Scanned scenes:"), ui.Accent.Render(fmt.Sprintf("%d", len(scenes))))
		fmt.Printf("%s  %s\n", ui.Muted.Render("Broken refs:   "), ui.Accent.Render(fmt.Sprintf("%d", summary.TotalBroken)))

		if len(scenes) > 0 {
			fmt.Println()
			tbl := ui.NewTable(4)
			tbl.AddRow("SCENE", "OBJECTS", "ROOTS", "BROKEN")
			for _, s := range scenes {
				tbl.AddRow(s.Name,
					fmt.Sprintf("%d", s.ObjectCount),
					fmt.Sprintf("%d", s.RootCount),
					fmt.Sprintf("%d", s.BrokenRefs))
			}
			fmt.Print(tbl.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
