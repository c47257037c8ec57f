package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbruun/scenedoctor/internal/project"
	"github.com/tbruun/scenedoctor/internal/ui"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List scenes discovered in the project",
	Long: `Walks the project tree for .unity scene files, skipping hidden
directories and the analysis cache.

Examples:
  scd scenes
  scd scenes --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenes, err := project.DiscoverScenes(getProjectPath())
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(scenes, &Meta{Count: len(scenes)})
			return nil
		}

		if len(scenes) == 0 {
			fmt.Println(ui.Info("No scenes found"))
			return nil
		}

		tbl := ui.NewTable(2)
		for _, s := range scenes {
			tbl.AddRow(s.Name, ui.Muted.Render(s.RelPath))
		}
		fmt.Print(tbl.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scenesCmd)
}
