package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tbruun/scenedoctor/internal/hierarchy"
	"github.com/tbruun/scenedoctor/internal/project"
	"github.com/tbruun/scenedoctor/internal/ui"
	"github.com/tbruun/scenedoctor/internal/unity"
)

var treeFlat bool

// TreeResult is the JSON output of the tree command for one scene.
type TreeResult struct {
	Scene   string               `json:"scene"`
	RelPath string               `json:"rel_path"`
	Roots   []*hierarchy.Node    `json:"roots,omitempty"`
	Flat    []hierarchy.FlatNode `json:"flat,omitempty"`
}

var treeCmd = &cobra.Command{
	Use:   "tree [scene]",
	Short: "Show the GameObject hierarchy of a scene",
	Long: `Reconstructs and prints a scene's GameObject tree. With no argument,
dumps every discovered scene. Prefab files are accepted when addressed
by path.

Examples:
  scd tree MainMenu
  scd tree Assets/Prefabs/Player.prefab
  scd tree --flat --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var scenes []project.Scene
		if len(args) == 1 {
			scene, err := resolveSceneArg(args[0])
			if err != nil {
				return handleError(ErrSceneNotFound, err, "Run 'scd scenes' to list discovered scenes")
			}
			scenes = []project.Scene{scene}
		} else {
			var err error
			scenes, err = project.DiscoverScenes(getProjectPath())
			if err != nil {
				return handleError(ErrFileReadError, err, "")
			}
		}

		var results []TreeResult
		for _, scene := range scenes {
			content, err := os.ReadFile(scene.Path)
			if err != nil {
				if len(scenes) == 1 {
					return handleError(ErrFileReadError, err, "")
				}
				continue
			}
			graph := hierarchy.Build(unity.SplitRecords(string(content)))

			result := TreeResult{Scene: scene.Name, RelPath: scene.RelPath}
			if treeFlat {
				result.Flat = graph.Flatten()
			} else {
				result.Roots = graph.Roots
			}
			results = append(results, result)

			if !isJSONOutput() {
				fmt.Printf("%s %s\n", ui.SceneName(scene.Name), ui.Muted.Render(scene.RelPath))
				if treeFlat {
					for _, n := range result.Flat {
						fmt.Printf("  %d  %s\n", n.Depth, n.Name)
					}
				} else if dump := graph.Render(); dump != "" {
					fmt.Println(dump)
				}
				fmt.Println()
			}
		}

		if isJSONOutput() {
			outputSuccess(results, &Meta{Count: len(results)})
		}
		return nil
	},
}

func init() {
	treeCmd.Flags().BoolVar(&treeFlat, "flat", false, "Flattened node list instead of an indented tree")
	rootCmd.AddCommand(treeCmd)
}
