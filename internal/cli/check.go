package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbruun/scenedoctor/internal/check"
	"github.com/tbruun/scenedoctor/internal/project"
	"github.com/tbruun/scenedoctor/internal/ui"
)

var checkJobs int

// CheckSceneResult is the per-scene slice of the check output.
type CheckSceneResult struct {
	Scene         string        `json:"scene"`
	RelPath       string        `json:"rel_path"`
	ObjectCount   int           `json:"object_count"`
	Issues        []check.Issue `json:"issues,omitempty"`
	ScriptClasses []string      `json:"script_classes,omitempty"`
	ReadError     string        `json:"read_error,omitempty"`
}

// CheckResult is the full check output.
type CheckResult struct {
	Scenes  []CheckSceneResult `json:"scenes"`
	Summary check.Summary      `json:"summary"`
}

var checkCmd = &cobra.Command{
	Use:   "check [scene]",
	Short: "Scan scenes for broken asset references",
	Long: `Scans every scene in the project (or a single named scene) for references
to assets whose GUID no longer resolves against the project's .meta sidecars.

Reports one issue per offending occurrence; repeated references to the same
missing asset are all listed. Results are cached for 'scd stats'.

Examples:
  scd check
  scd check MainMenu
  scd check Assets/Scenes/Level1.unity
  scd check --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectPath := getProjectPath()
		start := time.Now()

		var scenes []project.Scene
		if len(args) == 1 {
			scene, err := resolveSceneArg(args[0])
			if err != nil {
				return handleError(ErrSceneNotFound, err, "Run 'scd scenes' to list discovered scenes")
			}
			scenes = []project.Scene{scene}
		} else {
			var err error
			scenes, err = project.DiscoverScenes(projectPath)
			if err != nil {
				return handleError(ErrFileReadError, err, "")
			}
		}

		var spinner *ui.Spinner
		if !isJSONOutput() {
			spinner = ui.NewSpinner(fmt.Sprintf("Checking %d scenes", len(scenes)))
			spinner.Start()
		}

		analyzer, err := newAnalyzer(cmd.Context())
		if err != nil {
			if spinner != nil {
				spinner.Stop()
			}
			return handleError(ErrFileReadError, err, "")
		}
		analyzer.Workers = checkJobs

		results := analyzer.Run(cmd.Context(), scenes)
		if spinner != nil {
			spinner.Stop()
		}

		var allIssues []check.Issue
		out := CheckResult{Scenes: make([]CheckSceneResult, 0, len(results))}
		for _, r := range results {
			view := CheckSceneResult{
				Scene:         r.Scene.Name,
				RelPath:       r.Scene.RelPath,
				Issues:        r.Issues,
				ScriptClasses: r.ScriptClasses,
			}
			if r.Graph != nil {
				view.ObjectCount = r.Graph.Len()
			}
			if r.Err != nil {
				view.ReadError = r.Err.Error()
			}
			out.Scenes = append(out.Scenes, view)
			allIssues = append(allIssues, r.Issues...)
		}
		out.Summary = check.Summarize(allIssues)

		var warnings []Warning
		if err := writeAnalysisCache(projectPath, analyzer.Index, results); err != nil {
			warnings = append(warnings, Warning{
				Code:    WarnCacheWriteFailed,
				Message: fmt.Sprintf("failed to update analysis cache: %v", err),
			})
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(out, warnings, &Meta{
				Count:       out.Summary.TotalBroken,
				QueryTimeMs: time.Since(start).Milliseconds(),
			})
			return nil
		}

		printCheckResult(out)
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, ui.Warning(w.Message))
		}
		return nil
	},
}

func printCheckResult(out CheckResult) {
	for _, scene := range out.Scenes {
		if scene.ReadError != "" {
			fmt.Printf("%s %s\n", ui.SceneName(scene.Scene), ui.Warning("unreadable: "+scene.ReadError))
			continue
		}
		if len(scene.Issues) == 0 {
			continue
		}
		fmt.Printf("%s %s\n", ui.SceneName(scene.Scene), ui.Muted.Render(scene.RelPath))
		for _, issue := range scene.Issues {
			fmt.Printf("  %s %s\n", ui.SymbolError, issue.Description)
		}
		fmt.Println()
	}

	if out.Summary.TotalBroken == 0 {
		fmt.Println(ui.Successf("No broken references in %d scenes", len(out.Scenes)))
		return
	}

	fmt.Println(ui.Header("Summary"))
	fmt.Printf("  %d broken references across %d scenes\n",
		out.Summary.TotalBroken, out.Summary.AffectedScenes)
	tbl := ui.NewTable(2)
	for _, category := range out.Summary.Categories() {
		tbl.AddRow("  "+category, fmt.Sprintf("%d", out.Summary.ByCategory[category]))
	}
	fmt.Print(tbl.String())
}

func init() {
	checkCmd.Flags().IntVar(&checkJobs, "jobs", 0, "Number of parallel scene workers (default: CPU count)")
	rootCmd.AddCommand(checkCmd)
}
