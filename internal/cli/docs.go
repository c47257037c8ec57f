package cli

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	builtindocs "github.com/tbruun/scenedoctor/docs"
	"github.com/tbruun/scenedoctor/internal/ui"
)

// docsTopicView is one bundled docs topic.
type docsTopicView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse bundled documentation",
	Long: `Browse long-form documentation bundled into the scd binary.

Examples:
  scd docs
  scd docs scene-format
  scd docs broken-refs`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listDocsTopics()
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild scd so bundled docs are available")
		}

		if len(args) == 0 {
			return outputDocsTopics(topics)
		}
		return outputDocsTopic(topics, args[0])
	},
}

func listDocsTopics() ([]docsTopicView, error) {
	entries, err := fs.ReadDir(builtindocs.FS, ".")
	if err != nil {
		return nil, err
	}

	var topics []docsTopicView
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		id := strings.TrimSuffix(name, ".md")
		topics = append(topics, docsTopicView{ID: id, Title: docsTopicTitle(name)})
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })
	return topics, nil
}

// docsTopicTitle reads the first markdown heading, falling back to the ID.
func docsTopicTitle(name string) string {
	content, err := fs.ReadFile(builtindocs.FS, name)
	if err != nil {
		return strings.TrimSuffix(name, ".md")
	}
	for _, line := range strings.Split(string(content), "\n") {
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return strings.TrimSuffix(name, ".md")
}

func outputDocsTopics(topics []docsTopicView) error {
	if isJSONOutput() {
		outputSuccess(topics, &Meta{Count: len(topics)})
		return nil
	}

	fmt.Println(ui.Header("Documentation topics"))
	tbl := ui.NewTable(2)
	for _, t := range topics {
		tbl.AddRow("  "+t.ID, ui.Muted.Render(t.Title))
	}
	fmt.Print(tbl.String())
	fmt.Println(ui.Hint("Read one with: scd docs <topic>"))
	return nil
}

func outputDocsTopic(topics []docsTopicView, id string) error {
	var found bool
	for _, t := range topics {
		if t.ID == id {
			found = true
			break
		}
	}
	if !found {
		return handleErrorMsg(ErrInvalidInput,
			fmt.Sprintf("unknown docs topic: %s", id),
			"Run 'scd docs' to list topics")
	}

	content, err := fs.ReadFile(builtindocs.FS, id+".md")
	if err != nil {
		return handleError(ErrInternal, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]string{"id": id, "content": string(content)}, nil)
		return nil
	}

	if isatty.IsTerminal(os.Stdout.Fd()) {
		display := ui.NewDisplayContext()
		rendered, err := ui.RenderMarkdown(string(content), display.TermWidth)
		if err == nil {
			fmt.Print(rendered)
			return nil
		}
	}
	fmt.Print(string(content))
	return nil
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
