// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbruun/scenedoctor/internal/config"
	"github.com/tbruun/scenedoctor/internal/ui"
)

var (
	// Global flags
	projectName     string // Named project from config
	projectPathFlag string // Explicit path
	configPath      string

	// Resolved values
	resolvedProjectPath string
	cfg                 *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "scd",
	Short: "Scene Doctor - analyze Unity scene files",
	Long: `Scene Doctor reconstructs GameObject hierarchies from Unity scene files
and validates asset GUID references against the project's .meta sidecars.

Point it at a Unity project root and it will find every .unity scene,
rebuild each scene's object tree, and report references to assets that
no longer exist in the project.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip project resolution for commands that don't need one
		switch cmd.Name() {
		case "completion", "help", "version", "docs":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		// Resolve project path: explicit path > named project > default
		if projectPathFlag != "" {
			resolvedProjectPath = projectPathFlag
		} else if projectName != "" {
			resolvedProjectPath, err = cfg.GetProjectPath(projectName)
			if err != nil {
				return fmt.Errorf("project '%s' not found\n\nAdd it under [projects] in %s", projectName, config.DefaultPath())
			}
		} else {
			resolvedProjectPath, err = cfg.GetProjectPath("")
			if err != nil {
				return fmt.Errorf(`no project specified

Either:
  1. Use --project <name> (from config)
  2. Use --project-path /path/to/unity/project
  3. Set default_project in %s`, config.DefaultPath())
			}
		}

		if _, err := os.Stat(resolvedProjectPath); os.IsNotExist(err) {
			return fmt.Errorf("project not found: %s", resolvedProjectPath)
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectName, "project", "p", "", "Named project from config")
	rootCmd.PersistentFlags().StringVar(&projectPathFlag, "project-path", "", "Explicit path to Unity project root")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getProjectPath returns the resolved project path.
func getProjectPath() string {
	return resolvedProjectPath
}

func loadGlobalConfig() (*config.Config, error) {
	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}
	return loadedCfg, nil
}
