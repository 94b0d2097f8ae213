package controllers

import (
	"encoding/json"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/terraforge/config"
	"github.com/rios0rios0/terraforge/internal/domain/entities"
)

// loadConfig resolves the --config flag (falling back to the standard
// locations) and loads the settings file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf(
				"no config file found: %w (specify one with --config or create terraforge.yaml)",
				err,
			)
		}
		cfgPath = found
	}

	logger.Debugf("Using config file: %s", cfgPath)
	return config.Load(cfgPath)
}

// printJSON writes an API result to stdout as indented JSON.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Errorf("Failed to render result: %v", err)
		return
	}
	fmt.Println(string(out))
}

// splitRepo splits an "owner/repo" identifier.
func splitRepo(full string) (string, string, error) {
	owner, repo, ok := strings.Cut(full, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/repo", full)
	}
	return owner, repo, nil
}

// parsePaths converts repeated "dir" or "dir:workspace" flag values into
// project paths. The workspace defaults to "default".
func parsePaths(raw []string) []entities.ProjectPath {
	paths := make([]entities.ProjectPath, 0, len(raw))
	for _, item := range raw {
		dir, workspace, ok := strings.Cut(item, ":")
		if !ok || workspace == "" {
			workspace = "default"
		}
		paths = append(paths, entities.ProjectPath{
			Directory: dir,
			Workspace: workspace,
		})
	}
	return paths
}
