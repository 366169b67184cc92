// Package cli implements the cobra command surface for plansift.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plansift/plansift-cli/internal/adapters/driven/config/file"
	"github.com/plansift/plansift-cli/internal/core/domain"
	"github.com/plansift/plansift-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "plansift",
	Short: "Collect and analyse plan observation files",
	Long: `plansift is a two-stage offline batch pipeline.

The collect stage walks a directory tree of per-entity JSON plan files,
filters and normalises their thoughts, and writes a full aggregate plus a
condensed projection. The analyze stage reads the condensed projection
and reports descending-frequency counts of content and factors.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.plansift/config.toml)")
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadSettings opens the settings store and returns the stored settings.
func loadSettings() (domain.Settings, error) {
	store, err := file.NewSettingsStore(configPath)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("opening settings: %w", err)
	}
	settings, err := store.Load()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	logger.Debug("settings loaded from %s", store.Path())
	return settings, nil
}

// writeJSON marshals v with the given indent and writes it to path.
// Writing is all-or-nothing per artifact; a failure is fatal to it.
func writeJSON(path string, v any, indent string) error {
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
