package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/plansift/plansift-cli/internal/adapters/driven/storage/sqlite"
	"github.com/plansift/plansift-cli/internal/adapters/driven/watcher"
	"github.com/plansift/plansift-cli/internal/connectors/filesystem"
	"github.com/plansift/plansift-cli/internal/core/domain"
	"github.com/plansift/plansift-cli/internal/core/ports/driven"
	"github.com/plansift/plansift-cli/internal/core/services"
	"github.com/plansift/plansift-cli/internal/logger"
)

var (
	collectInput   string
	collectOutput  string
	collectWatch   bool
	collectCatalog string
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect plan files into aggregate artifacts",
	Long: `Walks the input directory's numbered subdirectories, parses each JSON
plan file, filters and sorts its thoughts, and writes two artifacts into
the output directory: the full aggregate and the condensed projection.

Per-file and per-thought defects never abort the run; they are reported
at the end and recorded in the aggregate's errors list.`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().StringVarP(&collectInput, "input", "i", "", "input directory containing plan folders (required)")
	collectCmd.Flags().StringVarP(&collectOutput, "output", "o", "", "output directory for parsed results (required)")
	collectCmd.Flags().BoolVar(&collectWatch, "watch", false, "re-collect whenever the input tree changes")
	collectCmd.Flags().StringVar(&collectCatalog, "catalog", "", "record runs into a SQLite catalog at this path")
	_ = collectCmd.MarkFlagRequired("input")
	_ = collectCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	source, err := filesystem.New(collectInput)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}

	outputDir, err := filepath.Abs(collectOutput)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var catalog driven.PlanCatalog
	catalogPath := collectCatalog
	if catalogPath == "" {
		catalogPath = settings.Catalog.Path
	}
	if catalogPath != "" {
		cat, err := sqlite.NewCatalog(catalogPath)
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		defer cat.Close()
		catalog = cat
	}

	collector := services.NewCollectorService(source, settings.Exclusions())
	ctx := cmd.Context()

	if err := collectOnce(ctx, cmd, collector, catalog, settings, outputDir); err != nil {
		return err
	}
	if !collectWatch {
		return nil
	}
	return watchAndCollect(ctx, cmd, collector, catalog, settings, outputDir, source.Root())
}

// collectOnce runs one full collection pass and writes both artifacts.
func collectOnce(
	ctx context.Context,
	cmd *cobra.Command,
	collector *services.CollectorService,
	catalog driven.PlanCatalog,
	settings domain.Settings,
	outputDir string,
) error {
	cmd.Println("Starting plan parsing...")

	agg, condensed, err := collector.Collect(ctx)
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	fullPath := filepath.Join(outputDir, settings.Output.FullFile)
	cmd.Printf("\nSaving full results to %s\n", fullPath)
	if err := writeJSON(fullPath, agg, "  "); err != nil {
		return err
	}

	shortPath := filepath.Join(outputDir, settings.Output.ShortFile)
	cmd.Printf("Saving condensed results to %s\n", shortPath)
	if err := writeJSON(shortPath, condensed, " "); err != nil {
		return err
	}

	if catalog != nil {
		runID, err := catalog.RecordRun(ctx, agg)
		if err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		cmd.Printf("Recorded run %s in catalog\n", runID)
	}

	cmd.Println("\nProcessing complete!")
	cmd.Printf("Total directories processed: %d\n", agg.Metadata.TotalDirectories)
	cmd.Printf("Total plans processed: %d\n", agg.Metadata.TotalPlans)

	if len(agg.Errors) > 0 {
		cmd.Println("\nErrors encountered:")
		for _, e := range agg.Errors {
			cmd.Printf("- %s\n", e)
		}
	}
	return nil
}

// watchAndCollect re-runs collection whenever the input tree changes.
func watchAndCollect(
	ctx context.Context,
	cmd *cobra.Command,
	collector *services.CollectorService,
	catalog driven.PlanCatalog,
	settings domain.Settings,
	outputDir string,
	root string,
) error {
	w, err := watcher.New()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	events, err := w.Watch(ctx, root)
	if err != nil {
		return fmt.Errorf("watching %s: %w", root, err)
	}

	cmd.Printf("Watching %s for changes (interrupt to stop)...\n", root)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			logger.Debug("change detected: %s", event.Path)
			if err := collectOnce(ctx, cmd, collector, catalog, settings, outputDir); err != nil {
				return err
			}
		}
	}
}
