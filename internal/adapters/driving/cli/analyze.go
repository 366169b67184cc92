package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/plansift/plansift-cli/internal/core/domain"
	"github.com/plansift/plansift-cli/internal/core/services"
)

var (
	analyzeInput  string
	analyzeOutput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute frequency counts over a condensed projection",
	Long: `Reads the condensed projection written by collect and reports how often
each distinct content string and each distinct factor occurs, ordered
from highest count to lowest. Unlike collect, malformed input is fatal:
the analyzer has no per-record recovery.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "condensed projection JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "output JSON file for the frequency report (required)")
	_ = analyzeCmd.MarkFlagRequired("input")
	_ = analyzeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	inputPath, err := filepath.Abs(analyzeInput)
	if err != nil {
		return fmt.Errorf("resolving input path: %w", err)
	}
	outputPath, err := filepath.Abs(analyzeOutput)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}

	cmd.Println("Reading and analyzing file...")

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	var records []domain.ShortRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	report := services.NewAnalyzerService().Analyze(records)

	if err := writeJSON(outputPath, report, " "); err != nil {
		return err
	}

	cmd.Println("\nAnalysis Summary:")
	cmd.Printf("Total unique content entries: %d\n", report.ContentCounts.Len())
	cmd.Printf("Total unique factors: %d\n", report.FactorCounts.Len())
	return nil
}
