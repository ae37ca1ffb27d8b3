package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/mission-reporter/internal/config"
	"github.com/jonathan/mission-reporter/internal/export"
	"github.com/jonathan/mission-reporter/internal/observability"
	"github.com/jonathan/mission-reporter/internal/rendering"
	"github.com/jonathan/mission-reporter/internal/templates"
	"github.com/jonathan/mission-reporter/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a date range of missions as a batch archive",
	Long: `Renders every mission dated within the inclusive range into a report document
and packs the results into one zip archive. Missions whose render fails are
skipped and reported; the batch succeeds as long as at least one document
renders.`,
	RunE: runExport,
}

var (
	exportConfigPath   string
	exportMissionsFile string
	exportTemplateFile string
	exportStart        string
	exportEnd          string
	exportOutputDir    string
	exportName         string
	exportProfession   string
	exportCNI          string
	exportPPN          string
	exportAssetBaseURL string
	exportVerbose      bool
)

func init() {
	exportCmd.Flags().StringVar(&exportConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	exportCmd.Flags().StringVarP(&exportMissionsFile, "missions", "m", "", "Path to a missions JSON file (required)")
	exportCmd.Flags().StringVarP(&exportTemplateFile, "templates", "t", "", "Path to a template configuration JSON file")
	exportCmd.Flags().StringVar(&exportStart, "start", "", "Range start date, YYYY-MM-DD (required)")
	exportCmd.Flags().StringVar(&exportEnd, "end", "", "Range end date, YYYY-MM-DD, inclusive (required)")
	exportCmd.Flags().StringVarP(&exportOutputDir, "out", "o", ".", "Directory to write the archive into")
	exportCmd.Flags().StringVarP(&exportName, "name", "n", "", "Reporter full name")
	exportCmd.Flags().StringVar(&exportProfession, "profession", "", "Reporter profession")
	exportCmd.Flags().StringVar(&exportCNI, "cni", "", "Reporter CNI identifier")
	exportCmd.Flags().StringVar(&exportPPN, "ppn", "", "Reporter PPN identifier")
	exportCmd.Flags().StringVar(&exportAssetBaseURL, "asset-base-url", "", "Base URL serving the default template asset (optional, defaults to ASSET_BASE_URL env var)")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print detailed export report")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(exportConfigPath, config.Config{
		Missions:     exportMissionsFile,
		Templates:    exportTemplateFile,
		FullName:     exportName,
		Profession:   exportProfession,
		CNI:          exportCNI,
		PPN:          exportPPN,
		AssetBaseURL: exportAssetBaseURL,
	})
	if err != nil {
		return err
	}

	if cfg.Missions == "" {
		return fmt.Errorf("--missions is required")
	}
	if exportStart == "" || exportEnd == "" {
		return fmt.Errorf("--start and --end are required")
	}

	missions, err := loadMissions(cfg.Missions)
	if err != nil {
		return err
	}

	templateCfg, err := loadExportConfiguration(cfg.Templates)
	if err != nil {
		return err
	}

	resolver, err := templates.NewResolver(cfg.AssetBaseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create template resolver: %w", err)
	}

	exporter := export.NewExporter(resolver, rendering.NewRenderer())
	profile := types.UserProfile{
		FullName:   cfg.FullName,
		Profession: cfg.Profession,
		CNI:        cfg.CNI,
		PPN:        cfg.PPN,
	}
	rng := types.DateRange{Start: exportStart, End: exportEnd}

	result, err := exporter.ExportBatch(context.Background(), missions, rng, templateCfg, profile)
	if err != nil {
		var empty *export.EmptySelectionError
		if errors.As(err, &empty) {
			return fmt.Errorf("no missions dated between %s and %s", exportStart, exportEnd)
		}
		return fmt.Errorf("export failed: %w", err)
	}

	outputFile := filepath.Join(exportOutputDir, result.Filename)
	if err := writeOutput(outputFile, result.Data); err != nil {
		return err
	}

	if exportVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintExportReport(result)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Exported %d of %d mission(s)\n", result.Report.Succeeded(), result.Report.Selected)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputFile)
	return nil
}
