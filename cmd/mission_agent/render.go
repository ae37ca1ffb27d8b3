package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/mission-reporter/internal/config"
	"github.com/jonathan/mission-reporter/internal/export"
	"github.com/jonathan/mission-reporter/internal/rendering"
	"github.com/jonathan/mission-reporter/internal/templates"
	"github.com/jonathan/mission-reporter/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one mission into a report document",
	Long: `Renders a single mission record into a formatted report document using the
active template. Template resolution never fails: a custom template, then the
fetched default asset, then the embedded fallback.`,
	RunE: runRender,
}

var (
	renderConfigPath   string
	renderMissionFile  string
	renderTemplateFile string
	renderOutputFile   string
	renderName         string
	renderProfession   string
	renderCNI          string
	renderPPN          string
	renderAssetBaseURL string
)

func init() {
	renderCmd.Flags().StringVar(&renderConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	renderCmd.Flags().StringVarP(&renderMissionFile, "mission", "m", "", "Path to a mission record JSON file (required)")
	renderCmd.Flags().StringVarP(&renderTemplateFile, "templates", "t", "", "Path to a template configuration JSON file")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output document (defaults to {date}_{title}.docx)")
	renderCmd.Flags().StringVarP(&renderName, "name", "n", "", "Reporter full name")
	renderCmd.Flags().StringVar(&renderProfession, "profession", "", "Reporter profession")
	renderCmd.Flags().StringVar(&renderCNI, "cni", "", "Reporter CNI identifier")
	renderCmd.Flags().StringVar(&renderPPN, "ppn", "", "Reporter PPN identifier")
	renderCmd.Flags().StringVar(&renderAssetBaseURL, "asset-base-url", "", "Base URL serving the default template asset (optional, defaults to ASSET_BASE_URL env var)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(renderConfigPath, config.Config{
		Templates:    renderTemplateFile,
		FullName:     renderName,
		Profession:   renderProfession,
		CNI:          renderCNI,
		PPN:          renderPPN,
		AssetBaseURL: renderAssetBaseURL,
	})
	if err != nil {
		return err
	}

	if renderMissionFile == "" {
		return fmt.Errorf("--mission is required")
	}

	data, err := os.ReadFile(renderMissionFile)
	if err != nil {
		return fmt.Errorf("failed to read mission file: %w", err)
	}
	var mission types.MissionRecord
	if err := json.Unmarshal(data, &mission); err != nil {
		return fmt.Errorf("failed to parse mission JSON: %w", err)
	}
	if err := mission.Validate(); err != nil {
		return fmt.Errorf("invalid mission: %w", err)
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

	doc, err := exporter.RenderMission(context.Background(), mission, templateCfg, profile)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	outputFile := renderOutputFile
	if outputFile == "" {
		outputFile = export.DocumentName(mission)
	}
	if err := writeOutput(outputFile, doc); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully rendered report document\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputFile)
	return nil
}

// mergedConfig loads an optional config file and merges flag values over it.
func mergedConfig(configPath string, flags config.Config) (config.Config, error) {
	cfg := flags
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = flags.MergeWithDefaults(*loaded)
	}
	if cfg.AssetBaseURL == "" {
		cfg.AssetBaseURL = os.Getenv("ASSET_BASE_URL")
	}
	return cfg, nil
}
