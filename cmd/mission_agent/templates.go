package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/mission-reporter/internal/codec"
	"github.com/jonathan/mission-reporter/internal/observability"
	"github.com/jonathan/mission-reporter/internal/types"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage the custom template library",
	Long: `Manages the template configuration file: list, add, and remove custom
templates, and select which template renders use. Removing the active
template resets the selection to the built-in default.`,
}

var templatesFile string

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates and the active selection",
	RunE:  runTemplatesList,
}

var templatesAddCmd = &cobra.Command{
	Use:   "add <document-file>",
	Short: "Add a custom template from a document file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesAdd,
}

var templatesAddName string

var templatesRemoveCmd = &cobra.Command{
	Use:   "remove <template-id>",
	Short: "Remove a custom template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesRemove,
}

var templatesUseCmd = &cobra.Command{
	Use:   "use <template-id>",
	Short: "Select which template renders use ('default' for the built-in)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesUse,
}

func init() {
	templatesCmd.PersistentFlags().StringVarP(&templatesFile, "templates", "t", "templates.json", "Path to the template configuration JSON file")
	templatesAddCmd.Flags().StringVarP(&templatesAddName, "name", "n", "", "Display name for the template (defaults to the file name)")

	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesAddCmd)
	templatesCmd.AddCommand(templatesRemoveCmd)
	templatesCmd.AddCommand(templatesUseCmd)
	rootCmd.AddCommand(templatesCmd)
}

// loadTemplatesFileOrDefault tolerates a missing configuration file so that
// the first "templates add" can bootstrap it.
func loadTemplatesFileOrDefault(path string) (types.ExportConfiguration, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return types.ExportConfiguration{ActiveTemplateID: types.DefaultTemplateID}, nil
	}
	return loadExportConfiguration(path)
}

func runTemplatesList(_ *cobra.Command, _ []string) error {
	cfg, err := loadTemplatesFileOrDefault(templatesFile)
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintConfiguration(&cfg)
	return nil
}

func runTemplatesAdd(_ *cobra.Command, args []string) error {
	documentFile := args[0]

	cfg, err := loadTemplatesFileOrDefault(templatesFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(documentFile)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}

	name := templatesAddName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(documentFile), filepath.Ext(documentFile))
	}

	tpl := types.TemplateDescriptor{
		ID:   uuid.NewString(),
		Name: name,
		Data: codec.Encode(data),
	}
	cfg.CustomTemplates = append(cfg.CustomTemplates, tpl)

	if err := saveExportConfiguration(templatesFile, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Added template %q [%s]\n", name, tpl.ID)
	return nil
}

func runTemplatesRemove(_ *cobra.Command, args []string) error {
	id := args[0]
	if id == types.DefaultTemplateID {
		return fmt.Errorf("the default template cannot be removed")
	}

	cfg, err := loadTemplatesFileOrDefault(templatesFile)
	if err != nil {
		return err
	}

	if !cfg.RemoveTemplate(id) {
		return fmt.Errorf("template not found: %s", id)
	}

	if err := saveExportConfiguration(templatesFile, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Removed template %s (active: %s)\n", id, cfg.ActiveTemplateID)
	return nil
}

func runTemplatesUse(_ *cobra.Command, args []string) error {
	id := args[0]

	cfg, err := loadTemplatesFileOrDefault(templatesFile)
	if err != nil {
		return err
	}

	if id != types.DefaultTemplateID {
		if _, ok := cfg.FindTemplate(id); !ok {
			return fmt.Errorf("template not found: %s", id)
		}
	}
	cfg.ActiveTemplateID = id

	if err := saveExportConfiguration(templatesFile, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Active template set to %s\n", id)
	return nil
}
