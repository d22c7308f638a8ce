package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storyport/storyport/internal/load"
	"github.com/storyport/storyport/internal/model"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check authored stories and country tables for defects",
	Long: `Validate runs the authoring-time checks the render engine degrades
around instead of failing on: alias cycles, dangling parent references,
kind-flag contract violations, template references to undefined markers,
and country tables with exhausted pools.

Exits non-zero when any error-severity finding exists.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	stories, err := load.Stories(cfg.Data.StoriesDir)
	if err != nil {
		return fmt.Errorf("loading stories: %w", err)
	}
	countries, err := load.Countries(cfg.Data.CountriesDir)
	if err != nil {
		return fmt.Errorf("loading countries: %w", err)
	}

	errors := 0
	report := func(scope string, diags []model.Diagnostic) {
		for _, d := range diags {
			if d.Severity == model.DiagError {
				errors++
			}
			key := d.Key
			if key != "" {
				key = " " + key
			}
			fmt.Fprintf(os.Stderr, "%-7s %s%s: %s\n", d.Severity, scope, key, d.Message)
		}
	}

	for _, story := range stories {
		report("story/"+story.Slug, load.ValidateStory(story))
	}
	for _, country := range countries {
		report("country/"+country.Code, load.ValidateCountry(country))
	}

	fmt.Fprintf(os.Stderr, "\nValidated %d stories, %d countries\n", len(stories), len(countries))
	if errors > 0 {
		return fmt.Errorf("%d authoring errors found", errors)
	}
	fmt.Fprintln(os.Stderr, "✓ No authoring errors")
	return nil
}
