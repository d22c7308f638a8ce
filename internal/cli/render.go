package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storyport/storyport/internal/pipeline"
)

var (
	renderCountry string
	renderLang    string
	renderOut     string
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <story-slug>",
	Short: "Render one story for a target country and language",
	Long: `Render translates a single story for one country: scales its numbers
and casualty figures by population, picks deterministic local names and
places, and attaches comparable-event phrases. Output is the ordered
segment list as JSON, ready for any presentation layer.

Example:
  storyport render bloody-november --country DE --lang de
  storyport render bloody-november --country US --lang en --json out.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderCountry, "country", "", "target country code (required)")
	renderCmd.Flags().StringVar(&renderLang, "lang", "", "display language (default from config)")
	renderCmd.Flags().StringVar(&renderOut, "json", "", "output path (default: stdout)")
	_ = renderCmd.MarkFlagRequired("country")
}

func runRender(cmd *cobra.Command, args []string) error {
	slug := args[0]
	cfg := loadConfig()
	log := newLogger(cfg)
	defer log.Sync()

	if renderLang == "" {
		renderLang = cfg.Render.Language
	}

	t, err := pipeline.New(cfg, log)
	if err != nil {
		return err
	}

	rendered, err := t.Render(slug, renderCountry, renderLang)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	for _, d := range rendered.Diags {
		fmt.Fprintf(os.Stderr, "%s [%s] %s: %s\n", d.Severity, d.Component, d.Key, d.Message)
	}

	if renderOut == "" {
		renderOut = "/dev/stdout"
	}
	if err := pipeline.WriteJSON(rendered, renderOut); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Rendered %s for %s/%s (%d content segments)\n",
			slug, renderCountry, renderLang, len(rendered.Content))
	}
	return nil
}
