package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/storyport/storyport/internal/pipeline"
	"github.com/storyport/storyport/internal/store"
	"github.com/storyport/storyport/internal/worker"
)

var (
	batchCountries   string
	batchLangs       string
	batchConcurrency int
	batchOutputDir   string
	batchTimeout     time.Duration
	batchNoArchive   bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Render every story for many countries in parallel",
	Long: `Batch renders the full story catalog:
- Enumerate stories × countries × languages
- Render in parallel with configurable worker count
- Write one JSON file per render
- Archive segment streams so output changes are visible before share
  images are regenerated

Example:
  storyport batch --countries DE,FR,US --langs en,de
  storyport batch --countries DE --langs de --concurrency 8 --output-dir ./renders`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchCountries, "countries", "", "comma-separated country codes (default: all loaded)")
	batchCmd.Flags().StringVar(&batchLangs, "langs", "en", "comma-separated display languages")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "", "output directory (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch")
	batchCmd.Flags().BoolVar(&batchNoArchive, "no-archive", false, "skip the render archive database")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := newLogger(cfg)
	defer log.Sync()

	if batchConcurrency > 0 {
		cfg.Concurrency.Workers = batchConcurrency
	}
	if batchOutputDir == "" {
		batchOutputDir = cfg.Render.OutputDir
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	t, err := pipeline.New(cfg, log)
	if err != nil {
		return err
	}

	countries := splitList(batchCountries)
	if len(countries) == 0 {
		countries = t.Countries()
	}
	languages := splitList(batchLangs)

	var slugs []string
	for _, s := range t.Stories() {
		slugs = append(slugs, s.Slug)
	}

	jobs := worker.Jobs(slugs, countries, languages)
	log.Infow("starting batch render",
		"jobs", len(jobs), "workers", cfg.Concurrency.Workers,
		"countries", len(countries), "languages", len(languages))

	var archive *store.DB
	if !batchNoArchive {
		archive, err = store.Open(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("opening render archive: %w", err)
		}
		defer archive.Close()
	}

	pacer := worker.NewPacer(cfg.Concurrency.RendersPerSecond, cfg.Concurrency.Burst)
	pool := worker.NewPool(cfg.Concurrency.Workers, func(ctx context.Context, job worker.Job) (*pipeline.Rendered, error) {
		return t.Render(job.StorySlug, job.Country, job.Language)
	}, pacer)

	results := pool.Run(ctx, jobs)

	success, failures, changed := 0, 0, 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s %s/%s: %v\n", res.Job.StorySlug, res.Job.Country, res.Job.Language, res.Err)
			continue
		}
		success++

		path := pipeline.OutputPath(batchOutputDir, res.Rendered)
		if err := pipeline.WriteJSON(res.Rendered, path); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			continue
		}

		if archive != nil {
			n, err := archiveRender(archive, res.Rendered)
			if err != nil {
				log.Warnw("archive failed", "story", res.Job.StorySlug, "err", err)
				continue
			}
			changed += n
		}
	}

	log.Infow("batch complete",
		"total", len(results), "success", success, "failures", failures,
		"changed_fields", changed, "output", batchOutputDir)

	if failures > 0 {
		return fmt.Errorf("%d of %d renders failed", failures, len(results))
	}
	return nil
}

// archiveRender saves each field and counts how many differ from the last
// archived run; a nonzero count means share images need regenerating.
func archiveRender(archive *store.DB, r *pipeline.Rendered) (int, error) {
	changed := 0
	renders := []*store.Render{
		{StorySlug: r.StorySlug, Country: r.Country, Language: r.Language, Field: "title", Segments: r.Title},
		{StorySlug: r.StorySlug, Country: r.Country, Language: r.Language, Field: "summary", Segments: r.Summary},
		{StorySlug: r.StorySlug, Country: r.Country, Language: r.Language, Field: "content", Segments: r.Content},
	}
	for _, rec := range renders {
		diff, err := archive.Changed(rec)
		if err != nil {
			return changed, err
		}
		if diff {
			changed++
		}
		if err := archive.SaveRender(rec); err != nil {
			return changed, err
		}
	}
	return changed, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
