// Package worker runs bulk renders in parallel. Renders share no mutable
// state (each gets its own resolution context), so the pool needs no
// coordination beyond the job and result channels.
package worker

import (
	"context"
	"sync"

	"github.com/storyport/storyport/internal/pipeline"
)

// Job is one render request.
type Job struct {
	StorySlug string
	Country   string
	Language  string
}

// Result pairs a job with its outcome.
type Result struct {
	Job      Job
	Rendered *pipeline.Rendered
	Err      error
}

// RenderFunc executes one job.
type RenderFunc func(ctx context.Context, job Job) (*pipeline.Rendered, error)

// Pool executes render jobs with a fixed number of workers and an optional
// pacer bounding renders per second.
type Pool struct {
	workers int
	render  RenderFunc
	pacer   *Pacer

	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
}

// NewPool creates a pool. A nil pacer disables pacing.
func NewPool(workers int, render RenderFunc, pacer *Pacer) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		render:  render,
		pacer:   pacer,
		jobs:    make(chan Job, workers*2),
		results: make(chan Result, workers*2),
	}
}

// Run executes all jobs and returns the results in completion order.
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}

	go func() {
		defer close(p.jobs)
		for _, job := range jobs {
			select {
			case <-ctx.Done():
				return
			case p.jobs <- job:
			}
		}
	}()

	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	results := make([]Result, 0, len(jobs))
	for res := range p.results {
		results = append(results, res)
	}
	return results
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			if p.pacer != nil {
				if err := p.pacer.Wait(ctx); err != nil {
					return
				}
			}
			rendered, err := p.render(ctx, job)
			select {
			case p.results <- Result{Job: job, Rendered: rendered, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Jobs enumerates the full cross product of stories, countries, and
// languages for a batch run.
func Jobs(stories, countries, languages []string) []Job {
	jobs := make([]Job, 0, len(stories)*len(countries)*len(languages))
	for _, s := range stories {
		for _, c := range countries {
			for _, l := range languages {
				jobs = append(jobs, Job{StorySlug: s, Country: c, Language: l})
			}
		}
	}
	return jobs
}
