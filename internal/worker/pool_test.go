package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/storyport/storyport/internal/pipeline"
)

func TestPool_RunsAllJobs(t *testing.T) {
	var count int64
	render := func(ctx context.Context, job Job) (*pipeline.Rendered, error) {
		atomic.AddInt64(&count, 1)
		return &pipeline.Rendered{StorySlug: job.StorySlug, Country: job.Country}, nil
	}

	jobs := Jobs([]string{"a", "b"}, []string{"DE", "FR", "BR"}, []string{"en", "de"})
	if len(jobs) != 12 {
		t.Fatalf("cross product = %d jobs, want 12", len(jobs))
	}

	pool := NewPool(4, render, nil)
	results := pool.Run(context.Background(), jobs)

	if len(results) != 12 {
		t.Fatalf("got %d results, want 12", len(results))
	}
	if atomic.LoadInt64(&count) != 12 {
		t.Errorf("render ran %d times, want 12", count)
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("job %+v failed: %v", res.Job, res.Err)
		}
		if res.Rendered == nil || res.Rendered.StorySlug != res.Job.StorySlug {
			t.Errorf("result does not carry its job's render: %+v", res)
		}
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	boom := errors.New("boom")
	render := func(ctx context.Context, job Job) (*pipeline.Rendered, error) {
		if job.Country == "XX" {
			return nil, boom
		}
		return &pipeline.Rendered{}, nil
	}

	jobs := Jobs([]string{"a"}, []string{"DE", "XX"}, []string{"en"})
	results := NewPool(2, render, nil).Run(context.Background(), jobs)

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			if !errors.Is(res.Err, boom) {
				t.Errorf("unexpected error: %v", res.Err)
			}
		}
	}
	if failed != 1 {
		t.Errorf("got %d failures, want 1", failed)
	}
}

func TestPool_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	render := func(ctx context.Context, job Job) (*pipeline.Rendered, error) {
		return &pipeline.Rendered{}, nil
	}
	results := NewPool(2, render, nil).Run(ctx, Jobs([]string{"a"}, []string{"DE"}, []string{"en"}))

	// A cancelled context may drop jobs, but Run must still return.
	if len(results) > 1 {
		t.Errorf("got %d results for 1 job", len(results))
	}
}

func TestNewPacer(t *testing.T) {
	if p := NewPacer(0, 1); p != nil {
		t.Error("non-positive rate should disable pacing")
	}
	p := NewPacer(100, 1)
	if p == nil {
		t.Fatal("expected a pacer")
	}
	if err := p.Wait(context.Background()); err != nil {
		t.Errorf("Wait: %v", err)
	}
}
