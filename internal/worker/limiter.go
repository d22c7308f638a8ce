package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer bounds how many renders start per second. Batch runs share machines
// with the image generator cron jobs; pacing keeps a large catalog render
// from starving them.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a pacer. A non-positive rate returns nil, which the pool
// treats as unpaced.
func NewPacer(rendersPerSecond float64, burst int) *Pacer {
	if rendersPerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Limit(rendersPerSecond), burst)}
}

// Wait blocks until the next render may start.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
