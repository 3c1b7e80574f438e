// Package workerpool runs keyed jobs on a fixed number of goroutines with an
// optional shared rate limit.
package workerpool

import (
	"context"
	"sync"
	"time"
)

type Job struct {
	Key string
	Run func(ctx context.Context) error
}

type Result struct {
	Key      string
	Err      error
	Duration time.Duration
}

type Pool struct {
	workers int
	jobs    chan Job
	wg      sync.WaitGroup
	rate    <-chan time.Time
	ticker  *time.Ticker
}

// New returns a pool of workers goroutines. rps > 0 caps job starts per
// second across all workers.
func New(workers, buffer, rps int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	p := &Pool{workers: workers, jobs: make(chan Job, buffer)}
	if rps > 0 {
		p.ticker = time.NewTicker(time.Second / time.Duration(rps))
		p.rate = p.ticker.C
	}
	return p
}

// Submit blocks while the buffer is full. It must not be called after Close.
func (p *Pool) Submit(ctx context.Context, j Job) error {
	if j.Run == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.jobs <- j:
		return nil
	}
}

// Close stops accepting jobs; Run's channel closes once queued jobs finish.
func (p *Pool) Close() {
	close(p.jobs)
}

// Run starts the workers. Results are delivered in completion order and the
// channel is closed when every worker has exited.
func (p *Pool) Run(ctx context.Context) <-chan Result {
	out := make(chan Result, p.workers)

	p.wg.Add(p.workers)
	for range p.workers {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-p.jobs:
					if !ok {
						return
					}
					if p.rate != nil {
						select {
						case <-ctx.Done():
							return
						case <-p.rate:
						}
					}
					start := time.Now()
					err := j.Run(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Key: j.Key, Err: err, Duration: time.Since(start)}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		if p.ticker != nil {
			p.ticker.Stop()
		}
		close(out)
	}()

	return out
}
