// Package prober checks the TCP reachability of relay candidates.
//
// Probing uses a bounded pool of goroutines. Each probe owns its
// socket, its timer and its slot in the results slice, so there is
// no shared mutable state among probes. We wait for all the probes
// to complete before returning, and there is no cancellation: a
// probe that hangs delays the join by at most [DefaultTimeout].
package prober

import (
	"context"
	"net"
	"runtime"
	"sort"
	"time"

	"github.com/apex/log"
	"github.com/gateprobe/gateprobe/internal/model"
	"github.com/gateprobe/gateprobe/internal/output"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout is the default timeout of a single probe.
const DefaultTimeout = 10 * time.Second

// DefaultParallelism returns the default number of concurrent probes,
// which is lower on Windows where many concurrent sockets hurt.
func DefaultParallelism() int {
	if runtime.GOOS == "windows" {
		return 20
	}
	return 100
}

// Prober probes candidates.
type Prober struct {
	// Dialer is the MANDATORY dialer to use.
	Dialer model.Dialer

	// Logger is the MANDATORY logger to use.
	Logger log.Interface

	// Parallelism is the OPTIONAL number of concurrent probes. When
	// zero or negative, we use [DefaultParallelism].
	Parallelism int

	// Timeout is the OPTIONAL timeout of each probe. When zero
	// or negative, we use [DefaultTimeout].
	Timeout time.Duration
}

// New creates a new [*Prober] using the default settings.
func New(logger log.Interface) *Prober {
	return &Prober{
		Dialer:      &net.Dialer{},
		Logger:      logger,
		Parallelism: DefaultParallelism(),
		Timeout:     DefaultTimeout,
	}
}

func (p *Prober) parallelism() int {
	if p.Parallelism > 0 {
		return p.Parallelism
	}
	return DefaultParallelism()
}

func (p *Prober) timeout() time.Duration {
	if p.Timeout > 0 {
		return p.Timeout
	}
	return DefaultTimeout
}

// Clamp returns count limited to the [0, total] range.
func Clamp(count, total int) int {
	if count > total {
		return total
	}
	if count < 0 {
		return 0
	}
	return count
}

// Probe probes the first count candidates.
//
// It logs the result of every probe in the order of candidates as soon as
// the probe and all the ones before it have completed, then returns once
// all the probes have completed.
func (p *Prober) Probe(candidates []model.Candidate, count int) *Report {
	targets := candidates[:Clamp(count, len(candidates))]
	results := make([]model.ProbeResult, len(targets))
	done := make([]chan struct{}, len(targets))
	for idx := range done {
		done[idx] = make(chan struct{})
	}

	group := &errgroup.Group{}
	group.SetLimit(p.parallelism())
	p.Logger.Debugf("prober: probing %d candidates with parallelism %d", len(targets), p.parallelism())

	// Go blocks when the pool is full, so we dispatch from a background
	// goroutine and stream the results from this one.
	go func() {
		for idx := range targets {
			idx := idx
			group.Go(func() error {
				defer close(done[idx])
				results[idx] = p.probe(targets[idx])
				return nil
			})
		}
	}()

	for idx := range targets {
		<-done[idx]
		output.ProbeResult(p.Logger, results[idx])
	}
	_ = group.Wait() // all the probes are done already

	return newReport(results)
}

// probe performs a single TCP connect.
func (p *Prober) probe(c model.Candidate) model.ProbeResult {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout())
	defer cancel()
	address := c.Address()
	started := time.Now()
	conn, err := p.Dialer.DialContext(ctx, "tcp", address)
	elapsed := time.Since(started)
	p.Logger.Debugf("prober: connect %s... %s (%s)", address, model.ErrorToStringOrOK(err), elapsed)
	if err != nil {
		return model.ProbeResult{Candidate: c, Err: err}
	}
	conn.Close()
	return model.ProbeResult{
		Candidate: c,
		Success:   true,
		Latency:   float64(elapsed) / float64(time.Millisecond),
	}
}

// Report contains the results of [*Prober.Probe].
type Report struct {
	// All contains one result per probed candidate in the
	// order in which the candidates were provided.
	All []model.ProbeResult

	// Reachable contains the successful results sorted by
	// increasing latency. Ties keep the order of All.
	Reachable []model.ProbeResult
}

func newReport(results []model.ProbeResult) *Report {
	var reachable []model.ProbeResult
	for _, r := range results {
		if r.Success {
			reachable = append(reachable, r)
		}
	}
	sort.SliceStable(reachable, func(i, j int) bool {
		return reachable[i].Latency < reachable[j].Latency
	})
	return &Report{All: results, Reachable: reachable}
}
