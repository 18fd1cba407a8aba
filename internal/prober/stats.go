package prober

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// ErrNoReachable indicates that no candidate was reachable.
var ErrNoReachable = errors.New("prober: no reachable candidates")

// LatencyStats summarizes the latency of the reachable candidates.
type LatencyStats struct {
	Min    float64
	Median float64
	Mean   float64
	Max    float64
}

// Stats computes latency statistics over the reachable candidates. It
// returns [ErrNoReachable] when there are no reachable candidates.
func (r *Report) Stats() (*LatencyStats, error) {
	if len(r.Reachable) <= 0 {
		return nil, ErrNoReachable
	}
	data := make(stats.Float64Data, 0, len(r.Reachable))
	for _, entry := range r.Reachable {
		data = append(data, entry.Latency)
	}
	// errors only occur with empty input, which we excluded above
	minimum, _ := data.Min()
	median, _ := data.Median()
	mean, _ := data.Mean()
	maximum, _ := data.Max()
	return &LatencyStats{Min: minimum, Median: median, Mean: mean, Max: maximum}, nil
}
