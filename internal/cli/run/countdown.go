package run

import (
	"context"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// sleepContext sleeps for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// countdown waits for the given number of seconds while showing
// a progress bar on ProgressWriter.
func (r *Runner) countdown(ctx context.Context, seconds int64) error {
	bar := progressbar.NewOptions64(
		seconds,
		progressbar.OptionSetWriter(r.ProgressWriter),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(30),
	)
	for left := seconds; left > 0; left-- {
		bar.Describe(fmt.Sprintf("Testing will start in %d seconds...", left))
		if err := r.Sleep(ctx, time.Second); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	return bar.Finish()
}
