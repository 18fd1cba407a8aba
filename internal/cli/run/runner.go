package run

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/gateprobe/gateprobe/internal/config"
	"github.com/gateprobe/gateprobe/internal/fetcher"
	"github.com/gateprobe/gateprobe/internal/model"
	"github.com/gateprobe/gateprobe/internal/output"
	"github.com/gateprobe/gateprobe/internal/persister"
	"github.com/gateprobe/gateprobe/internal/prober"
	"github.com/gateprobe/gateprobe/internal/prompt"
	"github.com/gateprobe/gateprobe/internal/vpngate"
	"github.com/pkg/errors"
)

// Runner runs the interactive fetch, probe and save flow.
type Runner struct {
	// Asker is the MANDATORY [prompt.Asker] asking how many servers to probe.
	Asker prompt.Asker

	// Config is the MANDATORY config.
	Config *config.Config

	// Dialer is the MANDATORY dialer used by the prober.
	Dialer model.Dialer

	// HTTPClient is the MANDATORY client used to fetch the list.
	HTTPClient *http.Client

	// Logger is the MANDATORY logger.
	Logger log.Interface

	// ProgressWriter is the MANDATORY writer for the countdown bar.
	ProgressWriter io.Writer

	// Sleep is the MANDATORY function used by the countdown.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewRunner creates a new [*Runner] for the given config.
func NewRunner(config *config.Config, logger log.Interface) *Runner {
	return &Runner{
		Asker:          prompt.NewAsker(),
		Config:         config,
		Dialer:         &net.Dialer{},
		HTTPClient:     &http.Client{},
		Logger:         logger,
		ProgressWriter: os.Stderr,
		Sleep:          sleepContext,
	}
}

// Credentials are the well-known VPN Gate OpenVPN credentials.
var Credentials = []output.KeyValue{
	{Key: "User Name", Value: "vpn"},
	{Key: "Password", Value: "vpn"},
}

// Run executes the flow. An empty list is not an error. The context
// only bounds fetching and the countdown: once started, probes run
// to completion.
func (r *Runner) Run(ctx context.Context) error {
	logger := r.Logger

	logger.Info("Fetching VPN Gate server list... 🌐")
	data, err := fetcher.GetRaw(ctx, r.Config.ListURL, &fetcher.Config{
		Client:    r.HTTPClient,
		Logger:    logger,
		Timeout:   r.Config.FetchTimeoutDuration(),
		UserAgent: r.Config.UserAgent,
	})
	if err != nil {
		return errors.Wrap(err, "cannot fetch the server list")
	}

	candidates := vpngate.Parse(string(data))
	if len(candidates) <= 0 {
		logger.Warn("❌ No OpenVPN servers found.")
		return nil
	}
	logger.Infof("Found %d OpenVPN servers. ✅", len(candidates))

	count, err := prompt.AskCount(r.Asker, len(candidates), logger)
	if err != nil {
		return err
	}
	count = prober.Clamp(count, len(candidates))

	output.SectionTitle(logger, "SERVER LIST 📋")
	for idx, c := range candidates[:count] {
		output.ServerItem(logger, idx+1, c)
	}
	output.Separator(logger)

	if delay := r.Config.StartDelay; delay > 0 {
		if err := r.countdown(ctx, delay); err != nil {
			return errors.Wrap(err, "interrupted before probing")
		}
	}

	logger.Infof("Testing %d servers... 🚀", count)
	p := prober.New(logger)
	p.Dialer = r.Dialer
	p.Parallelism = r.Config.Parallelism
	p.Timeout = r.Config.ProbeTimeoutDuration()
	report := p.Probe(candidates, count)

	if len(report.Reachable) > 0 {
		logger.Info("Saving configs for connected servers... 💾")
		saver := persister.New(logger)
		saver.Dir = r.Config.OutputDir
		saver.Extension = r.Config.Extension
		saver.Save(report.Reachable)
	}

	r.summary(report)

	output.SectionTitle(logger, "CREDENTIALS 🔑")
	output.Table(logger, Credentials...)
	return nil
}

func (r *Runner) summary(report *prober.Report) {
	logger := r.Logger
	stats, err := report.Stats()
	if err != nil {
		logger.Warn("❌ No servers were reachable.")
		return
	}
	output.SectionTitle(logger, "CONNECTED SERVERS (SORTED BY LATENCY) 🌟")
	for idx, res := range report.Reachable {
		output.RankedItem(logger, idx+1, res)
	}
	output.Separator(logger)
	output.Table(logger,
		output.KeyValue{Key: "Reachable", Value: fmt.Sprintf("%d/%d", len(report.Reachable), len(report.All))},
		output.KeyValue{Key: "Min", Value: fmt.Sprintf("%.2f ms", stats.Min)},
		output.KeyValue{Key: "Median", Value: fmt.Sprintf("%.2f ms", stats.Median)},
		output.KeyValue{Key: "Mean", Value: fmt.Sprintf("%.2f ms", stats.Mean)},
		output.KeyValue{Key: "Max", Value: fmt.Sprintf("%.2f ms", stats.Max)},
	)
}
