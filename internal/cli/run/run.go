// Package run contains the run command, which is also the default command.
package run

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/gateprobe/gateprobe/internal/cli/root"
	"github.com/pkg/errors"
)

func init() {
	cmd := root.Command("run", "Fetch the relay list, probe the relays and save the reachable ones.").Default()

	outputDir := cmd.Flag("output-dir", "Directory where to save the OpenVPN profiles.").String()
	parallelism := cmd.Flag("parallelism", "Maximum number of concurrent probes.").Int()
	noWait := cmd.Flag("no-wait", "Start probing without waiting.").Bool()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		config, err := root.Init()
		if err != nil {
			return errors.Wrap(err, "cannot load config")
		}
		if *outputDir != "" {
			config.OutputDir = *outputDir
		}
		if *parallelism > 0 {
			config.Parallelism = *parallelism
		}
		if *noWait {
			config.StartDelay = -1
		}
		if err := config.Validate(); err != nil {
			return err
		}

		ListenForSignals(log.Log, os.Exit)
		return NewRunner(config, log.Log).Run(context.Background())
	})
}

// ListenForSignals terminates the process with exit status 1 when the
// user interrupts the run with SIGINT or SIGTERM.
func ListenForSignals(logger log.Interface, exit func(int)) {
	s := make(chan os.Signal, 1)
	signal.Notify(s, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-s
		logger.Warn("Operation cancelled by user.")
		exit(1)
	}()
}
