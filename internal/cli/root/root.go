// Package root contains the root command.
package root

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/gateprobe/gateprobe/internal/config"
	"github.com/gateprobe/gateprobe/internal/log/handlers/cli"
	"github.com/gateprobe/gateprobe/internal/version"
)

// Cmd is the root command
var Cmd = kingpin.New("gateprobe", "Find reachable VPN Gate relays and save their OpenVPN profiles.")

// Command is syntax sugar for defining sub-commands
var Command = Cmd.Command

// Init should be called by all subcommand that care to have a config
var Init func() (*config.Config, error)

func init() {
	configPath := Cmd.Flag("config", "Set a custom config file path").Short('c').String()
	verbose := Cmd.Flag("verbose", "Enable verbose log output.").Short('v').Bool()

	Cmd.PreAction(func(ctx *kingpin.ParseContext) error {
		log.SetHandler(cli.Default)
		if *verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("gateprobe version %s", version.Version)
		}

		Init = func() (*config.Config, error) {
			if *configPath != "" {
				log.Debugf("Reading config file from %s", *configPath)
				return config.ReadConfig(*configPath)
			}
			log.Debug("Reading default config file")
			return config.ReadDefaultConfigPaths()
		}

		return nil
	})
}
