// Command gateprobe finds reachable VPN Gate relays and saves their
// OpenVPN profiles.
package main

import (
	"github.com/apex/log"
	"github.com/gateprobe/gateprobe/internal/cli/app"
	_ "github.com/gateprobe/gateprobe/internal/cli/run"
	_ "github.com/gateprobe/gateprobe/internal/cli/version"
)

func main() {
	if err := app.Run(); err != nil {
		log.WithError(err).Fatal("main exit")
	}
}
