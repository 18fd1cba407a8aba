package version

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/gateprobe/gateprobe/internal/cli/root"
	"github.com/gateprobe/gateprobe/internal/version"
)

func init() {
	cmd := root.Command("version", "Show version.")
	cmd.Action(func(_ *kingpin.ParseContext) error {
		fmt.Println(version.Version)
		return nil
	})
}
