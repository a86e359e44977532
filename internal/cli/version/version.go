package version

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	finboard "github.com/finboard/finboard-cli"
	"github.com/finboard/finboard-cli/internal/cli/root"
)

func init() {
	cmd := root.Command("version", "Show version.")
	cmd.Action(func(_ *kingpin.ParseContext) error {
		fmt.Println(finboard.Version)
		return nil
	})
}
