package app

import (
	"os"

	finboard "github.com/finboard/finboard-cli"
	"github.com/finboard/finboard-cli/internal/cli/root"
)

// Run the app. This is the main app entry point
func Run() error {
	root.Cmd.Version(finboard.Version)
	_, err := root.Cmd.Parse(os.Args[1:])
	return err
}
