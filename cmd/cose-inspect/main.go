package main

import (
	"os"

	"github.com/microsoft/cose-inspect/internal/version"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "cose-inspect",
		Usage:   "Inspect COSE_Sign1 messages",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			inspectCommand,
			dumpCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
