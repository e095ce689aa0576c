package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/urfave/cli/v2"

	"github.com/microsoft/cose-inspect/internal/hexscan"
	"github.com/microsoft/cose-inspect/pkg/cose"
)

var inspectCommand = &cli.Command{
	Name:      "inspect",
	Usage:     "Decode a COSE_Sign1 message and print a report",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		hexFlag,
		&cli.BoolFlag{
			Name:  "digest",
			Usage: "print the sha256 digest of the payload",
		},
	},
	Action: runInspect,
}

var hexFlag = &cli.BoolFlag{
	Name:    "hex",
	Aliases: []string{"x"},
	Usage:   "treat input as a hex dump instead of raw bytes",
}

func runInspect(ctx *cli.Context) error {
	// read message
	data, err := readInput(ctx)
	if err != nil {
		return err
	}

	// decode message
	msg, err := cose.DecodeSign1(data)
	if err != nil {
		return err
	}

	// write report
	fmt.Print(cose.RenderReport(msg))
	if ctx.Bool("digest") {
		fmt.Printf("\nPayload digest: %s\n", digest.FromBytes(msg.Payload))
	}
	return nil
}

// readInput loads the message from the file argument, or from stdin
// when no file (or "-") is given.
func readInput(ctx *cli.Context) ([]byte, error) {
	args := ctx.Args()
	if args.Len() > 1 {
		return nil, errors.New("too many arguments")
	}

	var raw []byte
	var err error
	if name := args.Get(0); name != "" && name != "-" {
		raw, err = os.ReadFile(name)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}

	if ctx.Bool("hex") {
		return hexscan.Bytes(string(raw)), nil
	}
	return raw, nil
}
