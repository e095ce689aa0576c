package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/microsoft/cose-inspect/pkg/cbortree"
	"github.com/microsoft/cose-inspect/pkg/cose"
)

var dumpCommand = &cli.Command{
	Name:      "dump",
	Usage:     "Print the value tree of arbitrary CBOR input",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		hexFlag,
	},
	Action: runDump,
}

func runDump(ctx *cli.Context) error {
	// read item
	data, err := readInput(ctx)
	if err != nil {
		return err
	}

	// decode item
	v, err := cbortree.Decode(data)
	if err != nil {
		return err
	}

	// write tree
	fmt.Println(cose.FormatValue(v))
	return nil
}
