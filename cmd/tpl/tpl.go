package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DavyJonesCodes/go-tpl/decode"
	"github.com/DavyJonesCodes/go-tpl/ir"

	"github.com/scott-cotton/cli"
)

func tplMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// decodeArg reads and decodes one input argument, "-" meaning stdin.
func decodeArg(arg string) (*ir.Node, error) {
	var in io.Reader
	if arg == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		in = f
	}
	d, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	doc, err := decode.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, nil
}
