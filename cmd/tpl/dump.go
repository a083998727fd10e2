package main

import (
	"fmt"
	"io"
	"os"

	"github.com/DavyJonesCodes/go-tpl/encode"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: dump requires one argument, a tool preset file", cli.ErrUsage)
	}
	doc, err := decodeArg(args[0])
	if err != nil {
		return err
	}
	var (
		w   io.Writer = cc.Out
		out           = cfg.Out
	)
	if out == "" {
		fmat := encode.FormatFromOpts(cfg.encOpts(cc.Out)...)
		out = "output" + fmat.Suffix()
		f, err := os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if out != "-" && out != "" {
		fmt.Fprintf(os.Stderr, "wrote %s\n", out)
	}
	return nil
}
