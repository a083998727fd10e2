package main

import (
	"fmt"

	"github.com/DavyJonesCodes/go-tpl/ir"

	"github.com/scott-cotton/cli"
)

func tools(cfg *ToolsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tools.Parse(cc, args)
	if err != nil {
		cfg.Tools.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := decodeArg(arg)
		if err != nil {
			return err
		}
		for i, yField := range doc.Fields {
			for _, rec := range doc.Values[i].Values {
				name := ir.Get(rec, "name")
				if name == nil {
					continue
				}
				fmt.Fprintf(cc.Out, "%s\t%s\n", yField.String, name.String)
			}
		}
	}
	return nil
}
