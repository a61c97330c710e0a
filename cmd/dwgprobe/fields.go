package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/headervars"
	"github.com/minio/cli"
)

var fieldsCmd = cli.Command{
	Name:      "fields",
	Usage:     "List the header variables a version stores, in file order.",
	ArgsUsage: "<version token, e.g. AC1018>",
	Action:    runFields,
}

func runFields(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("fields: expected a version token", 1)
	}
	ver, err := format.ParseVersion([]byte(c.Args().First()))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tTYPE\tNOTE")
	for i, f := range headervars.Fields(ver) {
		note := ""
		switch {
		case f.Reserved:
			note = "reserved"
		case f.Conditional:
			note = "conditional"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, f.Name, f.Code, note)
	}

	return w.Flush()
}
