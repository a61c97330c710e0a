package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/arloliu/dwg"
	"github.com/arloliu/dwg/format"
	"github.com/minio/cli"
)

var scanCmd = cli.Command{
	Name:      "scan",
	Usage:     "Classify every .dwg file under a directory by version.",
	ArgsUsage: "<dir>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "index",
			Usage: "Record path, version and size in a bbolt database.",
		},
		cli.BoolFlag{
			Name:  "decode",
			Usage: "Fully decode each file and report failures.",
		},
	},
	Action: runScan,
}

const unreadable = "unreadable"

// scanFile classifies one file. A failed decode keeps the detected version
// and records the error.
func scanFile(path string, decode bool, opts []dwg.DecoderOption) indexEntry {
	var e indexEntry
	f, err := os.Open(path)
	if err != nil {
		e.Version, e.Error = unreadable, err.Error()
		return e
	}
	defer f.Close()

	if st, err := f.Stat(); err == nil {
		e.Size, e.ModTime = st.Size(), st.ModTime().UTC()
	}

	ver, err := dwg.DetectVersion(f)
	if err != nil {
		e.Version, e.Error = unreadable, err.Error()
		return e
	}
	e.Version = ver.String()

	if decode {
		if _, err := dwg.Decode(f, e.Size, opts...); err != nil {
			e.Error = err.Error()
		}
	}

	return e
}

func scanDir(root string, decode bool, opts []dwg.DecoderOption) (map[string]indexEntry, error) {
	entries := make(map[string]indexEntry)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".dwg") {
			return nil
		}
		entries[path] = scanFile(path, decode, opts)

		return nil
	})

	return entries, err
}

// versionRank orders report rows by release, unknown tokens last.
func versionRank(name string) int {
	for v := format.R13; v <= format.R2018; v++ {
		if v.String() == name {
			return int(v)
		}
	}

	return int(format.R2018) + 1
}

func printScan(out io.Writer, entries map[string]indexEntry) error {
	counts := make(map[string]int)
	failed := 0
	for _, e := range entries {
		counts[e.Version]++
		if e.Error != "" {
			failed++
		}
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if d := versionRank(a) - versionRank(b); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tFILES")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%d\n", name, counts[name])
	}
	fmt.Fprintf(w, "total\t%d\n", len(entries))
	if failed > 0 {
		fmt.Fprintf(w, "failed\t%d\n", failed)
	}

	return w.Flush()
}

func runScan(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("scan: expected exactly one directory", 1)
	}
	root := c.Args().First()

	opts := []dwg.DecoderOption{dwg.WithLogger(logger(c))}
	entries, err := scanDir(root, c.Bool("decode"), opts)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("scan %s: %v", root, err), 1)
	}

	if path := c.String("index"); path != "" {
		idx, err := openIndex(path)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		err = idx.PutAll(entries)
		if cerr := idx.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("index %s: %v", path, err), 1)
		}
	}

	return printScan(c.App.Writer, entries)
}
