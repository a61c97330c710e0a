package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/arloliu/dwg"
	"github.com/arloliu/dwg/checksum"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/section"
	"github.com/minio/cli"
	"gopkg.in/vmihailenco/msgpack.v2"
)

var infoCmd = cli.Command{
	Name:      "info",
	Usage:     "Decode one file and print its layout.",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "msgpack",
			Usage: "Write the summary as MessagePack instead of text.",
		},
		cli.BoolFlag{
			Name:  "verify",
			Usage: "Verify stored checksums.",
		},
		cli.StringFlag{
			Name:  "retention",
			Value: "none",
			Usage: "Codec for retained section bytes: none, zstd, s2 or lz4.",
		},
		cli.BoolFlag{
			Name:  "raw-text",
			Usage: "Keep 8-bit strings undecoded.",
		},
	},
	Action: runInfo,
}

// sectionSummary is one retained logical section.
type sectionSummary struct {
	Name        string `msgpack:"name"`
	Size        int    `msgpack:"size"`
	Fingerprint uint64 `msgpack:"fingerprint"`
	Pages       uint32 `msgpack:"pages,omitempty"`
	Compressed  bool   `msgpack:"compressed,omitempty"`
}

// summary is what info reports about a file.
type summary struct {
	Path        string           `msgpack:"path"`
	Version     string           `msgpack:"version"`
	Maintenance uint8            `msgpack:"maintenance"`
	CodePage    uint16           `msgpack:"code_page"`
	Sections    []sectionSummary `msgpack:"sections"`
	Classes     []string         `msgpack:"classes"`
	Handles     int              `msgpack:"handles"`
	MapBlocks   int              `msgpack:"map_blocks"`

	LUnits   int16     `msgpack:"lunits"`
	InsUnits int16     `msgpack:"insunits"`
	Created  time.Time `msgpack:"created"`
	Updated  time.Time `msgpack:"updated"`
	Metric   bool      `msgpack:"metric"`
	Preview  bool      `msgpack:"preview"`
}

func decoderOptions(c *cli.Context) ([]dwg.DecoderOption, error) {
	opts := []dwg.DecoderOption{dwg.WithLogger(logger(c))}
	if c.Bool("verify") {
		opts = append(opts, dwg.WithChecksum(checksum.DWG()))
	}
	if c.Bool("raw-text") {
		opts = append(opts, dwg.WithCodePage(false))
	}
	if name := c.String("retention"); name != "" {
		algorithm, ok := format.ParseCompressionType(name)
		if !ok {
			return nil, fmt.Errorf("unknown retention codec %q", name)
		}
		opts = append(opts, dwg.WithRetention(algorithm))
	}

	return opts, nil
}

func summarize(path string, doc *dwg.Document) (*summary, error) {
	s := &summary{
		Path:        path,
		Version:     doc.Version.String(),
		Maintenance: doc.FileHeader.Maintenance,
		CodePage:    doc.FileHeader.CodePage,
		Classes:     doc.Classes.DXFNames(),
		Handles:     doc.ObjectMap.Len(),
		MapBlocks:   doc.ObjectMap.Blocks(),
		LUnits:      doc.Variables.LUnits,
		InsUnits:    doc.Variables.InsUnits,
		Preview:     doc.Preview != nil,
	}
	if d := doc.Variables.TdCreate; !d.IsZero() {
		s.Created = d.Time()
	}
	if d := doc.Variables.TdUpdate; !d.IsZero() {
		s.Updated = d.Time()
	}
	if doc.Template != nil {
		s.Metric = doc.Template.Metric()
	}

	for _, name := range doc.SectionNames() {
		data, err := doc.SectionBytes(name)
		if err != nil {
			return nil, err
		}
		fp, err := doc.SectionFingerprint(name)
		if err != nil {
			return nil, err
		}
		sec := sectionSummary{Name: name, Size: len(data), Fingerprint: fp}
		if desc, ok := section.FindSection(doc.Sections, name); ok {
			sec.Pages = desc.PageCount
			sec.Compressed = desc.IsCompressed()
		}
		s.Sections = append(s.Sections, sec)
	}

	return s, nil
}

func runInfo(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("info: expected exactly one file", 1)
	}
	path := c.Args().First()

	opts, err := decoderOptions(c)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	doc, err := dwg.DecodeFile(path, opts...)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("%s: %v", path, err), 1)
	}
	s, err := summarize(path, doc)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("%s: %v", path, err), 1)
	}

	if c.Bool("msgpack") {
		return msgpack.NewEncoder(c.App.Writer).Encode(s)
	}

	return printSummary(c.App.Writer, s)
}

func printSummary(out io.Writer, s *summary) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "file:\t%s\n", s.Path)
	fmt.Fprintf(w, "version:\t%s (maintenance %d)\n", s.Version, s.Maintenance)
	fmt.Fprintf(w, "code page:\t%d\n", s.CodePage)
	fmt.Fprintf(w, "handles:\t%d in %d blocks\n", s.Handles, s.MapBlocks)
	fmt.Fprintf(w, "classes:\t%d\n", len(s.Classes))
	fmt.Fprintf(w, "LUNITS:\t%d\n", s.LUnits)
	fmt.Fprintf(w, "INSUNITS:\t%d\n", s.InsUnits)
	if !s.Created.IsZero() {
		fmt.Fprintf(w, "created:\t%s\n", s.Created.Format(time.RFC3339))
	}
	if !s.Updated.IsZero() {
		fmt.Fprintf(w, "updated:\t%s\n", s.Updated.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "metric:\t%t\n", s.Metric)
	fmt.Fprintf(w, "preview:\t%t\n", s.Preview)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SECTION\tSIZE\tPAGES\tFINGERPRINT")
	for _, sec := range s.Sections {
		fmt.Fprintf(w, "%s\t%d\t%d\t%016x\n", sec.Name, sec.Size, sec.Pages, sec.Fingerprint)
	}

	return w.Flush()
}
