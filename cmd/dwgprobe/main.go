// Command dwgprobe inspects drawing files with the dwg decoder.
package main

import (
	"io"
	"os"

	"github.com/minio/cli"
	"github.com/sirupsen/logrus"
)

// Version of dwgprobe.
var Version = "DEVELOPMENT"

var globalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "debug",
		Usage: "Log decode phases to stderr.",
	},
}

var helpTemplate = `NAME:
  {{.Name}} - {{.Usage}}

DESCRIPTION:
  {{.Description}}

USAGE:
  {{.Name}} {{if .Flags}}[flags] {{end}}command{{if .Flags}}{{end}} [arguments...]

COMMANDS:
  {{range .Commands}}{{join .Names ", "}}{{ "\t" }}{{.Usage}}
  {{end}}{{if .Flags}}
FLAGS:
  {{range .Flags}}{{.}}
  {{end}}{{end}}
VERSION:
  ` + Version +
	`{{ "\n"}}`

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "dwgprobe"
	app.Usage = "Inspect DWG drawing files."
	app.Description = `dwgprobe decodes the container structure of DWG files: the file header, the section layout, header variables, classes and the object map.`
	app.Version = Version
	app.HideVersion = true
	app.Flags = globalFlags
	app.CustomAppHelpTemplate = helpTemplate
	app.Commands = []cli.Command{infoCmd, scanCmd, fieldsCmd}

	return app
}

// logger returns a debug logger on the app's error writer when --debug is
// set, nil otherwise.
func logger(c *cli.Context) logrus.FieldLogger {
	if !c.GlobalBool("debug") {
		return nil
	}
	var w io.Writer = os.Stderr
	if c.App != nil && c.App.ErrWriter != nil {
		w = c.App.ErrWriter
	}

	l := logrus.New()
	l.Out = w
	l.Level = logrus.DebugLevel

	return l.WithField("cmd", c.Command.Name)
}

func main() {
	newApp().RunAndExitOnError()
}
