package cmd

import (
	"cardprobe/pkg/logflags"
	"github.com/urfave/cli"
)

const (
	usage = `cardprobe talks to a serial card reader server over HTTP. Without a command
             it runs the demo flow: open the port, read the card UID, write a payload,
             read it back and close the port`

	defaultBase = "http://127.0.0.1:8180"
)

func NewProbe() *cli.App {
	app := cli.NewApp()
	app.Name = "cardprobe"
	app.Usage = usage
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "base, b",
			Usage:  "base URL of the card reader server",
			Value:  defaultBase,
			EnvVar: "CARDPROBE_BASE",
		},
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "per request timeout, 0 waits forever",
		},
		cli.BoolFlag{
			Name:  "logFlag, f",
			Usage: "enable debug logging",
		},
		cli.StringFlag{
			Name:  "logStr, s",
			Usage: "comma separated subsystems to log: probe, http",
			Value: "probe",
		},
		cli.StringFlag{
			Name:  "logDesc, d",
			Usage: "specify the log file path",
			Value: logflags.DefaultLogDesc,
		},
	}
	app.Flags = append(app.Flags, runFlags...)
	app.Action = runAction
	app.Commands = []cli.Command{
		run,
		open,
		isOpen,
		uid,
		write,
		read,
		closePort,
		term,
		sim,
	}

	return app
}
