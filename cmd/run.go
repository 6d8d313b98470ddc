package cmd

import (
	"cardprobe/pkg/probe"
	"encoding/base64"
	"fmt"
	"github.com/urfave/cli"
)

var runFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "port, p",
		Usage: "serial port the server should open",
		Value: probe.DefaultPort,
	},
	cli.StringFlag{
		Name:  "data",
		Usage: "payload to write, base64 encoded (default QCA=, the bytes 64 32)",
	},
	cli.StringFlag{
		Name:  "text",
		Usage: "payload to write, as text",
	},
	cardTypeFlag,
	delayFlag,
	debugFlag,
}

var (
	cardTypeFlag = cli.StringFlag{
		Name:  "card-type",
		Usage: "card type: Mifare, UltraLight, CPU, ISO14443B, ISO15693, Other",
	}
	delayFlag = cli.UintFlag{
		Name:  "delay",
		Usage: "reader poll interval in milliseconds",
	}
	debugFlag = cli.BoolFlag{
		Name:  "debug",
		Usage: "enable debug output on the reader server",
	}
)

var run = cli.Command{
	Name:  "run",
	Usage: "run the open, uid, write, read, close sequence and verify the read back data",
	Flags: runFlags,
	Action: func(context *cli.Context) error {
		return runAction(context)
	},
}

func runAction(context *cli.Context) error {
	if context.NArg() != 0 {
		_ = cli.ShowAppHelp(context)
		return fmt.Errorf("unknown command %q", context.Args().First())
	}

	return exec(Run, context)
}

func probeConfig(context *cli.Context) (probe.Config, error) {
	cfg := probe.Config{
		Port:     context.String("port"),
		CardType: context.String("card-type"),
		Delay:    context.Uint("delay"),
		Debug:    context.Bool("debug"),
	}

	data, text := context.String("data"), context.String("text")
	switch {
	case data != "" && text != "":
		return cfg, fmt.Errorf("--data and --text are mutually exclusive")
	case data != "":
		payload, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return cfg, fmt.Errorf("invalid --data: %w", err)
		}
		cfg.Payload = payload
	case text != "":
		cfg.Payload = []byte(text)
	}

	if cfg.Payload != nil && (len(cfg.Payload) == 0 || len(cfg.Payload) > 255) {
		return cfg, fmt.Errorf("payload must be 1-255 bytes, got %d", len(cfg.Payload))
	}

	return cfg, nil
}
