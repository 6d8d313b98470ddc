package cmd

import (
	"cardprobe/utils"
	"fmt"
	"github.com/urfave/cli"
	"time"
)

var term = cli.Command{
	Name:  "term",
	Usage: "open an interactive terminal against the card reader server",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "transcript, t",
			Usage: "also record the session to this file",
		},
	},
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 0, utils.ExactArgs, nil); err != nil {
			return err
		}
		if err := termCheck(context.GlobalString("base")); err != nil {
			return err
		}

		return exec(Term, context)
	},
}

func termCheck(base string) error {
	addr, err := utils.HostPort(base)
	if err != nil {
		return err
	}
	if utils.Telnet(addr, 5*time.Second) {
		return nil
	}

	return fmt.Errorf("invalid connection address: %s", addr)
}
