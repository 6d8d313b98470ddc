package cmd

import (
	"cardprobe/service"
	"cardprobe/utils"
	"fmt"
	"github.com/urfave/cli"
	"net/url"
	"strconv"
)

var open = cli.Command{
	Name:      "open",
	Usage:     "open the serial port of the card reader",
	ArgsUsage: "<port>",
	Flags: []cli.Flag{
		cardTypeFlag,
		delayFlag,
		debugFlag,
	},
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 1, utils.ExactArgs, openArgsCheck); err != nil {
			return err
		}

		params := url.Values{"port": {context.Args().First()}}
		if ct := context.String("card-type"); ct != "" {
			params.Set("card_type", ct)
		}
		if d := context.Uint("delay"); d > 0 {
			params.Set("delay", strconv.FormatUint(uint64(d), 10))
		}
		if context.Bool("debug") {
			params.Set("debug", "true")
		}

		return execSend(service.Open, params, context)
	},
}

func openArgsCheck(args cli.Args) error {
	if args.First() == "" {
		return fmt.Errorf("port name must not be empty")
	}

	return nil
}

var isOpen = cli.Command{
	Name:  "isopen",
	Usage: "report whether the serial port is open",
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 0, utils.ExactArgs, nil); err != nil {
			return err
		}

		return execSend(service.IsOpen, nil, context)
	},
}

var closePort = cli.Command{
	Name:  "close",
	Usage: "close the serial port",
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 0, utils.ExactArgs, nil); err != nil {
			return err
		}

		return execSend(service.Close, nil, context)
	},
}

var uid = cli.Command{
	Name:  "uid",
	Usage: "read the UID of the card on the reader",
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 0, utils.ExactArgs, nil); err != nil {
			return err
		}

		return execSend(service.Uid, nil, context)
	},
}
