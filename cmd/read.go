package cmd

import (
	"cardprobe/service"
	"cardprobe/utils"
	"fmt"
	"github.com/urfave/cli"
	"net/url"
	"strconv"
)

var read = cli.Command{
	Name:      "read",
	Usage:     "read len bytes from the card, answered base64 encoded",
	ArgsUsage: "<len>",
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 1, utils.ExactArgs, readArgsCheck); err != nil {
			return err
		}

		return execSend(service.Read, url.Values{"len": {context.Args().First()}}, context)
	},
}

func readArgsCheck(args cli.Args) error {
	n, err := strconv.Atoi(args.First())
	if err != nil || n < 1 || n > 255 {
		return fmt.Errorf("len must be an integer between 1 and 255, got %q", args.First())
	}

	return nil
}
