package cmd

import (
	"cardprobe/service"
	"cardprobe/utils"
	"encoding/base64"
	"fmt"
	"github.com/urfave/cli"
	"net/url"
)

var write = cli.Command{
	Name:      "write",
	Usage:     "write base64 encoded data to the card",
	ArgsUsage: "<base64>",
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 1, utils.ExactArgs, writeArgsCheck); err != nil {
			return err
		}

		return execSend(service.Write, url.Values{"data": {context.Args().First()}}, context)
	},
}

func writeArgsCheck(args cli.Args) error {
	data, err := base64.StdEncoding.DecodeString(args.First())
	if err != nil {
		return fmt.Errorf("data must be standard base64: %v", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("data must not be empty")
	}

	return nil
}
