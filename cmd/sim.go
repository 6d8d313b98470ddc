package cmd

import (
	"cardprobe/pkg/card"
	"cardprobe/service/http"
	"cardprobe/utils"
	"encoding/hex"
	"fmt"
	"github.com/urfave/cli"
	"net"
	"os"
	"os/signal"
	"syscall"
)

const (
	defaultListen = "127.0.0.1:8180"
	defaultUID    = "04a1b2c3d4e5f6"
)

var sim = cli.Command{
	Name:  "sim",
	Usage: "serve a simulated card reader with an in-memory card",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "listen, l",
			Usage: "address to listen on",
			Value: defaultListen,
		},
		cli.StringFlag{
			Name:  "uid",
			Usage: "hex UID of the simulated card, empty for no card",
			Value: defaultUID,
		},
		cli.IntFlag{
			Name:  "capacity",
			Usage: "card memory size in bytes",
			Value: card.DefaultCapacity,
		},
	},
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 0, utils.ExactArgs, nil); err != nil {
			return err
		}

		return serveSim(context)
	},
}

func serveSim(context *cli.Context) error {
	uid, err := hex.DecodeString(context.String("uid"))
	if err != nil {
		return fmt.Errorf("invalid uid: %v", err)
	}

	listener, err := net.Listen("tcp", context.String("listen"))
	if err != nil {
		return fmt.Errorf("failed to listen: %v", err)
	}

	server, err := http.NewServer(context, listener, card.NewReader(uid, context.Int("capacity")))
	if err != nil {
		listener.Close()
		return err
	}

	if err := server.Run(); err != nil {
		return err
	}
	fmt.Fprintf(context.App.Writer, "card reader simulator listening on http://%s\n", listener.Addr())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	select {
	case <-ch:
	case <-server.StopChan:
	}

	return server.Stop()
}
