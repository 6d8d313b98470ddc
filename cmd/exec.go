package cmd

import (
	"cardprobe/pkg/logflags"
	"cardprobe/pkg/probe"
	"cardprobe/pkg/terminal"
	"cardprobe/service"
	"cardprobe/service/http"
	"cardprobe/utils"
	"fmt"
	"github.com/urfave/cli"
	"net/url"
)

type ExecType int

const (
	Run ExecType = iota
	Send
	Term
)

type executor struct {
	et     ExecType
	cmd    service.CmdType
	params url.Values
	ctx    *cli.Context
}

func newExecutor(et ExecType, ctx *cli.Context) *executor {
	return &executor{
		et:  et,
		ctx: ctx,
	}
}

func (e *executor) run() error {
	if err := logflags.Setup(e.ctx.GlobalBool("logFlag"), e.ctx.GlobalString("logStr"), e.ctx.GlobalString("logDesc")); err != nil {
		return err
	}

	client, err := http.NewClient(e.ctx.GlobalString("base"), e.ctx.GlobalDuration("timeout"))
	if err != nil {
		return err
	}

	switch e.et {
	case Run:
		return e.probe(client)
	case Send:
		return e.send(client)
	case Term:
		return e.term(client)
	}

	return nil
}

func exec(et ExecType, ctx *cli.Context) error {
	ex := newExecutor(et, ctx)
	return ex.run()
}

func execSend(cmd service.CmdType, params url.Values, ctx *cli.Context) error {
	ex := newExecutor(Send, ctx)
	ex.cmd = cmd
	ex.params = params
	return ex.run()
}

func (e *executor) probe(client service.Client) error {
	cfg, err := probeConfig(e.ctx)
	if err != nil {
		return err
	}

	_, err = probe.New(client, cfg, e.ctx.App.Writer).Run()
	return err
}

func (e *executor) send(client service.Client) error {
	body, err := client.Send(e.cmd, e.params)
	if err != nil {
		return err
	}

	return utils.FprintLines(e.ctx.App.Writer, body)
}

func (e *executor) term(client *http.Client) error {
	if !client.IsReaderServer() {
		return fmt.Errorf("%s is not a card reader server", client.Base())
	}

	t := terminal.New(client)
	if path := e.ctx.String("transcript"); path != "" {
		if err := t.Transcript(path); err != nil {
			return err
		}
	}
	return t.Run()
}
