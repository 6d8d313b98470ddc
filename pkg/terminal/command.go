package terminal

import (
	"cardprobe/service"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/google/shlex"
	"net/url"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

var (
	argumentsErr = "invalid number of arguments, expected %d, actual %d"
)

type cmdFn func(term *Term, args []string) error

type command struct {
	aliases []string
	fn      cmdFn
	help    string
}

func (c command) match(cmdstr string) bool {
	for _, v := range c.aliases {
		if v == cmdstr {
			return true
		}
	}
	return false
}

type Commands struct {
	cmds   []command
	client service.Client
}

func NewCommands(client service.Client) *Commands {
	c := &Commands{
		client: client,
	}

	c.cmds = []command{
		{
			aliases: []string{"help", "h"},
			fn:      c.help,
			help: `Prints the help message.

	help [command]

Type "help" followed by the name of a command for more information about it.`},
		{
			aliases: []string{"open", "o"},
			fn:      open,
			help: `open the serial port of the card reader.

	open <port> [card_type]

card_type is one of Mifare, UltraLight, CPU, ISO14443B, ISO15693, Other.`,
		},
		{
			aliases: []string{"isopen"},
			fn:      isOpen,
			help:    "report whether the serial port is open.",
		},
		{
			aliases: []string{"uid", "u"},
			fn:      uid,
			help:    "read the UID of the card on the reader.",
		},
		{
			aliases: []string{"write", "w"},
			fn:      write,
			help: `write data to the card.

	write [-b|-x] <data>

Data is written as text unless -b (base64) or -x (hex) is given.`,
		},
		{
			aliases: []string{"read", "r"},
			fn:      read,
			help: `read data from the card.

	read <len> [-t]

The server answers base64; -t additionally prints the data decoded as text.`,
		},
		{
			aliases: []string{"close", "c"},
			fn:      closePort,
			help:    "close the serial port.",
		},
		{
			aliases: []string{"exit", "quit", "q"},
			fn:      exit,
			help:    "exit the probe terminal",
		},
	}
	return c
}

// Find will look up the command function for the given command input.
// If it cannot find the command it will default to noCmdAvailable().
func (c *Commands) Find(cmdstr string) command {
	if cmdstr == "" {
		return command{aliases: []string{"nullcmd"}, fn: nullCommand}
	}

	for _, v := range c.cmds {
		if v.match(cmdstr) {
			return v
		}
	}

	return command{aliases: []string{"nocmd"}, fn: noCmdAvailable}
}

func (c *Commands) Call(cmdStr string, t *Term) error {
	args, err := shlex.Split(cmdStr)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	return c.Find(args[0]).fn(t, args[1:])
}

func (c *Commands) help(t *Term, args []string) error {
	if len(args) > 0 {
		cmd := c.Find(args[0])
		if cmd.help == "" {
			return errNoCmd
		}
		fmt.Fprintln(t.stdout, cmd.help)
		return nil
	}

	fmt.Fprintln(t.stdout, "The following commands are available:")
	w := new(tabwriter.Writer)
	w.Init(t.stdout, 0, 8, 0, '-', 0)
	for _, cmd := range c.cmds {
		h := cmd.help
		if idx := strings.Index(h, "\n"); idx >= 0 {
			h = h[:idx]
		}
		if len(cmd.aliases) > 1 {
			fmt.Fprintf(w, "    %s (alias: %s) \t %s\n", cmd.aliases[0], strings.Join(cmd.aliases[1:], " | "), h)
		} else {
			fmt.Fprintf(w, "    %s \t %s\n", cmd.aliases[0], h)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(t.stdout)
	fmt.Fprintln(t.stdout, "Type help followed by a command for full documentation.")
	return nil
}

// send issues cmd, prints the raw body and, when the body is a reader
// envelope, its message.
func send(t *Term, cmd service.CmdType, params url.Values) (*service.Response, error) {
	body, err := t.client.Send(cmd, params)
	if err != nil {
		t.RedirectTo(os.Stderr)
		fmt.Fprintln(t.stdout, err.Error())
		return nil, err
	}

	fmt.Fprintln(t.stdout, body)
	resp, err := service.ParseResponse(body)
	if err != nil {
		return nil, nil
	}

	if resp.Success {
		t.stdout.highlight(ansiGreen, resp.Message)
	} else {
		t.stdout.highlight(ansiRed, resp.Message)
	}
	return resp, nil
}

func open(t *Term, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf(argumentsErr, 1, len(args))
	}

	params := url.Values{"port": {args[0]}}
	if len(args) == 2 {
		params.Set("card_type", args[1])
	}
	_, err := send(t, service.Open, params)
	return err
}

func isOpen(t *Term, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf(argumentsErr, 0, len(args))
	}
	_, err := send(t, service.IsOpen, nil)
	return err
}

func uid(t *Term, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf(argumentsErr, 0, len(args))
	}
	_, err := send(t, service.Uid, nil)
	return err
}

func write(t *Term, args []string) error {
	var (
		data []byte
		err  error
	)

	switch {
	case len(args) == 1:
		data = []byte(args[0])
	case len(args) == 2 && args[0] == "-b":
		data, err = base64.StdEncoding.DecodeString(args[1])
	case len(args) == 2 && args[0] == "-x":
		data, err = hex.DecodeString(args[1])
	case len(args) == 2:
		return fmt.Errorf("unknown write option %s", args[0])
	default:
		return fmt.Errorf(argumentsErr, 1, len(args))
	}
	if err != nil {
		return fmt.Errorf("invalid data: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	fmt.Fprintf(t.stdout, "writing %d byte(s) base64=%s\n", len(data), encoded)
	_, err = send(t, service.Write, url.Values{"data": {encoded}})
	return err
}

func read(t *Term, args []string) error {
	asText := false
	if len(args) == 2 && args[1] == "-t" {
		asText = true
		args = args[:1]
	}
	if len(args) != 1 {
		return fmt.Errorf(argumentsErr, 1, len(args))
	}

	n, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil || n == 0 {
		return fmt.Errorf("invalid length %q, expected 1-255", args[0])
	}

	resp, err := send(t, service.Read, url.Values{"len": {args[0]}})
	if err != nil || resp == nil || !resp.Success || !asText {
		return err
	}

	data, err := base64.StdEncoding.DecodeString(resp.Message)
	if err != nil {
		return fmt.Errorf("response is not base64: %w", err)
	}
	_, err = fmt.Fprintf(t.stdout, "text: %q\n", string(data))
	return err
}

func closePort(t *Term, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf(argumentsErr, 0, len(args))
	}
	_, err := send(t, service.Close, nil)
	return err
}

type ExitRequestError struct{}

func (ere ExitRequestError) Error() string {
	return ""
}

func exit(t *Term, args []string) error {
	return ExitRequestError{}
}

var errNoCmd = errors.New("command not available")

func noCmdAvailable(t *Term, args []string) error {
	return errNoCmd
}

func nullCommand(t *Term, args []string) error {
	return nil
}
