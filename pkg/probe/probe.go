// Package probe runs the card reader demonstration flow: open the port, read
// the card UID, write a payload, read it back and close the port.
package probe

import (
	"cardprobe/pkg/logflags"
	"cardprobe/service"
	"cardprobe/utils"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPort = "COM7"
	SuccessLine = "Read succeeded!"
)

// DefaultPayload returns the bytes written when no payload is configured.
func DefaultPayload() []byte {
	return []byte{64, 32}
}

type Config struct {
	Port    string
	Payload []byte

	// Optional /open parameters, sent only when set.
	CardType string
	Delay    uint
	Debug    bool
}

// Step is one request of the flow and the body it answered with.
type Step struct {
	Cmd    service.CmdType
	Params url.Values
	Body   string
}

type Report struct {
	Steps    []Step
	Encoded  string
	Verified bool
}

// Bodies returns the response bodies in call order.
func (r *Report) Bodies() []string {
	bodies := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		bodies = append(bodies, s.Body)
	}
	return bodies
}

type Probe struct {
	client service.Client
	cfg    Config
	out    io.Writer
	logger logflags.Logger
}

func New(client service.Client, cfg Config, out io.Writer) *Probe {
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.Payload == nil {
		cfg.Payload = DefaultPayload()
	}
	return &Probe{
		client: client,
		cfg:    cfg,
		out:    out,
		logger: logflags.ProbeLogger(),
	}
}

// Run issues the five requests in order and prints each body as it arrives.
// The first failing request aborts the run; the returned report holds the
// steps completed so far.
func (p *Probe) Run() (*Report, error) {
	report := &Report{
		Encoded: base64.StdEncoding.EncodeToString(p.cfg.Payload),
	}

	if _, err := p.step(report, "Opening serial port..", service.Open, p.openParams()); err != nil {
		return report, err
	}

	if _, err := p.step(report, "Reading card UID", service.Uid, nil); err != nil {
		return report, err
	}

	header := "Writing data base64=" + report.Encoded
	if _, err := p.step(report, header, service.Write, url.Values{"data": {report.Encoded}}); err != nil {
		return report, err
	}

	n := strconv.Itoa(len(p.cfg.Payload))
	body, err := p.step(report, "Reading data", service.Read, url.Values{"len": {n}})
	if err != nil {
		return report, err
	}
	if strings.Contains(body, report.Encoded) {
		report.Verified = true
		if err := utils.FprintLines(p.out, SuccessLine); err != nil {
			return report, err
		}
	}

	if _, err := p.step(report, "Closing serial port..", service.Close, nil); err != nil {
		return report, err
	}

	return report, nil
}

func (p *Probe) step(report *Report, header string, cmd service.CmdType, params url.Values) (string, error) {
	if err := utils.FprintLines(p.out, header); err != nil {
		return "", err
	}

	p.logger.Debugf("GET %s %s", cmd.Path(), params.Encode())
	body, err := p.client.Send(cmd, params)
	if err != nil {
		p.logger.Errorf("%s failed: %v", cmd, err)
		return "", fmt.Errorf("%s: %w", cmd, err)
	}
	p.logger.Debugf("%s answered %d bytes", cmd, len(body))

	report.Steps = append(report.Steps, Step{Cmd: cmd, Params: params, Body: body})
	if err := utils.FprintLines(p.out, body); err != nil {
		return "", err
	}
	return body, nil
}

func (p *Probe) openParams() url.Values {
	params := url.Values{"port": {p.cfg.Port}}
	if p.cfg.CardType != "" {
		params.Set("card_type", p.cfg.CardType)
	}
	if p.cfg.Delay > 0 {
		params.Set("delay", strconv.FormatUint(uint64(p.cfg.Delay), 10))
	}
	if p.cfg.Debug {
		params.Set("debug", "true")
	}
	return params
}
