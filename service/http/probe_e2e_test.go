package http

import (
	"bytes"
	"cardprobe/pkg/probe"
	"strings"
	"testing"
)

func TestProbeAgainstSimulator(t *testing.T) {
	c := newTestServer(t, []byte{0x04, 0xa1, 0xb2, 0xc3})

	var out bytes.Buffer
	report, err := probe.New(c, probe.Config{}, &out).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !report.Verified {
		t.Fatalf("round trip not verified:\n%s", out.String())
	}

	bodies := report.Bodies()
	want := []string{
		`{"success":true,"message":"OK"}`,
		`{"success":true,"message":"04a1b2c3"}`,
		`{"success":true,"message":"write succeeded, data length: 2"}`,
		`{"success":true,"message":"QCA="}`,
		`{"success":true,"message":"OK"}`,
	}
	if strings.Join(bodies, "\n") != strings.Join(want, "\n") {
		t.Fatalf("bodies = %v, want %v", bodies, want)
	}
}
