package terminal

import (
	"bytes"
	"cardprobe/service"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"
)

type call struct {
	cmd    service.CmdType
	params url.Values
}

type fakeClient struct {
	calls []call
	body  string
	err   error
}

func (f *fakeClient) Send(cmd service.CmdType, params url.Values) (string, error) {
	f.calls = append(f.calls, call{cmd: cmd, params: params})
	return f.body, f.err
}

func (f *fakeClient) IsReaderServer() bool { return true }

func newWriterTo(w io.Writer) *transcriptWriter {
	return &transcriptWriter{pw: &pagingWriter{w: w, def: w}}
}

func newTestTerm(c service.Client) (*Term, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Term{
		client: c,
		prompt: prompt,
		stdout: newWriterTo(&buf),
		cmds:   NewCommands(c),
	}, &buf
}

func TestCommandsCall(t *testing.T) {
	tests := []struct {
		line   string
		cmd    service.CmdType
		params url.Values
	}{
		{"open COM7", service.Open, url.Values{"port": {"COM7"}}},
		{"o COM7 Mifare", service.Open, url.Values{"port": {"COM7"}, "card_type": {"Mifare"}}},
		{"isopen", service.IsOpen, nil},
		{"uid", service.Uid, nil},
		{"write hello", service.Write, url.Values{"data": {"aGVsbG8="}}},
		{`w "hello world"`, service.Write, url.Values{"data": {"aGVsbG8gd29ybGQ="}}},
		{"write -b QCA=", service.Write, url.Values{"data": {"QCA="}}},
		{"write -x 4020", service.Write, url.Values{"data": {"QCA="}}},
		{"read 2", service.Read, url.Values{"len": {"2"}}},
		{"close", service.Close, nil},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			fc := &fakeClient{body: `{"success":true,"message":"OK"}`}
			term, out := newTestTerm(fc)

			if err := term.cmds.Call(tt.line, term); err != nil {
				t.Fatalf("Call(%q) error = %v", tt.line, err)
			}
			if len(fc.calls) != 1 {
				t.Fatalf("Call(%q) made %d requests, want 1", tt.line, len(fc.calls))
			}
			got := fc.calls[0]
			if got.cmd != tt.cmd || got.params.Encode() != tt.params.Encode() {
				t.Fatalf("Call(%q) sent %s %v, want %s %v", tt.line, got.cmd, got.params, tt.cmd, tt.params)
			}
			if !strings.Contains(out.String(), `{"success":true,"message":"OK"}`) {
				t.Fatalf("raw body not printed: %q", out.String())
			}
		})
	}
}

func TestCommandsArgumentErrors(t *testing.T) {
	lines := []string{
		"open",
		"open a b c",
		"uid now",
		"write",
		"write -z 00",
		"write -x zz",
		"read",
		"read 0",
		"read 256",
		"close now",
		"bogus",
		`write "unterminated`,
	}

	for _, line := range lines {
		fc := &fakeClient{}
		term, _ := newTestTerm(fc)
		if err := term.cmds.Call(line, term); err == nil {
			t.Errorf("Call(%q) expected error", line)
		}
		if len(fc.calls) != 0 {
			t.Errorf("Call(%q) should not reach the server", line)
		}
	}
}

func TestReadAsText(t *testing.T) {
	fc := &fakeClient{body: `{"success":true,"message":"aGk="}`}
	term, out := newTestTerm(fc)

	if err := term.cmds.Call("read 2 -t", term); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `text: "hi"`) {
		t.Fatalf("decoded text missing: %q", out.String())
	}
}

func TestSendErrorAndExit(t *testing.T) {
	fc := &fakeClient{err: errors.New("connection refused")}
	term, _ := newTestTerm(fc)

	if err := term.cmds.Call("uid", term); err == nil {
		t.Fatal("expected transport error")
	}
	term.stdout.pw.Reset()

	err := term.cmds.Call("exit", term)
	if _, ok := err.(ExitRequestError); !ok {
		t.Fatalf("exit returned %v, want ExitRequestError", err)
	}
	if err := term.cmds.Call("   ", term); err != nil {
		t.Fatalf("empty line returned %v", err)
	}
}

func TestHelp(t *testing.T) {
	term, out := newTestTerm(&fakeClient{})

	if err := term.cmds.Call("help", term); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"open", "isopen", "uid", "write", "read", "close", "exit"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help output missing %q", name)
		}
	}

	out.Reset()
	if err := term.cmds.Call("help read", term); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "read <len> [-t]") {
		t.Fatalf("help read output = %q", out.String())
	}
	if err := term.cmds.Call("help bogus", term); err == nil {
		t.Fatal("expected error for unknown command help")
	}
}
