package logflags

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name    string
		flag    bool
		logStr  string
		http    bool
		probe   bool
		wantErr bool
	}{
		{name: "disabled", flag: false, logStr: "http,probe"},
		{name: "default subsystem", flag: true, logStr: "", probe: true},
		{name: "http only", flag: true, logStr: "http", http: true},
		{name: "both", flag: true, logStr: "http, probe", http: true, probe: true},
		{name: "unknown", flag: true, logStr: "dwarf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Setup(tt.flag, tt.logStr, DefaultLogDesc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Setup() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if HTTP() != tt.http || Probe() != tt.probe {
				t.Fatalf("got http=%v probe=%v, want http=%v probe=%v", HTTP(), Probe(), tt.http, tt.probe)
			}
		})
	}
}

func TestSetupLogFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "probe.log")
	if err := Setup(true, "probe", dest); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer Setup(false, "", DefaultLogDesc)

	if logOut == nil {
		t.Fatal("expected log output to be set")
	}
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := Setup(false, "", DefaultLogDesc); err != nil {
		t.Fatal(err)
	}
	logOut = &buf
	defer func() { _ = Setup(false, "", DefaultLogDesc) }()

	l := ProbeLogger()
	l.Debugf("hidden %d", 1)
	l.Errorf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message logged while disabled: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Fatalf("error message missing: %q", out)
	}
}
