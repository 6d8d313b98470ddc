package utils

import (
	"bytes"
	"net"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHostPort(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://127.0.0.1:8180", "127.0.0.1:8180"},
		{"http://localhost", "localhost:80"},
		{"https://reader.local", "reader.local:443"},
	}
	for _, tt := range tests {
		got, err := HostPort(tt.base)
		if err != nil {
			t.Fatalf("HostPort(%q) error = %v", tt.base, err)
		}
		if got != tt.want {
			t.Errorf("HostPort(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestTelnet(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := l.Addr().String()

	if !Telnet(addr, time.Second) {
		t.Fatalf("expected %s to be reachable", addr)
	}
	l.Close()

	if Telnet(addr, time.Second) {
		t.Fatalf("expected %s to be unreachable after close", addr)
	}
}

func TestRequestHelpers(t *testing.T) {
	r := httptest.NewRequest("GET", "http://127.0.0.1:8180/read?len=2", nil)
	r.RemoteAddr = "10.0.0.7:51234"

	if got := GetFullURL(r); got != "http://127.0.0.1:8180/read?len=2" {
		t.Errorf("GetFullURL() = %q", got)
	}
	if got := GetClientIP(r); got != "10.0.0.7" {
		t.Errorf("GetClientIP() = %q", got)
	}

	r.Header.Set("X-Forwarded-For", "192.168.1.2, 10.0.0.1")
	if got := GetClientIP(r); got != "192.168.1.2" {
		t.Errorf("GetClientIP() with X-Forwarded-For = %q", got)
	}
}

func TestFprintLines(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintLines(&buf, "Reading card UID", `{"success":true}`); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Reading card UID\n{\"success\":true}\n" {
		t.Fatalf("FprintLines() wrote %q", got)
	}
}
