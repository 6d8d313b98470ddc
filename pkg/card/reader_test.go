package card

import (
	"bytes"
	perr "cardprobe/error"
	"errors"
	"testing"
)

var testUID = []byte{0x04, 0xa1, 0xb2, 0xc3}

func TestReaderClosedPort(t *testing.T) {
	r := NewReader(testUID, 0)

	if r.IsOpen() {
		t.Fatal("new reader should be closed")
	}
	if _, err := r.UID(); !errors.Is(err, perr.PortNotOpened) {
		t.Fatalf("UID() error = %v, want %v", err, perr.PortNotOpened)
	}
	if _, err := r.Write([]byte{1}); !errors.Is(err, perr.PortNotOpened) {
		t.Fatalf("Write() error = %v, want %v", err, perr.PortNotOpened)
	}
	if _, err := r.Read(1); !errors.Is(err, perr.PortNotOpened) {
		t.Fatalf("Read() error = %v, want %v", err, perr.PortNotOpened)
	}
}

func TestReaderOpen(t *testing.T) {
	r := NewReader(testUID, 0)

	if err := r.Open("", OpenOptions{}); !errors.Is(err, perr.PortRequired) {
		t.Fatalf("Open(\"\") error = %v, want %v", err, perr.PortRequired)
	}
	if err := r.Open("COM7", OpenOptions{CardType: Mifare}); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !r.IsOpen() || r.Port() != "COM7" {
		t.Fatalf("reader not open on COM7: open=%v port=%q", r.IsOpen(), r.Port())
	}
	if opts := r.Options(); opts.Delay != DefaultDelay || opts.CardType != Mifare {
		t.Fatalf("unexpected options %+v", opts)
	}

	r.Close()
	r.Close()
	if r.IsOpen() {
		t.Fatal("reader still open after Close")
	}
}

func TestReaderRoundTrip(t *testing.T) {
	r := NewReader(testUID, 8)
	if err := r.Open("COM7", OpenOptions{}); err != nil {
		t.Fatal(err)
	}

	uid, err := r.UID()
	if err != nil {
		t.Fatalf("UID() error = %v", err)
	}
	if uid != "04a1b2c3" {
		t.Fatalf("UID() = %q, want %q", uid, "04a1b2c3")
	}

	n, err := r.Write([]byte{64, 32})
	if err != nil || n != 2 {
		t.Fatalf("Write() = %d, %v", n, err)
	}

	got, err := r.Read(2)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !bytes.Equal(got, []byte{64, 32}) {
		t.Fatalf("Read() = %v, want [64 32]", got)
	}

	if _, err := r.Write(make([]byte, 9)); !errors.Is(err, perr.DataTooLong) {
		t.Fatalf("Write() error = %v, want %v", err, perr.DataTooLong)
	}
	if _, err := r.Read(9); !errors.Is(err, perr.InvalidLength) {
		t.Fatalf("Read(9) error = %v, want %v", err, perr.InvalidLength)
	}
	if _, err := r.Read(MaxReadLen + 1); !errors.Is(err, perr.InvalidLength) {
		t.Fatalf("Read(256) error = %v, want %v", err, perr.InvalidLength)
	}
}

func TestReaderNoCard(t *testing.T) {
	r := NewReader(nil, 0)
	if err := r.Open("COM7", OpenOptions{}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.UID(); !errors.Is(err, perr.NoCard) {
		t.Fatalf("UID() error = %v, want %v", err, perr.NoCard)
	}
}

func TestParseCardType(t *testing.T) {
	tests := map[string]CardType{
		"Mifare":     Mifare,
		"UltraLight": UltraLight,
		"CPU":        CPU,
		"ISO14443B":  ISO14443B,
		"ISO15693":   ISO15693,
		"Other":      Other,
		"bogus":      Other,
	}
	for in, want := range tests {
		if got := ParseCardType(in); got != want {
			t.Errorf("ParseCardType(%q) = %v, want %v", in, got, want)
		}
	}
	if UltraLight.String() != "UltraLight" {
		t.Fatalf("String() = %q", UltraLight.String())
	}
}
