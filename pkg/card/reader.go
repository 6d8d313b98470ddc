package card

import (
	perr "cardprobe/error"
	"encoding/hex"
	"sync"
	"time"
)

const (
	DefaultDelay    = 300 * time.Millisecond
	DefaultCapacity = 144
	MaxReadLen      = 255
)

// OpenOptions are the optional settings accepted when opening the port.
type OpenOptions struct {
	CardType CardType
	Delay    time.Duration
	Debug    bool
}

// Reader is an in-memory card reader with a single card on it.
type Reader struct {
	mu       sync.Mutex
	opened   bool
	port     string
	opts     OpenOptions
	uid      []byte
	memory   []byte
	capacity int
}

// NewReader returns a closed reader holding a card with the given uid and
// memory capacity. A nil uid means no card is present.
func NewReader(uid []byte, capacity int) *Reader {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Reader{
		uid:      append([]byte(nil), uid...),
		memory:   make([]byte, capacity),
		capacity: capacity,
	}
}

func (r *Reader) Open(port string, opts OpenOptions) error {
	if port == "" {
		return perr.PortRequired
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.opened = true
	r.port = port
	r.opts = opts
	return nil
}

// Close closes the port. Closing a closed port is not an error.
func (r *Reader) Close() {
	r.mu.Lock()
	r.opened = false
	r.port = ""
	r.mu.Unlock()
}

func (r *Reader) IsOpen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opened
}

func (r *Reader) Port() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.port
}

func (r *Reader) Options() OpenOptions {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts
}

// UID returns the hex encoded uid of the card on the reader.
func (r *Reader) UID() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.opened {
		return "", perr.PortNotOpened
	}
	if len(r.uid) == 0 {
		return "", perr.NoCard
	}
	return hex.EncodeToString(r.uid), nil
}

// Write stores data at the start of card memory.
func (r *Reader) Write(data []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.opened {
		return 0, perr.PortNotOpened
	}
	if len(r.uid) == 0 {
		return 0, perr.NoCard
	}
	if len(data) > r.capacity {
		return 0, perr.DataTooLong
	}
	copy(r.memory, data)
	return len(data), nil
}

// Read returns the first n bytes of card memory.
func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 || n > MaxReadLen {
		return nil, perr.InvalidLength
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.opened {
		return nil, perr.PortNotOpened
	}
	if len(r.uid) == 0 {
		return nil, perr.NoCard
	}
	if n > r.capacity {
		return nil, perr.InvalidLength
	}
	return append([]byte(nil), r.memory[:n]...), nil
}
