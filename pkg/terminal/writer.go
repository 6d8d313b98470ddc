package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// pagingWriter writes to the current destination, which commands may
// redirect for a single call.
type pagingWriter struct {
	w   io.Writer
	def io.Writer
}

func (pw *pagingWriter) Write(p []byte) (int, error) {
	return pw.w.Write(p)
}

// Reset restores the default destination.
func (pw *pagingWriter) Reset() {
	pw.w = pw.def
}

// transcriptWriter writes to pw and, when a transcript is open, copies
// everything to the transcript file as well.
type transcriptWriter struct {
	pw       *pagingWriter
	file     *bufio.Writer
	fh       io.Closer
	colorize bool
}

func newTranscriptWriter() *transcriptWriter {
	out := colorable.NewColorableStdout()
	return &transcriptWriter{
		pw:       &pagingWriter{w: out, def: out},
		colorize: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

func (w *transcriptWriter) Write(p []byte) (int, error) {
	if w.file != nil {
		w.file.Write(p)
	}
	return w.pw.Write(p)
}

// Echo writes p to the transcript only.
func (w *transcriptWriter) Echo(s string) {
	if w.file != nil {
		w.file.WriteString(s)
	}
}

func (w *transcriptWriter) Flush() {
	if w.file != nil {
		w.file.Flush()
	}
}

func (w *transcriptWriter) OpenTranscript(path string) error {
	if err := w.CloseTranscript(); err != nil {
		return err
	}
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	w.fh = fh
	w.file = bufio.NewWriter(fh)
	return nil
}

func (w *transcriptWriter) CloseTranscript() error {
	if w.file == nil {
		return nil
	}
	w.file.Flush()
	err := w.fh.Close()
	w.file = nil
	w.fh = nil
	return err
}

// highlight writes s in the given ANSI color when the output is a terminal.
func (w *transcriptWriter) highlight(color int, s string) {
	if w.colorize {
		fmt.Fprintf(w, terminalHighlightEscapeCode+"%s"+terminalResetEscapeCode+"\n", color, s)
		return
	}
	fmt.Fprintln(w, s)
}
