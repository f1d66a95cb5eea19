package diag

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type fdWriter interface {
	Fd() uintptr
}

type flusher interface {
	Flush() error
}

// flushWriter flushes buffered sinks after every line.
type flushWriter struct {
	w io.Writer
}

func (f flushWriter) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	if err != nil {
		return n, err
	}
	if fl, ok := f.w.(flusher); ok {
		err = fl.Flush()
	}
	return n, err
}

// initializeWriter resolves the sink and wraps it so that each line reaches
// it in a single serialized Write.
func (s *Service) initializeWriter() (raw io.Writer, out io.Writer) {
	raw = s.Out
	if raw == nil {
		raw = os.Stdout
		s.Out = raw
	}
	if _, ok := raw.(flusher); ok {
		return raw, zerolog.SyncWriter(flushWriter{w: raw})
	}
	return raw, zerolog.SyncWriter(raw)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *Service) resolveColoring(raw io.Writer) bool {
	if s.Config.NoColor {
		return false
	}
	if s.Config.DetectTerminal {
		return isTerminal(raw)
	}
	return true
}
