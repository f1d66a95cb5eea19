package diag

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/Station-Manager/diag/format"
	"github.com/Station-Manager/diag/internal/build"
	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Service prints severity-tagged lines to a single sink. The zero value is
// usable after Initialize; calls made before Initialize print nothing.
type Service struct {
	Config *Config
	// Out is the sink; nil means os.Stdout.
	Out io.Writer
	// Exit terminates the process after a failed check; nil means os.Exit.
	Exit func(code int)

	sink          atomic.Pointer[sink]
	coloring      atomic.Bool
	isInitialized atomic.Bool
	mu            sync.Mutex

	debugOutput toggle
	assertions  toggle
}

type sink struct {
	out      io.Writer
	level    zerolog.Level
	exitCode int
}

// toggle lets a Service deviate from the compiled-in build flags.
type toggle uint8

const (
	fromBuild toggle = iota
	forceOn
	forceOff
)

func (t toggle) enabled(def bool) bool {
	switch t {
	case forceOn:
		return true
	case forceOff:
		return false
	default:
		return def
	}
}

// linePool recycles line buffers to reduce allocations.
var linePool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// NewService returns an uninitialized Service using cfg, or DefaultConfig
// when cfg is nil.
func NewService(cfg *Config) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Service{Config: cfg}
}

// Initialize validates the configuration and opens the sink.
// Calling it again on an initialized Service is a no-op.
func (s *Service) Initialize() error {
	const op errors.Op = "diag.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isInitialized.Load() {
		return nil
	}

	if s.Config == nil {
		s.Config = DefaultConfig()
	}
	if err := validateConfig(s.Config); err != nil {
		return err
	}

	level, err := parseLevel(s.Config.Level)
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	exitCode := s.Config.ExitCode
	if exitCode == 0 {
		exitCode = AbortExitCode
	}

	raw, out := s.initializeWriter()
	s.coloring.Store(s.resolveColoring(raw))
	s.sink.Store(&sink{out: out, level: level, exitCode: exitCode})
	s.isInitialized.Store(true)
	return nil
}

// Close detaches the sink. Later print calls are no-ops; failed checks still
// report to stderr and terminate. It's safe to call Close multiple times.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isInitialized.Store(false)
	s.sink.Store(nil)
	return nil
}

// SetColoringEnabled switches ANSI sequences on or off for every later call.
func (s *Service) SetColoringEnabled(enabled bool) {
	if s == nil {
		return
	}
	s.coloring.Store(enabled)
}

// ColoringEnabled reports the current coloring switch.
func (s *Service) ColoringEnabled() bool {
	return s != nil && s.coloring.Load()
}

// Debug prints a debug line. It is a no-op in release and size-constrained
// builds.
func (s *Service) Debug(template string, args ...any) {
	if !s.debugEnabled() {
		return
	}
	s.print(SeverityDebug, SeverityDebug.Color(), template, args, true)
}

// DebugColored is Debug with a caller-chosen message color.
func (s *Service) DebugColored(color Color, template string, args ...any) {
	if !s.debugEnabled() {
		return
	}
	s.print(SeverityDebug, color, template, args, true)
}

// Print writes the message without label or trailing newline, so a line can
// be composed from several calls.
func (s *Service) Print(template string, args ...any) {
	s.print(SeverityPlain, SeverityPlain.Color(), template, args, false)
}

// Println is Print followed by a newline.
func (s *Service) Println(template string, args ...any) {
	s.print(SeverityPlain, SeverityPlain.Color(), template, args, true)
}

func (s *Service) Log(template string, args ...any) {
	s.print(SeverityLog, SeverityLog.Color(), template, args, true)
}

func (s *Service) Success(template string, args ...any) {
	s.print(SeveritySuccess, SeveritySuccess.Color(), template, args, true)
}

func (s *Service) Warn(template string, args ...any) {
	s.print(SeverityWarning, SeverityWarning.Color(), template, args, true)
}

func (s *Service) Error(template string, args ...any) {
	s.print(SeverityError, SeverityError.Color(), template, args, true)
}

// Emit prints a line at an arbitrary severity. Debug lines obey the same
// build gating as Debug.
func (s *Service) Emit(sev Severity, template string, args ...any) {
	switch sev {
	case SeverityDebug:
		s.Debug(template, args...)
	case SeverityPlain:
		s.Print(template, args...)
	default:
		s.print(sev, sev.Color(), template, args, true)
	}
}

func (s *Service) debugEnabled() bool {
	return s != nil && s.debugOutput.enabled(build.DebugLogging())
}

func (s *Service) assertionsEnabled() bool {
	if s == nil {
		return build.Debug
	}
	return s.assertions.enabled(build.Debug)
}

func (s *Service) load() *sink {
	if s == nil || !s.isInitialized.Load() {
		return nil
	}
	return s.sink.Load()
}

func (s *Service) print(sev Severity, color Color, template string, args []any, newline bool) {
	sk := s.load()
	if sk == nil {
		return
	}
	if sev.Level() < sk.level {
		return
	}
	s.writeLine(sk.out, sev.Label(), color, format.Format(template, args...), newline)
}

func (s *Service) writeLine(out io.Writer, label string, color Color, msg string, newline bool) {
	buf := linePool.Get().(*bytes.Buffer)
	buf.Reset()
	defer linePool.Put(buf)

	buf.WriteString(label)
	if s.coloring.Load() {
		buf.WriteString(string(color))
		buf.WriteString(msg)
		buf.WriteString(string(ColorReset))
	} else {
		buf.WriteString(msg)
	}
	if newline {
		buf.WriteByte('\n')
	}

	_, _ = out.Write(buf.Bytes())
}

// stderrSink is used by failed checks on a Service without a sink.
var stderrSink = zerolog.SyncWriter(os.Stderr)
