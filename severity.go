package diag

import (
	"strings"

	"github.com/rs/zerolog"
)

// Severity classifies a print call and fixes its label and color.
type Severity uint8

const (
	SeverityDebug Severity = iota
	SeverityPlain
	SeverityLog
	SeveritySuccess
	SeverityWarning
	SeverityError
)

type severityStyle struct {
	name  string
	label string
	color Color
	level zerolog.Level
}

var severityStyles = [...]severityStyle{
	SeverityDebug:   {"debug", "[ DEBUG ] ", ColorBoldBlue, zerolog.DebugLevel},
	SeverityPlain:   {"plain", "", ColorBoldWhite, zerolog.InfoLevel},
	SeverityLog:     {"log", "[  LOG  ] ", ColorBoldWhite, zerolog.InfoLevel},
	SeveritySuccess: {"success", "[SUCCESS] ", ColorBoldGreen, zerolog.InfoLevel},
	SeverityWarning: {"warning", "[WARNING] ", ColorBoldYellow, zerolog.WarnLevel},
	SeverityError:   {"error", "[ ERROR ] ", ColorBoldRed, zerolog.ErrorLevel},
}

func (s Severity) valid() bool {
	return int(s) < len(severityStyles)
}

func (s Severity) String() string {
	if !s.valid() {
		return "unknown"
	}
	return severityStyles[s].name
}

// Label is the fixed-width prefix written before the message. Plain has none.
func (s Severity) Label() string {
	if !s.valid() {
		return emptyString
	}
	return severityStyles[s].label
}

// Color is the sequence wrapping the message when coloring is enabled.
func (s Severity) Color() Color {
	if !s.valid() {
		return ColorReset
	}
	return severityStyles[s].color
}

// Level maps the severity onto the zerolog level used for threshold filtering.
func (s Severity) Level() zerolog.Level {
	if !s.valid() {
		return zerolog.NoLevel
	}
	return severityStyles[s].level
}

// ParseSeverity resolves a severity by name; "warn" is accepted for warning.
func ParseSeverity(name string) (Severity, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warn" {
		return SeverityWarning, true
	}
	for i, st := range severityStyles {
		if st.name == name {
			return Severity(i), true
		}
	}
	return 0, false
}
