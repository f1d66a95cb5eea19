package diag

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Config holds the settings of a Service. The zero value prints everything
// in color.
type Config struct {
	// Level is the minimum zerolog level printed. Empty means debug.
	Level string `koanf:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	// NoColor disables ANSI sequences from the start.
	NoColor bool `koanf:"no_color"`
	// DetectTerminal enables coloring only when the sink is a terminal.
	DetectTerminal bool `koanf:"detect_terminal"`
	// ExitCode is passed to Exit by failed checks. Zero means AbortExitCode.
	ExitCode int `koanf:"exit_code" validate:"gte=0,lte=255"`
}

// DefaultConfig returns the process default: debug level, colored output.
func DefaultConfig() *Config {
	return &Config{Level: zerologDebug}
}

const (
	zerologDebug = "debug"

	FormatYAML = "yaml"
	FormatJSON = "json"
)

// LoadConfig parses data in the given format ("yaml", "yml" or "json") on
// top of DefaultConfig and validates the result.
func LoadConfig(data []byte, format string) (*Config, error) {
	const op errors.Op = "diag.LoadConfig"

	var parser koanf.Parser
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return nil, errors.New(op).Msg(errMsgUnsupportedFormat)
	}

	cfg := DefaultConfig()
	if len(data) > 0 {
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgConfigParse)
		}
		if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgConfigParse)
		}
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFile reads path and picks the format from its extension.
func LoadConfigFile(path string) (*Config, error) {
	const op errors.Op = "diag.LoadConfigFile"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigRead)
	}
	return LoadConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
}
