package cmd

import (
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable, e.g. ORDERFLOW_LOG_LEVEL.
const EnvPrefix = "ORDERFLOW"

// Config is loaded from .env, the environment and optional YAML files.
type Config struct {
	LogLevel     string        `env:"LOG_LEVEL" yaml:"log_level" default:"info" usage:"debug, info, warn or error"`
	LogFormat    string        `env:"LOG_FORMAT" yaml:"log_format" default:"text" usage:"text or json"`
	NoticeTTL    time.Duration `env:"NOTICE_TTL" yaml:"notice_ttl" default:"5s" usage:"How long a reported notice stays on the board"`
	FirstOrderID int           `env:"FIRST_ORDER_ID" yaml:"first_order_id" default:"1" usage:"First id handed out by the order sequence"`
	Demo         bool          `env:"DEMO" yaml:"demo" default:"true" usage:"Run the demo order scenario on startup"`
	Once         bool          `env:"ONCE" yaml:"once" default:"false" usage:"Exit after the demo instead of waiting for a signal"`
	Jobs         JobsConfig    `env:"JOBS" yaml:"jobs"`
}

// JobsConfig holds six-field cron schedules (seconds first).
type JobsConfig struct {
	SweepSchedule   string `env:"SWEEP_SCHEDULE" yaml:"sweep_schedule" default:"* * * * * *" usage:"Notice sweep schedule"`
	SummarySchedule string `env:"SUMMARY_SCHEDULE" yaml:"summary_schedule" default:"*/30 * * * * *" usage:"Status summary schedule"`
}

// LoadConfig loads envFile into the process environment when it exists,
// then maps ORDERFLOW_* variables and the first existing YAML file onto
// Config defaults.
func LoadConfig(envFile string, files ...string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "load %s", envFile)
		}
	}

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags: true,
		EnvPrefix: EnvPrefix,
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
			".yml":  aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "validate config")
	}

	return cfg, nil
}

// Validate checks values aconfig cannot: enumerations and ranges.
func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.NoticeTTL <= 0 {
		return errors.Errorf("notice ttl must be positive, got %s", c.NoticeTTL)
	}
	if c.FirstOrderID <= 0 {
		return errors.Errorf("first order id must be positive, got %d", c.FirstOrderID)
	}
	return nil
}

// NewLogger builds the process logger described by the config.
func NewLogger(c Config, w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.Wrapf(err, "parse log level %q", c.LogLevel)
	}
	return level, nil
}
