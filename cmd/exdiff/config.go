package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/exdiff-go/pkg/exdiff"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/diff"
)

// envPrefix namespaces environment overrides, e.g. EXDIFF_EQUALITY=display.
const envPrefix = "EXDIFF"

const (
	formatText = "text"
	formatJSON = "json"
)

// settings is the resolved configuration of one command run.
// Precedence: flags, then environment, then config file, then defaults.
type settings struct {
	Equality   string        `mapstructure:"equality"`
	Sparse     bool          `mapstructure:"sparse"`
	Retries    int           `mapstructure:"retries"`
	RetryDelay time.Duration `mapstructure:"retry-delay"`
	Format     string        `mapstructure:"format"`
	OutputDir  string        `mapstructure:"output-dir"`
	Limit      int           `mapstructure:"limit"`
	FailOnDiff bool          `mapstructure:"fail-on-diff"`
	NoColor    bool          `mapstructure:"no-color"`
	Verbose    bool          `mapstructure:"verbose"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	defaults := exdiff.DefaultOptions()
	v.SetDefault("equality", string(defaults.Equality))
	v.SetDefault("retries", defaults.Retry.MaxAttempts)
	v.SetDefault("retry-delay", defaults.Retry.Delay)
	v.SetDefault("format", formatText)

	return v
}

// addReadFlags registers the flags shared by every command that reads workbooks.
func addReadFlags(flags *pflag.FlagSet) {
	defaults := exdiff.DefaultOptions()
	flags.Bool("sparse", false, "Skip cells with neither a value nor a formula")
	flags.Int("retries", defaults.Retry.MaxAttempts, "Attempts to open each workbook")
	flags.Duration("retry-delay", defaults.Retry.Delay, "Wait between open attempts")
	flags.String("format", formatText, "Output format: text or json")
}

// loadSettings binds the command's flags, reads the optional config file and
// decodes the merged result.
func loadSettings(cmd *cobra.Command, v *viper.Viper) (settings, error) {
	var s settings

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return s, fmt.Errorf("bind flags: %w", err)
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return s, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return s, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decode config: %w", err)
	}

	switch s.Format {
	case formatText, formatJSON:
	default:
		return s, fmt.Errorf("invalid format: %s (must be text or json)", s.Format)
	}

	return s, nil
}

// options converts settings into library options.
func (s settings) options(logger logrus.FieldLogger) (exdiff.Options, error) {
	equality, err := diff.ParseEquality(s.Equality)
	if err != nil {
		return exdiff.Options{}, err
	}

	opts := exdiff.DefaultOptions()
	opts.Equality = equality
	opts.Sparse = s.Sparse
	opts.Retry = exdiff.RetryPolicy{MaxAttempts: s.Retries, Delay: s.RetryDelay}
	opts.Logger = logger

	return opts, opts.Validate()
}

func (s settings) logger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    s.NoColor,
		DisableTimestamp: true,
	})
	logger.SetLevel(logrus.WarnLevel)
	if s.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
