package acceptor

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/bdd-infra/bdd-acceptor/flags"
)

// Default configuration values. The tag prefixes follow the usual BDD
// annotation convention: "@TMS:9901", "@ISSUE:YZZ-100",
// "@SEVERITY:critical".
const (
	DefaultOutputDir      = "allure-results"
	DefaultTMSPrefix      = "TMS:"
	DefaultIssuePrefix    = "ISSUE:"
	DefaultSeverityPrefix = "SEVERITY:"
)

// Config holds the application configuration, resolved once at startup
// and immutable for the rest of the run.
type Config struct {
	EventsFile     string // Path to the recorded runner session to replay
	OutputDir      string // Directory receiving result artifacts
	CleanResults   bool   // Clear the output directory before writing
	TMSPrefix      string // Tag prefix marking test-management IDs
	IssuePrefix    string // Tag prefix marking issue references
	SeverityPrefix string // Tag prefix marking severities
	Log            log.Logger
}

// fileConfig mirrors the optional YAML configuration file. Flags set on
// the command line override file values.
type fileConfig struct {
	OutputDir      string `yaml:"output_dir"`
	CleanResults   *bool  `yaml:"clean_results"`
	TMSPrefix      string `yaml:"tms_prefix"`
	IssuePrefix    string `yaml:"issue_prefix"`
	SeverityPrefix string `yaml:"severity_prefix"`
}

// NewConfig creates a Config from the cli context and the optional
// config file.
func NewConfig(ctx *cli.Context, logger log.Logger) (*Config, error) {
	if err := flags.CheckRequired(ctx); err != nil {
		return nil, fmt.Errorf("missing required flags: %w", err)
	}

	cfg := &Config{
		EventsFile:     ctx.String(flags.EventsFile.Name),
		OutputDir:      DefaultOutputDir,
		CleanResults:   true,
		TMSPrefix:      DefaultTMSPrefix,
		IssuePrefix:    DefaultIssuePrefix,
		SeverityPrefix: DefaultSeverityPrefix,
		Log:            logger,
	}

	if path := ctx.String(flags.ConfigFile.Name); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	cfg.applyFlags(ctx)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFile overlays values from the YAML config file.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("invalid yaml in %s: %w", path, err)
	}
	if fc.OutputDir != "" {
		c.OutputDir = fc.OutputDir
	}
	if fc.CleanResults != nil {
		c.CleanResults = *fc.CleanResults
	}
	if fc.TMSPrefix != "" {
		c.TMSPrefix = fc.TMSPrefix
	}
	if fc.IssuePrefix != "" {
		c.IssuePrefix = fc.IssuePrefix
	}
	if fc.SeverityPrefix != "" {
		c.SeverityPrefix = fc.SeverityPrefix
	}
	return nil
}

// applyFlags overlays values set explicitly on the command line.
func (c *Config) applyFlags(ctx *cli.Context) {
	if ctx.IsSet(flags.OutputDir.Name) {
		c.OutputDir = ctx.String(flags.OutputDir.Name)
	}
	if ctx.IsSet(flags.CleanResults.Name) {
		c.CleanResults = ctx.Bool(flags.CleanResults.Name)
	}
	if ctx.IsSet(flags.TMSPrefix.Name) {
		c.TMSPrefix = ctx.String(flags.TMSPrefix.Name)
	}
	if ctx.IsSet(flags.IssuePrefix.Name) {
		c.IssuePrefix = ctx.String(flags.IssuePrefix.Name)
	}
	if ctx.IsSet(flags.SeverityPrefix.Name) {
		c.SeverityPrefix = ctx.String(flags.SeverityPrefix.Name)
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.EventsFile == "" {
		return errors.New("events file is required")
	}
	if c.OutputDir == "" {
		return errors.New("output directory is required")
	}
	if c.Log == nil {
		return errors.New("logger is required")
	}
	return nil
}
