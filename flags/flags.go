package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "BDD_ACCEPTOR"

// prefixEnvVars namespaces an env var name with the application prefix.
func prefixEnvVars(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	EventsFile = &cli.StringFlag{
		Name:     "events",
		Value:    "",
		Required: true,
		EnvVars:  prefixEnvVars("EVENTS"),
		Usage:    "Path to a recorded runner session to replay (one JSON event per line)",
	}
	OutputDir = &cli.StringFlag{
		Name:    "outdir",
		Value:   "allure-results",
		EnvVars: prefixEnvVars("OUTDIR"),
		Usage:   "Directory receiving result artifacts",
	}
	CleanResults = &cli.BoolFlag{
		Name:    "clean",
		Value:   true,
		EnvVars: prefixEnvVars("CLEAN"),
		Usage:   "Clear the output directory before writing results",
	}
	TMSPrefix = &cli.StringFlag{
		Name:    "tms-prefix",
		Value:   "TMS:",
		EnvVars: prefixEnvVars("TMS_PREFIX"),
		Usage:   "Tag prefix marking test-management IDs (eg. '@TMS:9901')",
	}
	IssuePrefix = &cli.StringFlag{
		Name:    "issue-prefix",
		Value:   "ISSUE:",
		EnvVars: prefixEnvVars("ISSUE_PREFIX"),
		Usage:   "Tag prefix marking issue references (eg. '@ISSUE:YZZ-100')",
	}
	SeverityPrefix = &cli.StringFlag{
		Name:    "severity-prefix",
		Value:   "SEVERITY:",
		EnvVars: prefixEnvVars("SEVERITY_PREFIX"),
		Usage:   "Tag prefix marking severities (eg. '@SEVERITY:critical')",
	}
	ConfigFile = &cli.StringFlag{
		Name:    "config",
		Value:   "",
		EnvVars: prefixEnvVars("CONFIG"),
		Usage:   "Path to an optional YAML config file; command-line flags override it",
	}
	LogLevel = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
		Usage:   "Log level (trace, debug, info, warn, error, crit)",
	}
)

var requiredFlags = []cli.Flag{
	EventsFile,
}

var optionalFlags = []cli.Flag{
	OutputDir,
	CleanResults,
	TMSPrefix,
	IssuePrefix,
	SeverityPrefix,
	ConfigFile,
	LogLevel,
}

var Flags []cli.Flag

func init() {
	Flags = append(requiredFlags, optionalFlags...)
}

// CheckRequired verifies that all required flags are set.
func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}
