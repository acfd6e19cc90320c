package acceptor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/bdd-infra/bdd-acceptor/flags"
)

// parseConfig runs NewConfig through a real cli invocation so flag
// defaults, IsSet tracking and the config file overlay all behave as
// they do in production.
func parseConfig(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var cfg *Config
	var cfgErr error
	app := cli.NewApp()
	app.Flags = flags.Flags
	app.Action = func(ctx *cli.Context) error {
		cfg, cfgErr = NewConfig(ctx, log.New())
		return nil
	}
	require.NoError(t, app.Run(append([]string{"bdd-acceptor"}, args...)))
	return cfg, cfgErr
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(t, "--events", "session.ndjson")
	require.NoError(t, err)

	assert.Equal(t, "session.ndjson", cfg.EventsFile)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.True(t, cfg.CleanResults)
	assert.Equal(t, DefaultTMSPrefix, cfg.TMSPrefix)
	assert.Equal(t, DefaultIssuePrefix, cfg.IssuePrefix)
	assert.Equal(t, DefaultSeverityPrefix, cfg.SeverityPrefix)
}

func TestNewConfigFlagOverrides(t *testing.T) {
	cfg, err := parseConfig(t,
		"--events", "session.ndjson",
		"--outdir", "out",
		"--clean=false",
		"--tms-prefix", "case:",
		"--issue-prefix", "bug:",
		"--severity-prefix", "sev:")
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.OutputDir)
	assert.False(t, cfg.CleanResults)
	assert.Equal(t, "case:", cfg.TMSPrefix)
	assert.Equal(t, "bug:", cfg.IssuePrefix)
	assert.Equal(t, "sev:", cfg.SeverityPrefix)
}

func TestNewConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acceptor.yaml")
	content := `
output_dir: file-results
clean_results: false
tms_prefix: "case:"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := parseConfig(t, "--events", "session.ndjson", "--config", path)
	require.NoError(t, err)

	assert.Equal(t, "file-results", cfg.OutputDir)
	assert.False(t, cfg.CleanResults)
	assert.Equal(t, "case:", cfg.TMSPrefix)
	// Values absent from the file keep their defaults.
	assert.Equal(t, DefaultIssuePrefix, cfg.IssuePrefix)
}

func TestNewConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acceptor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: from-file\n"), 0o644))

	cfg, err := parseConfig(t,
		"--events", "session.ndjson",
		"--config", path,
		"--outdir", "from-flag")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.OutputDir)
}

func TestNewConfigRejectsBadFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseConfig(t,
			"--events", "session.ndjson",
			"--config", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "acceptor.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output_dir: [unclosed"), 0o644))
		_, err := parseConfig(t, "--events", "session.ndjson", "--config", path)
		require.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := Config{EventsFile: "e", OutputDir: "o", Log: log.New()}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing events file", mutate: func(c *Config) { c.EventsFile = "" }},
		{name: "missing output dir", mutate: func(c *Config) { c.OutputDir = "" }},
		{name: "missing logger", mutate: func(c *Config) { c.Log = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
