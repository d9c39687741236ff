package main

import (
	"bytes"
	"context"
	"masthead/internal/config"
	"masthead/pkg/serrors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const seedDocument = `
authors:
  - name: Ada
  - name: Grace
magazines:
  - name: Tech
    category: Science
  - name: Code
    category: Programming
articles:
  - author: Ada
    magazine: Tech
    title: Engines of Analysis
  - author: Ada
    magazine: Tech
    title: Notes on the Engine
  - author: Grace
    magazine: Code
    title: Compilers for Everyone
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func testConfig(seedPath string) *config.Config {
	cfg := &config.Config{Environment: "test", LogLevel: "warn"}
	cfg.Seed.Path = seedPath
	cfg.Report.Format = config.FormatText

	return cfg
}

func TestReportCommand_Text(t *testing.T) {
	cmd := reportCommand(testConfig(writeSeed(t, seedDocument)))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Contains(t, out.String(), "Authors (2)\n")
	require.Contains(t, out.String(), "  Tech [Science]\n")
	require.Contains(t, out.String(), "Articles: 3\n")
	require.Contains(t, out.String(), "Top publisher: Tech\n")
}

func TestReportCommand_JSONWithMetrics(t *testing.T) {
	cmd := reportCommand(testConfig(writeSeed(t, seedDocument)))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "json", "--metrics"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Contains(t, out.String(), `"topPublisher"`)
	require.Contains(t, out.String(), `masthead_entities_registered_total{kind="article"} 3`)
	require.Contains(t, out.String(), `masthead_entities_registered_total{kind="author"} 2`)
}

func TestReportCommand_UnknownFormat(t *testing.T) {
	cmd := reportCommand(testConfig(writeSeed(t, seedDocument)))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml"})

	require.ErrorContains(t, cmd.ExecuteContext(context.Background()), `unknown report format "xml"`)
}

func TestValidateCommand(t *testing.T) {
	path := writeSeed(t, seedDocument)
	cmd := validateCommand(testConfig("unused.yml"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, path+" is valid\n", out.String())
}

func TestValidateCommand_Invalid(t *testing.T) {
	path := writeSeed(t, "magazines:\n  - name: T\n    category: Science\n")
	cmd := validateCommand(testConfig(path))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(context.Background())
	require.ErrorIs(t, err, serrors.ErrInvalidValue)
	require.ErrorContains(t, err, "(field name)")
}

func TestLoadConfig_FallsBackToEnv(t *testing.T) {
	t.Setenv("REPORT_FORMAT", "json")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, config.FormatJSON, cfg.Report.Format)
	require.Equal(t, "seed.yml", cfg.Seed.Path)
}

func TestConfigArgs(t *testing.T) {
	require.Equal(t, []string{"-c", "a.yml"}, configArgs([]string{"report", "-c", "a.yml"}))
	require.Equal(t, []string{"-c", "b.yml"}, configArgs([]string{"--config=b.yml", "validate"}))
	require.Nil(t, configArgs([]string{"report", "--format", "json"}))
}
