/* cli_test.go
 * Contains tests for the command tree, run in process with captured output
 */

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"knockout-cups/cup/registry"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a fresh command tree with args and returns the captured output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	root := NewRootCmd()
	assert.Equal(t, "cups", root.Use)

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["play"])
	assert.True(t, names["types"])
}

func TestTypesCommand(t *testing.T) {
	output, err := executeCommand(t, "types")

	require.NoError(t, err)
	assert.Equal(t, strings.Join(registry.Default().Names(), "\n")+"\n", output)
}

func TestPlayCommand_Stepladder(t *testing.T) {
	output, err := executeCommand(t, "play",
		"--type", registry.Stepladder,
		"--teams", `A B "Team C" D`,
		"--simulator", "fixed",
		"--follow", "team c",
	)

	require.NoError(t, err)
	assert.Contains(t, output, "Team C                            5")
	assert.Contains(t, output, "Champion: D")
	assert.Contains(t, output, "Team C was knocked out after winning 1 match\n")
}

func TestPlayCommand_StandardSingleWithBye(t *testing.T) {
	output, err := executeCommand(t, "play",
		"--type", registry.StandardSingle,
		"--teams", "A B BYE D",
		"--simulator", "fixed",
		"--follow", "A",
	)

	require.NoError(t, err)
	assert.Contains(t, output, "Champion: A")
	assert.Contains(t, output, "A won the cup after winning 2 matches\n")
}

func TestPlayCommand_DoubleDefaults(t *testing.T) {
	output, err := executeCommand(t, "play", "--type", registry.PowerOfTwoDouble, "--simulator", "fixed")

	require.NoError(t, err)
	assert.Contains(t, output, "Champion: Team 1")
	assert.Contains(t, output, "Team 8")
}

func TestPlayCommand_Watch(t *testing.T) {
	output, err := executeCommand(t, "play", "--rounds", "2", "--simulator", "fixed", "--watch")

	require.NoError(t, err)
	// one printout per match
	assert.Equal(t, 3, strings.Count(output, "Team 4"))
}

func TestPlayCommand_RandomNames(t *testing.T) {
	output, err := executeCommand(t, "play", "--rounds", "2", "--random-names", "--seed", "3")

	require.NoError(t, err)
	assert.Contains(t, output, "Champion: ")
	assert.NotContains(t, output, "Team 1")
}

func TestPlayCommand_Errors(t *testing.T) {
	_, err := executeCommand(t, "play", "--type", "stepladder")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean "+registry.Stepladder)

	_, err = executeCommand(t, "play", "--simulator", "loaded")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulation.simulator")

	_, err = executeCommand(t, "play", "--teams", "A A")
	require.Error(t, err)

	_, err = executeCommand(t, "play", "--teams", "A B", "--random-names")
	require.Error(t, err)
}

func TestPlayCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cups.yaml")
	content := "cup:\n  type: competitions.stepladder\n  team_count: 3\nsimulation:\n  simulator: fixed\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	output, err := executeCommand(t, "play", "--config", path)

	require.NoError(t, err)
	assert.Contains(t, output, "Champion: Team 3")
}

func TestPlayCommand_Env(t *testing.T) {
	t.Setenv("CUPS_CUP_TYPE", registry.Stepladder)
	t.Setenv("CUPS_CUP_TEAM_COUNT", "5")
	t.Setenv("CUPS_SIMULATION_SIMULATOR", "fixed")

	output, err := executeCommand(t, "play")

	require.NoError(t, err)
	assert.Contains(t, output, "Champion: Team 5")
}

func TestPlayCommand_MissingConfigFile(t *testing.T) {
	_, err := executeCommand(t, "play", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Cup.Type = ""
	cfg.Cup.Rounds = -1
	cfg.Logging.Format = "xml"
	cfg.Simulation.MatchesPerSecond = -2

	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"cup.type", "cup.rounds", "logging.format", "simulation.matches_per_second"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestNewLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := newLogger(buf, LoggingConfig{Level: "info", Format: "json"})

	logger.Debug("hidden")
	logger.Info("shown", "cup", "test")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, `"msg":"shown"`)
	assert.Contains(t, output, `"run_id":"`)
}
