//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIBaseURL  string
	Email       string
	Password    string
	PortalcxBin string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIBaseURL:  os.Getenv("PORTALCX_API_BASE_URL"),
		Email:       os.Getenv("PORTALCX_EMAIL"),
		Password:    os.Getenv("PORTALCX_PASSWORD"),
		PortalcxBin: getPortalcxPath(),
		Verbose:     os.Getenv("PORTALCX_VERBOSE") == "true",
	}
}

// getPortalcxPath determines the path to the portalcx binary
func getPortalcxPath() string {
	if path := os.Getenv("PORTALCX_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../portalcx",
		"./portalcx",
		"../portalcx",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "portalcx"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIBaseURL == "" || config.Email == "" || config.Password == "" {
		t.Skip("PORTALCX_API_BASE_URL, PORTALCX_EMAIL or PORTALCX_PASSWORD not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.PortalcxBin); err != nil {
		t.Skipf("portalcx binary not found at %s, skipping integration test", config.PortalcxBin)
	}
}

// CommandRunner runs the portalcx binary against an isolated config file
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a portalcx command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--config", runner.configFile, "--api", runner.config.APIBaseURL}, args...)

	cmd := exec.Command(runner.config.PortalcxBin, args...)
	cmd.Env = append(os.Environ(), "PORTALCX_PASSWORD="+runner.config.Password)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.PortalcxBin, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a portalcx command with JSON output and decodes it
func (runner *CommandRunner) RunJSON(out interface{}, args ...string) {
	runner.t.Helper()

	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	require.NoError(runner.t, err, "portalcx %s failed: %s", strings.Join(args, " "), stderr)
	require.NoError(runner.t, json.Unmarshal([]byte(stdout), out), "output is not JSON: %s", stdout)
}

// Login authenticates with the configured account
func (runner *CommandRunner) Login() error {
	_, stderr, err := runner.Run("login", "--email", runner.config.Email)
	if err != nil {
		return fmt.Errorf("failed to log in: %s", stderr)
	}

	return nil
}

// SavedToken returns the token written to the runner's config file
func (runner *CommandRunner) SavedToken() string {
	data, err := os.ReadFile(runner.configFile)
	if err != nil {
		return ""
	}

	var saved struct {
		Token string `yaml:"token"`
	}

	if yaml.Unmarshal(data, &saved) != nil {
		return ""
	}

	return saved.Token
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// Cleanup attempts to delete a test resource and only logs failures
func (runner *CommandRunner) Cleanup(args ...string) {
	stdout, stderr, err := runner.Run(append(args, "--force")...)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s: %s\nStderr: %s", strings.Join(args, " "), stdout, stderr)
	}
}
