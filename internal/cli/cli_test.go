package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/hoard/internal/paths"
	"github.com/mesh-intelligence/hoard/pkg/hoard"
	"github.com/mesh-intelligence/hoard/pkg/types"
)

// execute runs the root command with args against an isolated config dir.
func execute(t *testing.T, configDir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	for _, key := range []string{"HOARD_CONFIG_DIR", "HOARD_HASHER", "HOARD_OUTPUT", "HOARD_SECTIONS", "HOARD_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config-dir", configDir}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "hoard v"+hoard.Version+"\nmodule: "+modulePath+"\n", out)
}

func TestDemoRunsAllSectionsWithoutConfig(t *testing.T) {
	out, _, err := execute(t, t.TempDir(), "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "== sequence")
	assert.Contains(t, out, "== map")
	assert.Contains(t, out, "== text")
}

func TestDemoSectionFlag(t *testing.T) {
	out, _, err := execute(t, t.TempDir(), "demo", "--section", "text", "--section", "sequence")
	require.NoError(t, err)
	assert.NotContains(t, out, "== map")
	assert.Less(t, strings.Index(out, "== text"), strings.Index(out, "== sequence"))
}

func TestSectionCommands(t *testing.T) {
	tests := []struct {
		cmd  string
		want string
	}{
		{"sequence", "each plus 50: [150 82 107]"},
		{"map", "Not exists after increment: 1"},
		{"text", "slice [0, 4): Зд"},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			out, _, err := execute(t, t.TempDir(), tt.cmd)
			require.NoError(t, err)
			assert.Contains(t, out, "== "+tt.cmd)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestConfigFileSelectsSectionsAndHasher(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "sections: [map]\nhasher: xxhash\n")

	out, _, err := execute(t, dir, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "hasher: xxhash")
	assert.NotContains(t, out, "== sequence")
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "hasher: xxhash\noutput: text\n")

	out, _, err := execute(t, dir, "--hasher", "seeded", "--json", "map")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `{"section":"map"`), "got %q", out)
	assert.Contains(t, out, `"value":"seeded"`)
}

func TestEnvOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	t.Setenv("HOARD_CONFIG_DIR", "")
	t.Setenv("HOARD_HASHER", "xxhash")

	root := NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--config-dir", dir, "map"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "hasher: xxhash")
}

func TestInvalidConfigIsUserError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "hasher: md5\n")

	_, _, err := execute(t, dir, "demo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrHasherUnknown))
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestUnknownSectionIsUserError(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "demo", "--section", "queue")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrSectionUnknown)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestMalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "sections: [map\n")

	_, _, err := execute(t, dir, "demo")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestDebugLogGoesToStderr(t *testing.T) {
	out, errOut, err := execute(t, t.TempDir(), "--log-level", "debug", "sequence")
	require.NoError(t, err)
	assert.NotContains(t, out, "level=")
	assert.Contains(t, errOut, "section start")
	assert.Contains(t, errOut, "section=sequence")
}

func TestInitWritesDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	out, _, err := execute(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)

	out, _, err = execute(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
}

func TestInitKeepsExistingConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "hasher: xxhash\n")

	_, _, err := execute(t, dir, "init")
	require.NoError(t, err)

	data, err := os.ReadFile(paths.ConfigFile(dir))
	require.NoError(t, err)
	assert.Equal(t, "hasher: xxhash\n", string(data))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(errors.New("bad flag")))
	assert.Equal(t, exitSysError, exitCode(sysError(errors.New("disk"))))
}
