package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value FileConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &FileConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&FileConfig{BaseDir: "/etc/confkeeper"},
		&FileConfig{IgnoreDefaults: true},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/etc/confkeeper", cfg.BaseDir)
	assert.True(t, cfg.IgnoreDefaults)
}

// TestBuild_FirstNonZeroScalarWins verifies the layer precedence for scalar
// fields: an earlier layer that set a value shadows later layers.
func TestBuild_FirstNonZeroScalarWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&FileConfig{BaseDir: "/from-env"},
		&FileConfig{BaseDir: "/from-flags"},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/from-env", cfg.BaseDir)
}

// TestBuild_AppendsFileLists verifies that load references accumulate
// across layers instead of shadowing each other.
func TestBuild_AppendsFileLists(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&FileConfig{Files: []string{"env-a.json", "env-b.yml"}},
		&FileConfig{Files: []string{"flag-c.ini"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, []string{"env-a.json", "env-b.yml", "flag-c.ini"}, cfg.Files)
}

// TestBuild_RejectsBlankFileRef verifies that a blank load reference fails
// validation of the merged result.
func TestBuild_RejectsBlankFileRef(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&FileConfig{Files: []string{"good.json", "   "}},
	)

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyFileRef)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("CONFKEEPER_BASE_DIR", "/env-base")
	t.Setenv("CONFKEEPER_LOAD", "env.json")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/env-base", b.configs[0].BaseDir)
	assert.Equal(t, []string{"env.json"}, b.configs[0].Files)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	oldArgs := os.Args
	os.Args = []string{"cmd"}
	defer func() { os.Args = oldArgs }()

	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags())
}

// ── GetFileConfig ─────────────────────────────────────────────────────────────

// TestGetFileConfig_MergesEnvAndFlags verifies the end-to-end assembly:
// scalars prefer the environment layer and load references accumulate with
// environment entries first.
func TestGetFileConfig_MergesEnvAndFlags(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("CONFKEEPER_BASE_DIR", "/from-env")
	t.Setenv("CONFKEEPER_LOAD", "env.json")

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	oldArgs := os.Args
	os.Args = []string{"cmd", "-config-load", "flag.ini", "-config-ignore-defaults"}
	defer func() { os.Args = oldArgs }()

	cfg, err := GetFileConfig()
	require.NoError(t, err)

	assert.Equal(t, "/from-env", cfg.BaseDir)
	assert.True(t, cfg.IgnoreDefaults)
	assert.Equal(t, []string{"env.json", "flag.ini"}, cfg.Files)
}
