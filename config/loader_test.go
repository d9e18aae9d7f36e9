package config_test

import (
	"os"
	"path/filepath"
	"testing"

	aprioriconfig "github.com/RiceaRaul/apriori/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesRegisteredFlagDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := aprioriconfig.RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := aprioriconfig.Load(v, "")
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.MinSupport)
	assert.Equal(t, 1.0, cfg.MaxSupport)
	assert.Equal(t, 0.1, cfg.SupportDelta)
	assert.False(t, cfg.GenerateRules)
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := aprioriconfig.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--min-support=0.3", "--rules", "--min-confidence=0.7"}))

	cfg, err := aprioriconfig.Load(v, "")
	require.NoError(t, err)

	assert.Equal(t, 0.3, cfg.MinSupport)
	assert.True(t, cfg.GenerateRules)
	assert.Equal(t, 0.7, cfg.MinConfidence)
}

func TestLoadReadsYAMLConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apriori.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min-support: 0.25\nitemset-count: 5\n"), 0o644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := aprioriconfig.RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := aprioriconfig.Load(v, path)
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.MinSupport)
	assert.Equal(t, 5, cfg.FrequentItemSetCount)
}

func TestLoadMissingConfigFileErrors(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := aprioriconfig.RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	_, err := aprioriconfig.Load(v, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidThresholds(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := aprioriconfig.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--min-support=1.5"}))

	_, err := aprioriconfig.Load(v, "")
	assert.Error(t, err)
}
